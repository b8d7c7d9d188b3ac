// Package main is the entry point for the formlist application.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/carebridge/formlist/internal/app"
	"github.com/carebridge/formlist/internal/forms"
	"github.com/carebridge/formlist/internal/tui"
	"github.com/carebridge/formlist/internal/tui/events"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	subject := flag.String("subject", "", "patient identifier to browse forms for")
	visitCtx := flag.String("context", "", "visit or encounter identifier")
	order := flag.String("order", forms.OrderUpdatedDesc,
		"sort order: updated_desc, updated_asc or title_asc")
	workDir := flag.String("dir", "", "directory holding .formlist state (default: cwd)")
	flag.Parse()

	if *workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		*workDir = wd
	}

	eventBroker := events.NewBroker()

	application, err := app.New(app.Options{
		WorkDir: *workDir,
		Subject: *subject,
		Context: *visitCtx,
		Order:   *order,
	}, eventBroker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "formlist: %v\n", err)
		os.Exit(1)
	}

	model := tui.New(application, eventBroker)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, runErr := p.Run()

	model.Close()
	application.Shutdown()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "formlist: %v\n", runErr)
		os.Exit(1)
	}
}
