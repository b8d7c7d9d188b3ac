// Package app wires the services behind the TUI: configuration,
// logging, the form source, and the loader that coordinates search
// and pagination.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/carebridge/formlist/internal/config"
	"github.com/carebridge/formlist/internal/forms"
	"github.com/carebridge/formlist/internal/loader"
	"github.com/carebridge/formlist/internal/logging"
	"github.com/carebridge/formlist/internal/tui/events"
	"go.uber.org/zap"
)

// Options selects the browsing context the app is opened for.
type Options struct {
	WorkDir string

	// Subject and Context scope every query; Order is the sort the
	// source applies before paginating.
	Subject string
	Context string
	Order   string
}

// App holds all the core services and business logic
type App struct {
	Config   *config.Manager
	Log      *zap.Logger
	Source   forms.Source
	Launcher forms.Launcher
	Loader   *loader.Loader

	// Event system
	EventBroker *events.Broker

	cancel context.CancelFunc
}

// New creates a new app with all services initialized
func New(opts Options, eventBroker *events.Broker) (*App, error) {
	cfgManager := config.NewManager(opts.WorkDir)
	if err := cfgManager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := cfgManager.Get()

	log, err := logging.New(cfgManager.DataDir(), cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	var source forms.Source
	if cfg.SourceURL != "" {
		source = forms.NewHTTPSource(cfg.SourceURL,
			forms.WithToken(os.Getenv("FORMLIST_TOKEN")))
	} else {
		source = forms.NewMemorySource(forms.SeedForms(120))
	}

	strategy := loader.Incremental(cfg.PageSize)
	if cfg.Mode == config.ModeClient {
		strategy = loader.Eager()
	}

	if opts.Order == "" {
		opts.Order = forms.OrderUpdatedDesc
	}

	ld, err := loader.New(loader.Options{
		Source:           source,
		Strategy:         strategy,
		Broker:           eventBroker,
		Log:              log,
		Subject:          opts.Subject,
		Context:          opts.Context,
		Order:            opts.Order,
		DebounceInterval: time.Duration(cfg.DebounceIntervalMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfgManager,
		Log:         log,
		Source:      source,
		Launcher:    forms.NewLogLauncher(log),
		Loader:      ld,
		EventBroker: eventBroker,
	}

	log.Info("app initialized",
		zap.String("mode", cfg.Mode),
		zap.String("strategy", strategy.String()),
		zap.String("subject", opts.Subject),
		zap.String("context", opts.Context))

	return app, nil
}

// Start runs the initial query. The loader owns its fetch goroutines
// until Shutdown.
func (a *App) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.Loader.Start(ctx)
}

// Launch opens a form in the external editor. It runs on its own
// goroutine so a slow editor never blocks the render loop.
func (a *App) Launch(f forms.Form) {
	a.EventBroker.PublishAsync(events.Event{
		Type:    events.FormLaunchEvent,
		Payload: events.LaunchPayload{Form: f},
	})
	go func() {
		if err := a.Launcher.Open(context.Background(), f); err != nil {
			a.Log.Warn("form launch failed", zap.String("id", f.ID), zap.Error(err))
			a.EventBroker.Publish(events.Event{
				Type: events.StatusMessageEvent,
				Payload: events.StatusMessagePayload{
					Message: fmt.Sprintf("could not open %s", f.Title),
					Type:    "error",
				},
			})
		}
	}()
}

// Shutdown stops in-flight work and flushes the log.
func (a *App) Shutdown() {
	if a.cancel != nil {
		a.cancel()
	}
	a.Loader.Close()
	a.EventBroker.Clear()
	_ = a.Log.Sync()
}
