package forms

import (
	"context"
	"testing"

	"github.com/carebridge/formlist/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogLauncherRecordsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewLogLauncher(zap.New(core))

	err := l.Open(context.Background(), Form{
		ID:     "f-07",
		Title:  "Pain Assessment #7",
		Status: StatusInProgress,
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("launch form").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "f-07", fields["id"])
	assert.Equal(t, "Pain Assessment #7", fields["title"])
	assert.Equal(t, "in-progress", fields["status"])
}

func TestLogLauncherWithNopLogger(t *testing.T) {
	l := NewLogLauncher(logging.Nop())
	require.NoError(t, l.Open(context.Background(), Form{ID: "f-01", Title: "CAS Review"}))
}
