package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAddCatalogRefresh(t *testing.T) {
	t.Parallel()

	s := New(nil, nil)
	require.NoError(t, s.AddCatalogRefresh("@every 5m", RefresherFunc(func(context.Context) (int, error) { return 0, nil })))
	require.NoError(t, s.AddCatalogRefresh("*/30 * * * * *", RefresherFunc(func(context.Context) (int, error) { return 0, nil })))
	require.Error(t, s.AddCatalogRefresh("not a spec", RefresherFunc(func(context.Context) (int, error) { return 0, nil })))
	require.Equal(t, 2, s.Entries())
}

func TestRunRefreshLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	s := New(nil, zap.New(core))

	s.runRefresh(context.Background(), RefresherFunc(func(context.Context) (int, error) { return 6, nil }))
	s.runRefresh(context.Background(), RefresherFunc(func(context.Context) (int, error) { return 0, errors.New("down") }))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "catalog refreshed", entries[0].Message)
	require.EqualValues(t, 6, entries[0].ContextMap()["services"])
	require.Equal(t, "catalog refresh failed", entries[1].Message)
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	s := New(nil, nil)
	s.Start()
	s.Stop(context.Background())
}
