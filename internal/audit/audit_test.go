package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (m *memSink) Log(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

func TestDispatcherDeliversToAllSinks(t *testing.T) {
	t.Parallel()

	a, b := &memSink{}, &memSink{err: errors.New("db down")}
	d := NewDispatcher(nil, a, b)
	d.Dispatch(Event{Action: "appointment_confirmed", Entity: "appointment", EntityID: "abc"})
	d.Dispatch(Event{Action: "appointment_failed", Entity: "appointment"})
	d.Close()

	require.Len(t, a.events, 2)
	require.Len(t, b.events, 2)
	require.Equal(t, "abc", a.events[0].EntityID)
}

func TestDispatcherNilIsNoop(t *testing.T) {
	t.Parallel()

	var d *Dispatcher
	d.Dispatch(Event{Action: "x"})
	d.Close()
}

func TestZapSink(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	sink := NewZapSink(zap.New(core))
	require.NoError(t, sink.Log(context.Background(), Event{
		Action:   "appointment_confirmed",
		Metadata: map[string]string{"service_id": "corte"},
	}))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "audit", entries[0].Message)
	require.Equal(t, `{"service_id":"corte"}`, entries[0].ContextMap()["metadata"])
}
