package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/audit"
	domain "github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

type fakeBooker struct {
	resp  models.AppointmentResponse
	err   error
	calls int
}

func (f *fakeBooker) CreateAppointment(_ context.Context, _ models.AppointmentRequest) (models.AppointmentResponse, error) {
	f.calls++
	return f.resp, f.err
}

type memSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (m *memSink) Log(_ context.Context, ev audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

type chanNotifier struct {
	sent chan string
}

func (n chanNotifier) AppointmentConfirmed(_ context.Context, _ models.AppointmentRequest, resp models.AppointmentResponse, serviceName string) error {
	n.sent <- resp.AppointmentID + "|" + serviceName
	return nil
}

func fields() domain.Fields {
	return domain.Fields{ServiceID: "corte", Name: "Ana", Phone: "86999990000", Date: "2026-10-20", Time: "10:00"}
}

func TestSubmitConfirms(t *testing.T) {
	t.Parallel()

	sink := &memSink{}
	d := audit.NewDispatcher(nil, sink)
	notifier := chanNotifier{sent: make(chan string, 1)}
	booker := &fakeBooker{resp: models.AppointmentResponse{Status: "confirmed", AppointmentID: "abc"}}
	uc := NewSubmitAppointment(booker, d, notifier, nil)

	form := domain.NewForm()
	require.NoError(t, uc.Execute(context.Background(), form, SubmitInput{Fields: fields(), ServiceName: "Corte"}))
	require.True(t, form.Confirmed())
	require.Equal(t, "abc", form.Response.AppointmentID)

	select {
	case got := <-notifier.sent:
		require.Equal(t, "abc|Corte", got)
	case <-time.After(time.Second):
		t.Fatal("owner was not notified")
	}

	d.Close()
	require.Len(t, sink.events, 1)
	require.Equal(t, "appointment_confirmed", sink.events[0].Action)
}

func TestSubmitValidationNeverCallsBackend(t *testing.T) {
	t.Parallel()

	booker := &fakeBooker{}
	uc := NewSubmitAppointment(booker, nil, nil, nil)

	form := domain.NewForm()
	err := uc.Execute(context.Background(), form, SubmitInput{Fields: domain.Fields{Name: "Ana"}})
	require.Equal(t, httperr.KindValidation, httperr.KindOf(err))
	require.Equal(t, domain.MsgMissingFields, form.Error)
	require.Equal(t, 0, booker.calls)
}

func TestSubmitBackendFailure(t *testing.T) {
	t.Parallel()

	sink := &memSink{}
	d := audit.NewDispatcher(nil, sink)
	booker := &fakeBooker{err: &httperr.NetworkError{Op: "create_appointment", Status: 400, Detail: "Horário indisponível"}}
	uc := NewSubmitAppointment(booker, d, nil, nil)

	form := domain.NewForm()
	err := uc.Execute(context.Background(), form, SubmitInput{Fields: fields()})
	require.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
	require.Equal(t, domain.StatusEditing, form.Status)
	require.Equal(t, domain.MsgSubmitFailed, form.Error)
	require.Equal(t, fields(), form.Fields)

	d.Close()
	require.Len(t, sink.events, 1)
	require.Equal(t, "appointment_failed", sink.events[0].Action)
}

func TestSubmitRejectsWhileConfirmed(t *testing.T) {
	t.Parallel()

	booker := &fakeBooker{resp: models.AppointmentResponse{AppointmentID: "abc"}}
	uc := NewSubmitAppointment(booker, nil, nil, nil)
	form := domain.NewForm()
	require.NoError(t, uc.Execute(context.Background(), form, SubmitInput{Fields: fields()}))

	err := uc.Execute(context.Background(), form, SubmitInput{Fields: fields()})
	require.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	require.Equal(t, 1, booker.calls)
}
