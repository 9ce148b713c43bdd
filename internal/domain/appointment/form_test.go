package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

func validFields() Fields {
	return Fields{ServiceID: "corte", Name: "Ana", Phone: "(86) 99999-0000", Date: "2026-10-20", Time: "10:00"}
}

func TestFormMissingFieldsSingleMessage(t *testing.T) {
	t.Parallel()

	f := NewForm()
	err := f.Begin(Fields{Name: "Ana", Phone: "   "})
	var valErr *httperr.ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, []string{"service_id", "customer_phone", "date", "time"}, valErr.Fields)
	require.Equal(t, MsgMissingFields, f.Error)
	require.Equal(t, StatusEditing, f.Status)
	require.Equal(t, "Ana", f.Fields.Name)
}

func TestFormEachMissingFieldBlocks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		field string
		clear func(*Fields)
	}{
		{"service_id", func(f *Fields) { f.ServiceID = "" }},
		{"customer_name", func(f *Fields) { f.Name = " " }},
		{"customer_phone", func(f *Fields) { f.Phone = "" }},
		{"date", func(f *Fields) { f.Date = "\t" }},
		{"time", func(f *Fields) { f.Time = "" }},
	}
	for _, tc := range cases {
		fields := validFields()
		tc.clear(&fields)

		f := NewForm()
		err := f.Begin(fields)

		var valErr *httperr.ValidationError
		require.ErrorAs(t, err, &valErr, tc.field)
		require.Equal(t, []string{tc.field}, valErr.Fields)
		require.Equal(t, MsgMissingFields, f.Error)
		require.Equal(t, StatusEditing, f.Status)
	}
}

func TestFormConfirmAndReset(t *testing.T) {
	t.Parallel()

	f := NewForm()
	require.NoError(t, f.Begin(validFields()))
	require.True(t, f.Submitting())

	// segundo envio durante submitting é rejeitado
	require.True(t, httperr.IsBusiness(f.Begin(validFields()), httperr.CodeInvalidState))

	require.NoError(t, f.Confirm(models.AppointmentResponse{AppointmentID: "abc"}))
	require.True(t, f.Confirmed())
	require.Equal(t, "abc", f.Response.AppointmentID)

	require.NoError(t, f.Reset())
	require.Equal(t, StatusEditing, f.Status)
	require.Equal(t, Fields{}, f.Fields)
	require.Nil(t, f.Response)
}

func TestFormFailPreservesFields(t *testing.T) {
	t.Parallel()

	f := NewForm()
	require.NoError(t, f.Begin(validFields()))
	require.NoError(t, f.Fail())
	require.Equal(t, StatusEditing, f.Status)
	require.Equal(t, MsgSubmitFailed, f.Error)
	require.Equal(t, validFields(), f.Fields)

	require.NoError(t, f.Begin(validFields()))
	require.Empty(t, f.Error)
}

func TestFormInvalidTransitions(t *testing.T) {
	t.Parallel()

	f := NewForm()
	require.Error(t, f.Confirm(models.AppointmentResponse{}))
	require.Error(t, f.Fail())
	require.Error(t, f.Reset())
}

func TestFieldsRequestTrims(t *testing.T) {
	t.Parallel()

	req := Fields{ServiceID: " corte ", Name: " Ana ", Phone: "86", Date: "2026-10-20", Time: "10:00 "}.Request()
	require.Equal(t, "corte", req.ServiceID)
	require.Equal(t, "Ana", req.CustomerName)
	require.Equal(t, "10:00", req.Time)
}

func TestDescribeSlot(t *testing.T) {
	t.Parallel()

	require.Equal(t, "20/10/2026 às 10:00", DescribeSlot("2026-10-20", "10:00", time.UTC))
	require.Equal(t, "amanhã às cedo", DescribeSlot("amanhã", "cedo", nil))
}
