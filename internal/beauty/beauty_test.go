package beauty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

const oneService = `[{"id":"corte","name":"Corte","category":"Cabelo","price":120,"duration":60,
"image":"a.jpg","gallery":["g1"],"description":"d","details":{"products_used":["x"]}}]`

func TestClientListServices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/services", r.URL.Path)
		_, _ = io.WriteString(w, oneService)
	}))
	defer srv.Close()

	services, err := NewClient(srv.URL + "/v1/").ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "corte", services[0].ID)
	require.Equal(t, []string{"x"}, services[0].ProductsUsed())
	require.Nil(t, services[0].Contraindications())
}

func TestClientListServicesSchemaMismatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"corte","name":"Corte"}]`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListServices(context.Background())
	require.Error(t, err)
	require.Equal(t, httperr.KindSchema, httperr.KindOf(err))
	require.Contains(t, err.Error(), "duration")
}

func TestClientListServicesHTTPFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListServices(context.Background())
	var netErr *httperr.NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Equal(t, http.StatusBadGateway, netErr.Status)
}

func TestClientGetServiceNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail":"Service not found"}`)
	}))
	defer srv.Close()

	s, err := NewClient(srv.URL).GetService(context.Background(), "nada")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestClientGetServiceKeepsIDInsidePath(t *testing.T) {
	t.Parallel()

	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api")
	for _, id := range []string{"../admin/secret", "a/b", "..", "."} {
		s, err := c.GetService(context.Background(), id)
		require.NoError(t, err, id)
		require.Nil(t, s, id)
	}

	require.Equal(t, []string{
		"/api/services/..%2Fadmin%2Fsecret",
		"/api/services/a%2Fb",
	}, paths)
}

func TestClientCreateAppointment(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"service_id":"corte","customer_name":"Ana","customer_phone":"86999","date":"2026-10-20","time":"10:00"}`, string(body))
		_, _ = io.WriteString(w, `{"status":"confirmed","message":"ok","appointment_id":"abc","estimated_price":120}`)
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).CreateAppointment(context.Background(), models.AppointmentRequest{
		ServiceID: "corte", CustomerName: "Ana", CustomerPhone: "86999", Date: "2026-10-20", Time: "10:00",
	})
	require.NoError(t, err)
	require.Equal(t, "abc", resp.AppointmentID)
	require.NotNil(t, resp.EstimatedPrice)
	require.InDelta(t, 120.0, *resp.EstimatedPrice, 0.001)
}

func TestClientCreateAppointmentRejected(t *testing.T) {
	t.Parallel()

	cases := []struct {
		body string
		want string
	}{
		{`{"detail":"Nome e telefone são obrigatórios."}`, "Nome e telefone são obrigatórios."},
		{`{"detail":[{"loc":["body"]}]}`, defaultRejectDetail},
		{`not json`, defaultRejectDetail},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, tc.body)
		}))
		_, err := NewClient(srv.URL).CreateAppointment(context.Background(), models.AppointmentRequest{})
		srv.Close()

		require.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
		require.Equal(t, tc.want, httperr.BackendDetail(err))
	}
}

func TestClientUnreachable(t *testing.T) {
	t.Parallel()

	_, err := NewClient("http://127.0.0.1:1").ListServices(context.Background())
	require.Equal(t, httperr.KindNetwork, httperr.KindOf(err))
}

func TestStaticBundledCatalog(t *testing.T) {
	t.Parallel()

	st := NewStatic(nil)
	services, err := st.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 6)
	require.Equal(t, "corte-feminino", services[0].ID)

	s, err := st.GetService(context.Background(), "massagem-relaxante")
	require.NoError(t, err)
	require.Equal(t, "Bem-estar", s.Category)

	s, err = st.GetService(context.Background(), "nada")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestStaticInvalidDocument(t *testing.T) {
	t.Parallel()

	st := NewStatic(func(context.Context) ([]byte, error) { return []byte(`{"id":"x"}`), nil })
	_, err := st.ListServices(context.Background())
	require.Equal(t, httperr.KindSchema, httperr.KindOf(err))
}

func TestStaticSimulatedAppointment(t *testing.T) {
	t.Parallel()

	st := NewStatic(nil, WithDelay(10*time.Millisecond), WithIDGenerator(func() string { return "fixed-id" }))
	start := time.Now()
	resp, err := st.CreateAppointment(context.Background(), models.AppointmentRequest{Date: "2026-10-20", Time: "09:00"})
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	require.Equal(t, "confirmed", resp.Status)
	require.Equal(t, "fixed-id", resp.AppointmentID)
	require.InDelta(t, SimulatedPrice, *resp.EstimatedPrice, 0.001)
}

func TestStaticSimulatedAppointmentCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStatic(nil).CreateAppointment(ctx, models.AppointmentRequest{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStaticDefaultIDIsUUID(t *testing.T) {
	t.Parallel()

	resp, err := NewStatic(nil, WithDelay(0)).CreateAppointment(context.Background(), models.AppointmentRequest{})
	require.NoError(t, err)
	require.Len(t, resp.AppointmentID, 36)
}

type fakeObjects struct {
	body []byte
	err  error
	in   *s3.GetObjectInput
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestS3Loader(t *testing.T) {
	t.Parallel()

	objects := &fakeObjects{body: []byte(oneService)}
	st := NewStatic(S3Loader(objects, "catalogo", "services.json"))
	services, err := st.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "catalogo", aws.ToString(objects.in.Bucket))
	require.Equal(t, "services.json", aws.ToString(objects.in.Key))

	_, err = S3Loader(&fakeObjects{err: errors.New("denied")}, "b", "k")(context.Background())
	require.ErrorContains(t, err, "denied")
}

func TestS3ConfigEnabled(t *testing.T) {
	t.Parallel()

	require.False(t, S3Config{}.Enabled())
	require.True(t, S3Config{Bucket: "b", Key: "k"}.Enabled())
	require.NotNil(t, NewS3Client(S3Config{Region: "us-east-1", Endpoint: "http://localhost:9000"}))
}

func TestDecodeRejectsInvalidShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		field string
	}{
		{"empty id", `[{"id":"","name":"n","category":"c","duration":30,"image":"i","description":"d"}]`, "id"},
		{"negative duration", `[{"id":"x","name":"n","category":"c","duration":-5,"image":"i","description":"d"}]`, "duration"},
		{"no image", `[{"id":"x","name":"n","category":"c","duration":30,"description":"d"}]`, "image"},
	}
	for _, tc := range cases {
		_, err := DecodeServices([]byte(tc.doc))
		require.Error(t, err, tc.name)
		require.Contains(t, err.Error(), tc.field, tc.name)
	}

	// price é opcional e duração zero é válida
	services, err := DecodeServices([]byte(`[{"id":"x","name":"n","category":"c","duration":0,"image":"i","description":""}]`))
	require.NoError(t, err)
	require.Zero(t, services[0].Price)

	_, err = DecodeAppointmentResponse([]byte(`{"status":"confirmed","message":"ok"}`))
	require.ErrorContains(t, err, "appointment_id")
}
