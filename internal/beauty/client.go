package beauty

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
)

const (
	defaultTimeout      = 8 * time.Second
	defaultRejectDetail = "Erro no agendamento"
	maxBodyBytes        = 1 << 20
)

// Client consome a API de serviços e agendamentos.
type Client struct {
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	const op = "list_services"

	body, status, err := c.get(ctx, op, "services")
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, &httperr.NetworkError{Op: op, Status: status, Detail: drainError(bytes.NewReader(body))}
	}
	services, err := DecodeServices(body)
	if err != nil {
		return nil, &httperr.SchemaError{Op: op, Err: err}
	}
	return services, nil
}

func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	const op = "get_service"

	// id vem do visitante: nunca pode sair de /services.
	if id == "" || id == "." || id == ".." {
		return nil, nil
	}

	body, status, err := c.get(ctx, op, "services", url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status >= 300 {
		return nil, &httperr.NetworkError{Op: op, Status: status, Detail: drainError(bytes.NewReader(body))}
	}
	s, err := DecodeService(body)
	if err != nil {
		return nil, &httperr.SchemaError{Op: op, Err: err}
	}
	return s, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (models.AppointmentResponse, error) {
	const op = "create_appointment"

	endpoint, err := url.JoinPath(c.baseURL, "appointments")
	if err != nil {
		return models.AppointmentResponse{}, &httperr.NetworkError{Op: op, Err: err}
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return models.AppointmentResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return models.AppointmentResponse{}, &httperr.NetworkError{Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return models.AppointmentResponse{}, &httperr.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return models.AppointmentResponse{}, &httperr.NetworkError{Op: op, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode >= 300 {
		return models.AppointmentResponse{}, &httperr.NetworkError{Op: op, Status: resp.StatusCode, Detail: rejectDetail(body)}
	}

	out, err := DecodeAppointmentResponse(body)
	if err != nil {
		return models.AppointmentResponse{}, &httperr.SchemaError{Op: op, Err: err}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, op string, elem ...string) ([]byte, int, error) {
	endpoint, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return nil, 0, &httperr.NetworkError{Op: op, Err: err}
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, &httperr.NetworkError{Op: op, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, 0, &httperr.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, &httperr.NetworkError{Op: op, Status: resp.StatusCode, Err: err}
	}
	return body, resp.StatusCode, nil
}

// rejectDetail extrai o campo "detail" do corpo de erro, quando for texto.
func rejectDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil && strings.TrimSpace(detail) != "" {
			return strings.TrimSpace(detail)
		}
	}
	return defaultRejectDetail
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
