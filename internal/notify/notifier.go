package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-site/internal/domain/appointment"
	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/validators"
	"github.com/BruksfildServices01/beauty-site/internal/whatsapp"
)

// Notifier avisa a dona do estúdio sobre um agendamento confirmado.
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, req models.AppointmentRequest, resp models.AppointmentResponse, serviceName string) error
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string // número habilitado para WhatsApp
	To         string
}

type WhatsAppNotifier struct {
	api    messageCreator
	from   string
	to     string
	logger *zap.Logger
}

func NewWhatsAppNotifier(cfg TwilioConfig, logger *zap.Logger) *WhatsAppNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newWhatsAppNotifier(client.Api, cfg.From, cfg.To, logger)
}

func newWhatsAppNotifier(api messageCreator, from, to string, logger *zap.Logger) *WhatsAppNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WhatsAppNotifier{
		api:    api,
		from:   whatsAppAddress(from),
		to:     whatsAppAddress(to),
		logger: logger,
	}
}

func (n *WhatsAppNotifier) AppointmentConfirmed(
	_ context.Context,
	req models.AppointmentRequest,
	resp models.AppointmentResponse,
	serviceName string,
) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(BuildMessage(req, resp, serviceName))

	msg, err := n.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	if msg != nil && msg.Sid != nil {
		n.logger.Info("owner notified", zap.String("sid", *msg.Sid), zap.String("appointment_id", resp.AppointmentID))
	}
	return nil
}

// BuildMessage monta o texto enviado para a dona do estúdio.
func BuildMessage(req models.AppointmentRequest, resp models.AppointmentResponse, serviceName string) string {
	if serviceName == "" {
		serviceName = req.ServiceID
	}
	var b strings.Builder
	b.WriteString("Novo agendamento!\n")
	fmt.Fprintf(&b, "Cliente: %s (%s)\n", req.CustomerName, req.CustomerPhone)
	fmt.Fprintf(&b, "Serviço: %s\n", serviceName)
	fmt.Fprintf(&b, "Quando: %s\n", appointment.DescribeSlot(req.Date, req.Time, nil))
	fmt.Fprintf(&b, "Código: %s", resp.AppointmentID)
	if validators.IsValidPhone(req.CustomerPhone) {
		fmt.Fprintf(&b, "\nConversar: %s", whatsapp.Link(validators.NormalizeBRPhone(req.CustomerPhone), ""))
	}
	return b.String()
}

func whatsAppAddress(number string) string {
	number = strings.TrimSpace(number)
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}

// Nop não envia nada; usado quando o Twilio não está configurado.
type Nop struct{}

func (Nop) AppointmentConfirmed(context.Context, models.AppointmentRequest, models.AppointmentResponse, string) error {
	return nil
}
