package appointment

import (
	"strings"

	"github.com/BruksfildServices01/beauty-site/internal/httperr"
	"github.com/BruksfildServices01/beauty-site/internal/models"
	"github.com/BruksfildServices01/beauty-site/internal/validators"
)

const (
	MsgMissingFields = "Por favor, preencha todos os campos."
	MsgSubmitFailed  = "Erro ao realizar agendamento. Tente novamente."
)

// ===============================
// Fields
// ===============================

type Fields struct {
	ServiceID string `form:"service_id" json:"service_id" validate:"required"`
	Name      string `form:"name" json:"customer_name" validate:"required"`
	Phone     string `form:"phone" json:"customer_phone" validate:"required"`
	Date      string `form:"date" json:"date" validate:"required"`
	Time      string `form:"time" json:"time" validate:"required"`
}

func (f Fields) Normalize() Fields {
	return Fields{
		ServiceID: strings.TrimSpace(f.ServiceID),
		Name:      strings.TrimSpace(f.Name),
		Phone:     strings.TrimSpace(f.Phone),
		Date:      strings.TrimSpace(f.Date),
		Time:      strings.TrimSpace(f.Time),
	}
}

// Missing lista os campos vazios, na ordem do formulário.
func (f Fields) Missing() []string {
	missing, err := validators.Struct(f.Normalize())
	if err != nil {
		return nil
	}
	return missing
}

// Validate agrega todos os campos ausentes numa única mensagem.
func (f Fields) Validate() error {
	if missing := f.Missing(); len(missing) > 0 {
		return &httperr.ValidationError{Fields: missing, Message: MsgMissingFields}
	}
	return nil
}

func (f Fields) Request() models.AppointmentRequest {
	n := f.Normalize()
	return models.AppointmentRequest{
		ServiceID:     n.ServiceID,
		CustomerName:  n.Name,
		CustomerPhone: n.Phone,
		Date:          n.Date,
		Time:          n.Time,
	}
}

// ===============================
// Form
// ===============================

// Form é a máquina de estados do agendamento:
// editing -> submitting -> confirmed | editing (com erro); confirmed -> editing (reset).
type Form struct {
	Status   Status
	Fields   Fields
	Error    string
	Response *models.AppointmentResponse
}

func NewForm() *Form {
	return &Form{Status: InitialStatus()}
}

// Begin valida os campos e entra em submitting. Em caso de campos
// ausentes o formulário permanece editável com a mensagem agregada.
func (f *Form) Begin(fields Fields) error {
	if err := CanSubmit(f.Status); err != nil {
		return err
	}

	f.Fields = fields
	if err := fields.Validate(); err != nil {
		f.Error = MsgMissingFields
		return err
	}

	f.Error = ""
	f.Status = StatusSubmitting
	return nil
}

func (f *Form) Confirm(resp models.AppointmentResponse) error {
	if err := CanResolve(f.Status); err != nil {
		return err
	}
	f.Status = StatusConfirmed
	f.Response = &resp
	f.Error = ""
	return nil
}

// Fail volta para edição preservando os campos.
func (f *Form) Fail() error {
	if err := CanResolve(f.Status); err != nil {
		return err
	}
	f.Status = StatusEditing
	f.Error = MsgSubmitFailed
	return nil
}

// Reset limpa tudo para um novo agendamento.
func (f *Form) Reset() error {
	if err := CanReset(f.Status); err != nil {
		return err
	}
	*f = Form{Status: InitialStatus()}
	return nil
}

func (f *Form) Submitting() bool {
	return f.Status == StatusSubmitting
}

func (f *Form) Confirmed() bool {
	return f.Status == StatusConfirmed
}
