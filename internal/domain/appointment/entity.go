package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyClientID  = errors.New("cliente é obrigatório")
	ErrEmptyPetID     = errors.New("pet é obrigatório")
	ErrEmptyServiceID = errors.New("serviço é obrigatório")
	ErrInvalidRange   = errors.New("a hora de início deve ser anterior à hora de fim")
	ErrPastDate       = errors.New("não é possível agendar para uma data passada")
	ErrInvalidStatus  = errors.New("status de agendamento inválido")
	ErrConflict       = errors.New("o funcionário já possui um agendamento neste horário")
)

// Status representa o estado do agendamento
type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusConfirmed  Status = "confirmado"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

// ActiveStatuses são os status que participam da verificação de conflito de
// horário. Agendamentos concluídos ou cancelados são históricos e nunca
// bloqueiam um horário.
var ActiveStatuses = []Status{StatusScheduled, StatusConfirmed, StatusInProgress}

// IsValidStatus verifica se o valor é um status conhecido
func IsValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActiveStatus verifica se o status participa da verificação de conflito
func IsActiveStatus(s Status) bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// TimeRange representa o intervalo [Start, End) de um agendamento no dia
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps verifica se dois intervalos semiabertos [s1,e1) e [s2,e2) se
// sobrepõem: s1 < e2 && e1 > s2. Extremos que apenas se tocam (fim de um
// igual ao início do outro) não contam como sobreposição.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Valid verifica se o início é estritamente anterior ao fim
func (r TimeRange) Valid() bool {
	return r.Start.Before(r.End)
}

// Appointment representa um agendamento de serviço para um pet
type Appointment struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"cliente_id"`
	PetID     string    `json:"pet_id"`
	ServiceID string    `json:"servico_id"`
	StaffID   *string   `json:"funcionario_id"`
	Date      time.Time `json:"data"`
	StartTime time.Time `json:"hora_inicio"`
	EndTime   time.Time `json:"hora_fim"`
	Status    Status    `json:"status"`
	Notes     string    `json:"observacoes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Dados relacionados, preenchidos nas consultas
	ClientName  string `json:"cliente_nome,omitempty"`
	ClientEmail string `json:"cliente_email,omitempty"`
	PetName     string `json:"pet_nome,omitempty"`
	ServiceName string `json:"servico_nome,omitempty"`
	StaffName   string `json:"funcionario_nome,omitempty"`
}

// NewAppointment cria um novo agendamento já validado
func NewAppointment(clientID, petID, serviceID string, staffID *string, date, start, end time.Time, status Status, notes string) (*Appointment, error) {
	if clientID == "" {
		return nil, ErrEmptyClientID
	}
	if petID == "" {
		return nil, ErrEmptyPetID
	}
	if serviceID == "" {
		return nil, ErrEmptyServiceID
	}
	if status == "" {
		status = StatusScheduled
	}
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	a := &Appointment{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		PetID:     petID,
		ServiceID: serviceID,
		StaffID:   staffID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
		Notes:     notes,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := a.ValidateSchedule(time.Now()); err != nil {
		return nil, err
	}

	return a, nil
}

// Range retorna o intervalo de horário do agendamento
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartTime, End: a.EndTime}
}

// ValidateSchedule valida o intervalo de horário e a data do agendamento.
// A comparação de data é feita na granularidade de dia: agendar para hoje
// é permitido, para ontem não.
func (a *Appointment) ValidateSchedule(now time.Time) error {
	if !a.Range().Valid() {
		return ErrInvalidRange
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if a.Date.Before(today) {
		return ErrPastDate
	}
	return nil
}

// IsActive verifica se o agendamento participa da verificação de conflito
func (a *Appointment) IsActive() bool {
	return IsActiveStatus(a.Status)
}
