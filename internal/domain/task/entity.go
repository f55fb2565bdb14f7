package task

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStaffID   = errors.New("funcionário é obrigatório")
	ErrEmptyTitle     = errors.New("título não pode ser vazio")
	ErrInvalidPrio    = errors.New("prioridade inválida")
	ErrInvalidStatus  = errors.New("status de tarefa inválido")
)

// Priority representa a prioridade da tarefa
type Priority string

// Status representa o estado da tarefa
type Status string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

const (
	StatusPending    Status = "pendente"
	StatusInProgress Status = "em_andamento"
	StatusDone       Status = "concluida"
	StatusCancelled  Status = "cancelada"
)

// Task representa uma tarefa interna atribuída a um funcionário
type Task struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"funcionario_id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Date        time.Time `json:"data"`
	Time        time.Time `json:"hora"`
	Priority    Priority  `json:"prioridade"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Nome do funcionário, preenchido nas consultas
	StaffName string `json:"funcionario_nome,omitempty"`
}

// NewTask cria uma nova tarefa
func NewTask(staffID, title, description string, date, hour time.Time, priority Priority) (*Task, error) {
	if staffID == "" {
		return nil, ErrEmptyStaffID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority == "" {
		priority = PriorityMedium
	}
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return nil, ErrInvalidPrio
	}

	now := time.Now()
	return &Task{
		ID:          uuid.New().String(),
		StaffID:     staffID,
		Title:       title,
		Description: description,
		Date:        date,
		Time:        hour,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsValidStatus verifica se o valor é um status conhecido
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}
	return false
}
