package appointment

import (
	"context"
	"time"
)

// Filter contém os filtros aceitos na listagem de agendamentos
type Filter struct {
	ClientID  string
	PetID     string
	ServiceID string
	StaffID   string
	Date      *time.Time
	DateFrom  *time.Time
	DateTo    *time.Time
	Status    Status
}

// Repository define a interface para operações de repositório de agendamentos
type Repository interface {
	// Create insere o agendamento revalidando o conflito de horário dentro
	// da mesma transação. Retorna ErrConflict se outro agendamento ativo do
	// mesmo funcionário sobrepõe o intervalo.
	Create(ctx context.Context, a *Appointment) error

	// FindByID busca um agendamento pelo ID
	FindByID(ctx context.Context, id string) (*Appointment, error)

	// List lista os agendamentos com filtros e paginação, ordenados por data
	// e hora de início
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Appointment, error)

	// Count conta os agendamentos que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza o agendamento revalidando o conflito de horário dentro
	// da mesma transação (excluindo o próprio registro)
	Update(ctx context.Context, a *Appointment) error

	// Delete remove um agendamento
	Delete(ctx context.Context, id string) error

	// HasConflict verifica se existe agendamento ativo do funcionário na data
	// com intervalo sobreposto a [start, end), excluindo excludeID quando
	// não vazio
	HasConflict(ctx context.Context, staffID string, date time.Time, start, end time.Time, excludeID string) (bool, error)
}
