package task

import (
	"context"
	"time"
)

// Filter contém os filtros aceitos na listagem de tarefas
type Filter struct {
	StaffID  string
	Title    string
	Date     *time.Time
	DateFrom *time.Time
	DateTo   *time.Time
	Priority Priority
	Status   Status
}

// Repository define a interface para operações de repositório de tarefas
type Repository interface {
	// Create cria uma nova tarefa
	Create(ctx context.Context, t *Task) error

	// FindByID busca uma tarefa pelo ID
	FindByID(ctx context.Context, id string) (*Task, error)

	// FindByStaff lista as tarefas de um funcionário
	FindByStaff(ctx context.Context, staffID string, limit, offset int) ([]*Task, error)

	// List lista as tarefas com filtros e paginação, ordenadas por data e hora
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Task, error)

	// Count conta as tarefas que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de uma tarefa existente
	Update(ctx context.Context, t *Task) error

	// Delete remove uma tarefa
	Delete(ctx context.Context, id string) error
}
