package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/task"
)

// TaskRequest representa a requisição de tarefa
type TaskRequest struct {
	StaffID     string        `json:"funcionario_id" binding:"required"`
	Title       string        `json:"titulo" binding:"required"`
	Description string        `json:"descricao"`
	Date        string        `json:"data" binding:"required"`
	Time        string        `json:"hora"`
	Priority    task.Priority `json:"prioridade" binding:"omitempty,oneof=baixa media alta"`
	Status      task.Status   `json:"status" binding:"omitempty,oneof=pendente em_andamento concluida cancelada"`
}

// TaskResponse representa a resposta de tarefa
type TaskResponse struct {
	ID          string        `json:"id"`
	StaffID     string        `json:"funcionario_id"`
	StaffName   string        `json:"funcionario_nome,omitempty"`
	Title       string        `json:"titulo"`
	Description string        `json:"descricao"`
	Date        time.Time     `json:"data"`
	Time        string        `json:"hora"`
	Priority    task.Priority `json:"prioridade"`
	Status      task.Status   `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TaskListResponse representa a resposta de lista de tarefas
type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tarefas"`
	Pagination PaginationMeta `json:"pagination"`
}

// ToTaskResponse converte a entidade para o DTO de resposta
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		StaffID:     t.StaffID,
		StaffName:   t.StaffName,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time.Format("15:04"),
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTaskListResponse converte a lista de entidades para o DTO de listagem
func ToTaskListResponse(list []*task.Task, total int, p Pagination) TaskListResponse {
	items := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, ToTaskResponse(t))
	}

	return TaskListResponse{
		Tasks:      items,
		Pagination: NewPaginationMeta(total, p),
	}
}
