package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/task"
)

// ErrTaskNotFound indica que a tarefa não existe
var ErrTaskNotFound = errors.New("tarefa não encontrada")

// TaskRepository implementa a interface task.Repository
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository cria uma nova instância de TaskRepository
func NewTaskRepository(db *pgxpool.Pool) task.Repository {
	return &TaskRepository{
		db: db,
	}
}

const taskSelect = `SELECT
	t.id, t.funcionario_id, t.titulo, t.descricao, t.data, t.hora,
	t.prioridade, t.status, t.created_at, t.updated_at,
	u.nome
FROM tarefas t
JOIN funcionarios f ON f.id = t.funcionario_id
JOIN usuarios u ON u.id = f.usuario_id`

// Create implementa task.Repository.Create
func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tarefas (
			id, funcionario_id, titulo, descricao, data, hora,
			prioridade, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.StaffID, t.Title, t.Description, t.Date, t.Time,
		t.Priority, t.Status, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar tarefa: %w", err)
	}

	return nil
}

// FindByID implementa task.Repository.FindByID
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*task.Task, error) {
	row := r.db.QueryRow(ctx, taskSelect+" WHERE t.id = $1", id)

	t, err := r.scanTask(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tarefa: %w", err)
	}

	return t, nil
}

// FindByStaff implementa task.Repository.FindByStaff
func (r *TaskRepository) FindByStaff(ctx context.Context, staffID string, limit, offset int) ([]*task.Task, error) {
	rows, err := r.db.Query(ctx,
		taskSelect+" WHERE t.funcionario_id = $1 ORDER BY t.data ASC, t.hora ASC LIMIT $2 OFFSET $3",
		staffID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tarefas do funcionário: %w", err)
	}
	defer rows.Close()

	return r.scanTaskRows(rows)
}

func buildTaskWhere(filter task.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if filter.StaffID != "" {
		args = append(args, filter.StaffID)
		conditions = append(conditions, fmt.Sprintf("t.funcionario_id = $%d", len(args)))
	}
	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		conditions = append(conditions, fmt.Sprintf("t.titulo ILIKE $%d", len(args)))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("t.data = $%d", len(args)))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conditions = append(conditions, fmt.Sprintf("t.data >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conditions = append(conditions, fmt.Sprintf("t.data <= $%d", len(args)))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		conditions = append(conditions, fmt.Sprintf("t.prioridade = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa task.Repository.List
func (r *TaskRepository) List(ctx context.Context, filter task.Filter, limit, offset int) ([]*task.Task, error) {
	where, args := buildTaskWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY t.data ASC, t.hora ASC LIMIT $%d OFFSET $%d",
			taskSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tarefas: %w", err)
	}
	defer rows.Close()

	return r.scanTaskRows(rows)
}

// Count implementa task.Repository.Count
func (r *TaskRepository) Count(ctx context.Context, filter task.Filter) (int, error) {
	where, args := buildTaskWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM tarefas t%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar tarefas: %w", err)
	}

	return count, nil
}

// Update implementa task.Repository.Update
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	result, err := r.db.Exec(ctx,
		`UPDATE tarefas SET
			funcionario_id = $1, titulo = $2, descricao = $3, data = $4,
			hora = $5, prioridade = $6, status = $7, updated_at = $8
		WHERE id = $9`,
		t.StaffID, t.Title, t.Description, t.Date, t.Time, t.Priority,
		t.Status, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar tarefa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// Delete implementa task.Repository.Delete
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM tarefas WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir tarefa: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) scanTask(row pgx.Row) (*task.Task, error) {
	var t task.Task

	err := row.Scan(
		&t.ID, &t.StaffID, &t.Title, &t.Description, &t.Date, &t.Time,
		&t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt, &t.StaffName)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// scanTaskRows converte as linhas do resultado em entidades
func (r *TaskRepository) scanTaskRows(rows pgx.Rows) ([]*task.Task, error) {
	tasks := make([]*task.Task, 0)

	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler tarefa: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer tarefas: %w", err)
	}

	return tasks, nil
}
