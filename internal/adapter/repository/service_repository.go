package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
)

// ErrServiceNotFound indica que o serviço não existe
var ErrServiceNotFound = errors.New("serviço não encontrado")

// ServiceRepository implementa a interface service.Repository
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository cria uma nova instância de ServiceRepository
func NewServiceRepository(db *pgxpool.Pool) service.Repository {
	return &ServiceRepository{
		db: db,
	}
}

const serviceSelect = `SELECT
	id, nome, descricao, preco, duracao, categoria_id, status,
	created_at, updated_at
FROM servicos`

// Create implementa service.Repository.Create
func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO servicos (
			id, nome, descricao, preco, duracao, categoria_id, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.Description, s.Price, s.Duration, s.CategoryID,
		s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar serviço: %w", err)
	}

	return nil
}

// FindByID implementa service.Repository.FindByID
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*service.Service, error) {
	row := r.db.QueryRow(ctx, serviceSelect+" WHERE id = $1", id)

	s, err := r.scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}

	return s, nil
}

// FindByCategory implementa service.Repository.FindByCategory
func (r *ServiceRepository) FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*service.Service, error) {
	rows, err := r.db.Query(ctx,
		serviceSelect+" WHERE categoria_id = $1 ORDER BY nome ASC LIMIT $2 OFFSET $3",
		categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços da categoria: %w", err)
	}
	defer rows.Close()

	return r.scanServiceRows(rows)
}

func buildServiceWhere(filter service.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("nome ILIKE $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("categoria_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa service.Repository.List
func (r *ServiceRepository) List(ctx context.Context, filter service.Filter, limit, offset int) ([]*service.Service, error) {
	where, args := buildServiceWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY nome ASC LIMIT $%d OFFSET $%d",
			serviceSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	defer rows.Close()

	return r.scanServiceRows(rows)
}

// Count implementa service.Repository.Count
func (r *ServiceRepository) Count(ctx context.Context, filter service.Filter) (int, error) {
	where, args := buildServiceWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM servicos%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar serviços: %w", err)
	}

	return count, nil
}

// Update implementa service.Repository.Update
func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	result, err := r.db.Exec(ctx,
		`UPDATE servicos SET
			nome = $1, descricao = $2, preco = $3, duracao = $4,
			categoria_id = $5, status = $6, updated_at = $7
		WHERE id = $8`,
		s.Name, s.Description, s.Price, s.Duration, s.CategoryID, s.Status,
		s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete implementa service.Repository.Delete
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM servicos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// CountAppointments implementa service.Repository.CountAppointments
func (r *ServiceRepository) CountAppointments(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM agendamentos WHERE servico_id = $1",
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar agendamentos do serviço: %w", err)
	}

	return count, nil
}

func (r *ServiceRepository) scanService(row pgx.Row) (*service.Service, error) {
	var s service.Service

	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Price, &s.Duration, &s.CategoryID,
		&s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// scanServiceRows converte as linhas do resultado em entidades
func (r *ServiceRepository) scanServiceRows(rows pgx.Rows) ([]*service.Service, error) {
	services := make([]*service.Service, 0)

	for rows.Next() {
		s, err := r.scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler serviço: %w", err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer serviços: %w", err)
	}

	return services, nil
}
