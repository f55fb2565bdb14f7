package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
)

// Erros específicos do repositório
var (
	ErrStaffNotFound     = errors.New("funcionário não encontrado")
	ErrStaffDuplicateKey = errors.New("já existe um funcionário para este usuário")
)

// StaffRepository implementa a interface staff.Repository
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository cria uma nova instância de StaffRepository
func NewStaffRepository(db *pgxpool.Pool) staff.Repository {
	return &StaffRepository{
		db: db,
	}
}

const staffSelect = `SELECT
	f.id, f.usuario_id, f.cargo, f.salario, f.data_contratacao,
	f.documento, f.especialidade, f.created_at, f.updated_at,
	u.nome, u.email, u.status
FROM funcionarios f
JOIN usuarios u ON u.id = f.usuario_id`

// Create implementa staff.Repository.Create
func (r *StaffRepository) Create(ctx context.Context, s *staff.Staff) error {
	exists, err := r.ExistsByUserID(ctx, s.UserID)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do funcionário: %w", err)
	}
	if exists {
		return ErrStaffDuplicateKey
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO funcionarios (
			id, usuario_id, cargo, salario, data_contratacao,
			documento, especialidade, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.UserID, s.Position, s.Salary, s.HiredAt,
		s.Document, s.Specialty, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrStaffDuplicateKey
		}
		return fmt.Errorf("erro ao criar funcionário: %w", err)
	}

	return nil
}

// FindByID implementa staff.Repository.FindByID
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	row := r.db.QueryRow(ctx, staffSelect+" WHERE f.id = $1", id)

	s, err := r.scanStaff(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("erro ao buscar funcionário: %w", err)
	}

	return s, nil
}

// FindByUserID implementa staff.Repository.FindByUserID
func (r *StaffRepository) FindByUserID(ctx context.Context, userID string) (*staff.Staff, error) {
	row := r.db.QueryRow(ctx, staffSelect+" WHERE f.usuario_id = $1", userID)

	s, err := r.scanStaff(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("erro ao buscar funcionário por usuário: %w", err)
	}

	return s, nil
}

func buildStaffWhere(filter staff.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("u.nome ILIKE $%d", len(args)))
	}
	if filter.Position != "" {
		args = append(args, "%"+filter.Position+"%")
		conditions = append(conditions, fmt.Sprintf("f.cargo ILIKE $%d", len(args)))
	}
	if filter.Specialty != "" {
		args = append(args, "%"+filter.Specialty+"%")
		conditions = append(conditions, fmt.Sprintf("f.especialidade ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa staff.Repository.List
func (r *StaffRepository) List(ctx context.Context, filter staff.Filter, limit, offset int) ([]*staff.Staff, error) {
	where, args := buildStaffWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY u.nome ASC LIMIT $%d OFFSET $%d",
			staffSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar funcionários: %w", err)
	}
	defer rows.Close()

	return r.scanStaffRows(rows)
}

// Count implementa staff.Repository.Count
func (r *StaffRepository) Count(ctx context.Context, filter staff.Filter) (int, error) {
	where, args := buildStaffWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM funcionarios f JOIN usuarios u ON u.id = f.usuario_id%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar funcionários: %w", err)
	}

	return count, nil
}

// Update implementa staff.Repository.Update
func (r *StaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	result, err := r.db.Exec(ctx,
		`UPDATE funcionarios SET
			cargo = $1, salario = $2, data_contratacao = $3,
			documento = $4, especialidade = $5, updated_at = $6
		WHERE id = $7`,
		s.Position, s.Salary, s.HiredAt, s.Document, s.Specialty,
		s.UpdatedAt, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar funcionário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// Delete implementa staff.Repository.Delete
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM funcionarios WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir funcionário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// Exists implementa staff.Repository.Exists
func (r *StaffRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM funcionarios WHERE id = $1)",
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar funcionário: %w", err)
	}

	return exists, nil
}

// ExistsByUserID implementa staff.Repository.ExistsByUserID
func (r *StaffRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM funcionarios WHERE usuario_id = $1)",
		userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar funcionário por usuário: %w", err)
	}

	return exists, nil
}

func (r *StaffRepository) scanStaff(row pgx.Row) (*staff.Staff, error) {
	var s staff.Staff

	err := row.Scan(
		&s.ID, &s.UserID, &s.Position, &s.Salary, &s.HiredAt,
		&s.Document, &s.Specialty, &s.CreatedAt, &s.UpdatedAt,
		&s.UserName, &s.UserEmail, &s.UserStatus)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// scanStaffRows converte as linhas do resultado em entidades
func (r *StaffRepository) scanStaffRows(rows pgx.Rows) ([]*staff.Staff, error) {
	list := make([]*staff.Staff, 0)

	for rows.Next() {
		s, err := r.scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler funcionário: %w", err)
		}
		list = append(list, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer funcionários: %w", err)
	}

	return list, nil
}
