package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/supplier"
)

// Erros específicos do repositório
var (
	ErrSupplierNotFound     = errors.New("fornecedor não encontrado")
	ErrSupplierDuplicateKey = errors.New("fornecedor com mesmo CNPJ já existe")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *pgxpool.Pool
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *pgxpool.Pool) supplier.Repository {
	return &SupplierRepository{
		db: db,
	}
}

const supplierSelect = `SELECT
	id, nome, cnpj, telefone, email, endereco, cidade, estado, cep,
	contato, created_at, updated_at
FROM fornecedores`

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	exists, err := r.ExistsByCNPJ(ctx, s.CNPJ, "")
	if err != nil {
		return fmt.Errorf("erro ao verificar CNPJ: %w", err)
	}
	if exists {
		return ErrSupplierDuplicateKey
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO fornecedores (
			id, nome, cnpj, telefone, email, endereco, cidade, estado, cep,
			contato, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		s.ID, s.Name, s.CNPJ, s.Phone, s.Email, s.Address, s.City, s.State,
		s.ZipCode, s.ContactName, s.CreatedAt, s.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrSupplierDuplicateKey
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}

	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	row := r.db.QueryRow(ctx, supplierSelect+" WHERE id = $1", id)

	s, err := r.scanSupplier(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}

	return s, nil
}

func buildSupplierWhere(filter supplier.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 3)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("nome ILIKE $%d", len(args)))
	}
	if filter.CNPJ != "" {
		args = append(args, filter.CNPJ)
		conditions = append(conditions, fmt.Sprintf("cnpj = $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		conditions = append(conditions, fmt.Sprintf("cidade ILIKE $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, filter supplier.Filter, limit, offset int) ([]*supplier.Supplier, error) {
	where, args := buildSupplierWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY nome ASC LIMIT $%d OFFSET $%d",
			supplierSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	return r.scanSupplierRows(rows)
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context, filter supplier.Filter) (int, error) {
	where, args := buildSupplierWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM fornecedores%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}

	return count, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	exists, err := r.ExistsByCNPJ(ctx, s.CNPJ, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao verificar CNPJ: %w", err)
	}
	if exists {
		return ErrSupplierDuplicateKey
	}

	result, err := r.db.Exec(ctx,
		`UPDATE fornecedores SET
			nome = $1, cnpj = $2, telefone = $3, email = $4, endereco = $5,
			cidade = $6, estado = $7, cep = $8, contato = $9, updated_at = $10
		WHERE id = $11`,
		s.Name, s.CNPJ, s.Phone, s.Email, s.Address, s.City, s.State,
		s.ZipCode, s.ContactName, s.UpdatedAt, s.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Delete implementa supplier.Repository.Delete
func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM fornecedores WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir fornecedor: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}

	return nil
}

// Exists implementa supplier.Repository.Exists
func (r *SupplierRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM fornecedores WHERE id = $1)",
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar fornecedor: %w", err)
	}

	return exists, nil
}

// ExistsByCNPJ implementa supplier.Repository.ExistsByCNPJ
func (r *SupplierRepository) ExistsByCNPJ(ctx context.Context, cnpj, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM fornecedores
			WHERE cnpj = $1 AND ($2 = '' OR id <> $2)
		)`,
		cnpj, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar CNPJ: %w", err)
	}

	return exists, nil
}

// CountProducts implementa supplier.Repository.CountProducts
func (r *SupplierRepository) CountProducts(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM produtos WHERE fornecedor_id = $1",
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos do fornecedor: %w", err)
	}

	return count, nil
}

func (r *SupplierRepository) scanSupplier(row pgx.Row) (*supplier.Supplier, error) {
	var s supplier.Supplier

	err := row.Scan(
		&s.ID, &s.Name, &s.CNPJ, &s.Phone, &s.Email, &s.Address, &s.City,
		&s.State, &s.ZipCode, &s.ContactName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// scanSupplierRows converte as linhas do resultado em entidades
func (r *SupplierRepository) scanSupplierRows(rows pgx.Rows) ([]*supplier.Supplier, error) {
	suppliers := make([]*supplier.Supplier, 0)

	for rows.Next() {
		s, err := r.scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer fornecedores: %w", err)
	}

	return suppliers, nil
}
