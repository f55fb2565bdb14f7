package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/category"
)

// Erros específicos do repositório
var (
	ErrCategoryNotFound     = errors.New("categoria não encontrada")
	ErrCategoryDuplicateKey = errors.New("categoria com mesmo nome já existe")
	ErrCategoryInUse        = errors.New("categoria possui registros associados")
)

// ServiceCategoryRepository implementa a interface category.ServiceCategoryRepository
type ServiceCategoryRepository struct {
	db *pgxpool.Pool
}

// NewServiceCategoryRepository cria uma nova instância de ServiceCategoryRepository
func NewServiceCategoryRepository(db *pgxpool.Pool) category.ServiceCategoryRepository {
	return &ServiceCategoryRepository{
		db: db,
	}
}

// Create implementa category.ServiceCategoryRepository.Create
func (r *ServiceCategoryRepository) Create(ctx context.Context, c *category.ServiceCategory) error {
	exists, err := r.ExistsByName(ctx, c.Name, "")
	if err != nil {
		return fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}
	if exists {
		return ErrCategoryDuplicateKey
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO categorias_servico (id, nome, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("erro ao criar categoria de serviço: %w", err)
	}

	return nil
}

// FindByID implementa category.ServiceCategoryRepository.FindByID
func (r *ServiceCategoryRepository) FindByID(ctx context.Context, id string) (*category.ServiceCategory, error) {
	var c category.ServiceCategory

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, descricao, created_at, updated_at
		FROM categorias_servico WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria de serviço: %w", err)
	}

	return &c, nil
}

// List implementa category.ServiceCategoryRepository.List
func (r *ServiceCategoryRepository) List(ctx context.Context, name string, limit, offset int) ([]*category.ServiceCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, descricao, created_at, updated_at
		FROM categorias_servico
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		ORDER BY nome ASC
		LIMIT $2 OFFSET $3`,
		name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias de serviço: %w", err)
	}
	defer rows.Close()

	list := make([]*category.ServiceCategory, 0)
	for rows.Next() {
		var c category.ServiceCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria de serviço: %w", err)
		}
		list = append(list, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer categorias de serviço: %w", err)
	}

	return list, nil
}

// Count implementa category.ServiceCategoryRepository.Count
func (r *ServiceCategoryRepository) Count(ctx context.Context, name string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM categorias_servico
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')`,
		name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar categorias de serviço: %w", err)
	}

	return count, nil
}

// Update implementa category.ServiceCategoryRepository.Update
func (r *ServiceCategoryRepository) Update(ctx context.Context, c *category.ServiceCategory) error {
	exists, err := r.ExistsByName(ctx, c.Name, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}
	if exists {
		return ErrCategoryDuplicateKey
	}

	result, err := r.db.Exec(ctx,
		`UPDATE categorias_servico SET nome = $1, descricao = $2, updated_at = $3
		WHERE id = $4`,
		c.Name, c.Description, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar categoria de serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa category.ServiceCategoryRepository.Delete
func (r *ServiceCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM categorias_servico WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return ErrCategoryInUse
		}
		return fmt.Errorf("erro ao excluir categoria de serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ExistsByName implementa category.ServiceCategoryRepository.ExistsByName
func (r *ServiceCategoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM categorias_servico
			WHERE LOWER(nome) = LOWER($1) AND ($2 = '' OR id <> $2)
		)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}

	return exists, nil
}

// CountServices implementa category.ServiceCategoryRepository.CountServices
func (r *ServiceCategoryRepository) CountServices(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM servicos WHERE categoria_id = $1",
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar serviços da categoria: %w", err)
	}

	return count, nil
}

// ProductCategoryRepository implementa a interface category.ProductCategoryRepository
type ProductCategoryRepository struct {
	db *pgxpool.Pool
}

// NewProductCategoryRepository cria uma nova instância de ProductCategoryRepository
func NewProductCategoryRepository(db *pgxpool.Pool) category.ProductCategoryRepository {
	return &ProductCategoryRepository{
		db: db,
	}
}

// Create implementa category.ProductCategoryRepository.Create
func (r *ProductCategoryRepository) Create(ctx context.Context, c *category.ProductCategory) error {
	exists, err := r.ExistsByName(ctx, c.Name, "")
	if err != nil {
		return fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}
	if exists {
		return ErrCategoryDuplicateKey
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO categorias_produto (id, nome, descricao, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrCategoryDuplicateKey
		}
		return fmt.Errorf("erro ao criar categoria de produto: %w", err)
	}

	return nil
}

// FindByID implementa category.ProductCategoryRepository.FindByID
func (r *ProductCategoryRepository) FindByID(ctx context.Context, id string) (*category.ProductCategory, error) {
	var c category.ProductCategory

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, descricao, created_at, updated_at
		FROM categorias_produto WHERE id = $1`,
		id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar categoria de produto: %w", err)
	}

	return &c, nil
}

// List implementa category.ProductCategoryRepository.List
func (r *ProductCategoryRepository) List(ctx context.Context, name string, limit, offset int) ([]*category.ProductCategory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, nome, descricao, created_at, updated_at
		FROM categorias_produto
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')
		ORDER BY nome ASC
		LIMIT $2 OFFSET $3`,
		name, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias de produto: %w", err)
	}
	defer rows.Close()

	list := make([]*category.ProductCategory, 0)
	for rows.Next() {
		var c category.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria de produto: %w", err)
		}
		list = append(list, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer categorias de produto: %w", err)
	}

	return list, nil
}

// Count implementa category.ProductCategoryRepository.Count
func (r *ProductCategoryRepository) Count(ctx context.Context, name string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM categorias_produto
		WHERE ($1 = '' OR nome ILIKE '%' || $1 || '%')`,
		name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar categorias de produto: %w", err)
	}

	return count, nil
}

// Update implementa category.ProductCategoryRepository.Update
func (r *ProductCategoryRepository) Update(ctx context.Context, c *category.ProductCategory) error {
	exists, err := r.ExistsByName(ctx, c.Name, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}
	if exists {
		return ErrCategoryDuplicateKey
	}

	result, err := r.db.Exec(ctx,
		`UPDATE categorias_produto SET nome = $1, descricao = $2, updated_at = $3
		WHERE id = $4`,
		c.Name, c.Description, c.UpdatedAt, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar categoria de produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// Delete implementa category.ProductCategoryRepository.Delete
func (r *ProductCategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM categorias_produto WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return ErrCategoryInUse
		}
		return fmt.Errorf("erro ao excluir categoria de produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}

	return nil
}

// ExistsByName implementa category.ProductCategoryRepository.ExistsByName
func (r *ProductCategoryRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM categorias_produto
			WHERE LOWER(nome) = LOWER($1) AND ($2 = '' OR id <> $2)
		)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar nome da categoria: %w", err)
	}

	return exists, nil
}

// CountProducts implementa category.ProductCategoryRepository.CountProducts
func (r *ProductCategoryRepository) CountProducts(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM produtos WHERE categoria_id = $1",
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos da categoria: %w", err)
	}

	return count, nil
}
