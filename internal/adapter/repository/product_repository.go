package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/product"
)

// Erros específicos do repositório
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo código de barras já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

const productSelect = `SELECT
	id, nome, descricao, preco, preco_custo, estoque, estoque_minimo,
	categoria_id, fornecedor_id, codigo_barras, status, created_at, updated_at
FROM produtos`

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if p.Barcode != "" {
		exists, err := r.ExistsByBarcode(ctx, p.Barcode, "")
		if err != nil {
			return fmt.Errorf("erro ao verificar código de barras: %w", err)
		}
		if exists {
			return ErrProductDuplicateKey
		}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO produtos (
			id, nome, descricao, preco, preco_custo, estoque, estoque_minimo,
			categoria_id, fornecedor_id, codigo_barras, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Name, p.Description, p.Price, p.CostPrice, p.Stock,
		p.MinStock, p.CategoryID, p.SupplierID, nullIfEmpty(p.Barcode),
		p.Status, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx, productSelect+" WHERE id = $1", id)

	p, err := r.scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}

	return p, nil
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		productSelect+" WHERE categoria_id = $1 ORDER BY nome ASC LIMIT $2 OFFSET $3",
		categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos da categoria: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// FindBySupplier implementa product.Repository.FindBySupplier
func (r *ProductRepository) FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		productSelect+" WHERE fornecedor_id = $1 ORDER BY nome ASC LIMIT $2 OFFSET $3",
		supplierID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos do fornecedor: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

func buildProductWhere(filter product.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("nome ILIKE $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("categoria_id = $%d", len(args)))
	}
	if filter.SupplierID != "" {
		args = append(args, filter.SupplierID)
		conditions = append(conditions, fmt.Sprintf("fornecedor_id = $%d", len(args)))
	}
	if filter.Barcode != "" {
		args = append(args, filter.Barcode)
		conditions = append(conditions, fmt.Sprintf("codigo_barras = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.LowStock {
		conditions = append(conditions, "estoque <= estoque_minimo")
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, filter product.Filter, limit, offset int) ([]*product.Product, error) {
	where, args := buildProductWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY nome ASC LIMIT $%d OFFSET $%d",
			productSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return r.scanProductRows(rows)
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, filter product.Filter) (int, error) {
	where, args := buildProductWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM produtos%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if p.Barcode != "" {
		exists, err := r.ExistsByBarcode(ctx, p.Barcode, p.ID)
		if err != nil {
			return fmt.Errorf("erro ao verificar código de barras: %w", err)
		}
		if exists {
			return ErrProductDuplicateKey
		}
	}

	result, err := r.db.Exec(ctx,
		`UPDATE produtos SET
			nome = $1, descricao = $2, preco = $3, preco_custo = $4,
			estoque_minimo = $5, categoria_id = $6, fornecedor_id = $7,
			codigo_barras = $8, status = $9, updated_at = $10
		WHERE id = $11`,
		p.Name, p.Description, p.Price, p.CostPrice, p.MinStock,
		p.CategoryID, p.SupplierID, nullIfEmpty(p.Barcode), p.Status,
		p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM produtos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// AdjustStock implementa product.Repository.AdjustStock. O ajuste e a
// verificação de piso acontecem em um único UPDATE condicional, então dois
// ajustes concorrentes nunca deixam o estoque negativo.
func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE produtos
		SET estoque = estoque + $1, updated_at = NOW()
		WHERE id = $2 AND estoque + $1 >= 0
		RETURNING id, nome, descricao, preco, preco_custo, estoque,
			estoque_minimo, categoria_id, fornecedor_id, codigo_barras,
			status, created_at, updated_at`,
		delta, id)

	p, err := r.scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Distinguir produto inexistente de estoque insuficiente
			exists, exErr := r.exists(ctx, id)
			if exErr != nil {
				return nil, exErr
			}
			if !exists {
				return nil, ErrProductNotFound
			}
			return nil, product.ErrInsufficientStock
		}
		return nil, fmt.Errorf("erro ao ajustar estoque: %w", err)
	}

	return p, nil
}

// ExistsByBarcode implementa product.Repository.ExistsByBarcode
func (r *ProductRepository) ExistsByBarcode(ctx context.Context, barcode, excludeID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM produtos
			WHERE codigo_barras = $1 AND ($2 = '' OR id <> $2)
		)`,
		barcode, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar código de barras: %w", err)
	}

	return exists, nil
}

// CountSaleItems implementa product.Repository.CountSaleItems
func (r *ProductRepository) CountSaleItems(ctx context.Context, id string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*) FROM itens_venda WHERE produto_id = $1",
		id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar itens de venda do produto: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM produtos WHERE id = $1)",
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar produto: %w", err)
	}

	return exists, nil
}

func (r *ProductRepository) scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	var barcode *string

	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CostPrice, &p.Stock,
		&p.MinStock, &p.CategoryID, &p.SupplierID, &barcode, &p.Status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if barcode != nil {
		p.Barcode = *barcode
	}

	return &p, nil
}

// scanProductRows converte as linhas do resultado em entidades
func (r *ProductRepository) scanProductRows(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)

	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer produtos: %w", err)
	}

	return products, nil
}
