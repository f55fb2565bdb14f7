package product

import "context"

// Filter contém os filtros aceitos na listagem de produtos
type Filter struct {
	Name       string
	CategoryID string
	SupplierID string
	Barcode    string
	Status     Status
	LowStock   bool // estoque <= estoque_minimo
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCategory lista os produtos de uma categoria
	FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*Product, error)

	// FindBySupplier lista os produtos de um fornecedor
	FindBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*Product, error)

	// List lista os produtos com filtros e paginação, ordenados por nome
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Product, error)

	// Count conta os produtos que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error

	// AdjustStock aplica um ajuste de estoque atômico com verificação de piso.
	// Retorna ErrInsufficientStock quando o delta negativo ultrapassaria zero.
	AdjustStock(ctx context.Context, id string, delta int) (*Product, error)

	// ExistsByBarcode verifica se já existe um produto com o código de barras
	ExistsByBarcode(ctx context.Context, barcode, excludeID string) (bool, error)

	// CountSaleItems conta os itens de venda que referenciam o produto
	CountSaleItems(ctx context.Context, id string) (int, error)
}
