package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/product"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Name        string          `json:"nome" binding:"required"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco" binding:"required"`
	CostPrice   decimal.Decimal `json:"preco_custo"`
	Stock       int             `json:"estoque" binding:"omitempty,gte=0"`
	MinStock    int             `json:"estoque_minimo" binding:"omitempty,gte=0"`
	CategoryID  *string         `json:"categoria_id"`
	SupplierID  *string         `json:"fornecedor_id"`
	Barcode     string          `json:"codigo_barras"`
	Status      product.Status  `json:"status" binding:"omitempty,oneof=ativo inativo"`
}

// StockAdjustRequest representa a requisição de ajuste manual de estoque
type StockAdjustRequest struct {
	Quantity  int    `json:"quantidade" binding:"required,gt=0"`
	Operation string `json:"operacao" binding:"required,oneof=adicionar remover"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	CostPrice   decimal.Decimal `json:"preco_custo"`
	Stock       int             `json:"estoque"`
	MinStock    int             `json:"estoque_minimo"`
	LowStock    bool            `json:"estoque_baixo"`
	CategoryID  *string         `json:"categoria_id"`
	SupplierID  *string         `json:"fornecedor_id"`
	Barcode     string          `json:"codigo_barras"`
	Status      product.Status  `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Products   []ProductResponse `json:"produtos"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ToProductResponse converte a entidade para o DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CostPrice:   p.CostPrice,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.IsLowStock(),
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Barcode:     p.Barcode,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte a lista de entidades para o DTO de listagem
func ToProductListResponse(list []*product.Product, total int, pg Pagination) ProductListResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}

	return ProductListResponse{
		Products:   items,
		Pagination: NewPaginationMeta(total, pg),
	}
}
