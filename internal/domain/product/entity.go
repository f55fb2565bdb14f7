package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice      = errors.New("preço deve ser maior ou igual a zero")
	ErrNegativeStock     = errors.New("estoque não pode ficar negativo")
	ErrInvalidQuantity   = errors.New("quantidade inválida")
	ErrInactive          = errors.New("o produto está inativo")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// Status representa o estado do produto
type Status string

const (
	StatusActive   Status = "ativo"
	StatusInactive Status = "inativo"
)

// Product representa um produto comercializado pelo pet shop
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	CostPrice   decimal.Decimal `json:"preco_custo"`
	Stock       int             `json:"estoque"`
	MinStock    int             `json:"estoque_minimo"`
	CategoryID  *string         `json:"categoria_id"`
	SupplierID  *string         `json:"fornecedor_id"`
	Barcode     string          `json:"codigo_barras"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Product{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o produto está ativo
func (p *Product) IsActive() bool {
	return p.Status == StatusActive
}

// HasStock verifica se há estoque suficiente para a quantidade pedida
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// IsLowStock verifica se o estoque está abaixo ou igual ao mínimo configurado
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// AdjustStock aplica um ajuste manual de estoque (delta positivo ou negativo).
// O estoque resultante nunca pode ser negativo.
func (p *Product) AdjustStock(delta int) error {
	next := p.Stock + delta
	if next < 0 {
		return ErrInsufficientStock
	}
	p.Stock = next
	p.UpdatedAt = time.Now()
	return nil
}
