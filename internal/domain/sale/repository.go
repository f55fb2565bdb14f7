package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Filter contém os filtros aceitos na listagem de vendas
type Filter struct {
	ClientID      string
	StaffID       string
	DateFrom      *time.Time
	DateTo        *time.Time
	PaymentMethod PaymentMethod
	Status        Status
}

// ItemFilter contém os filtros aceitos na listagem de itens de venda
type ItemFilter struct {
	SaleID    string
	ProductID string
}

// NewItemInput descreve um item a ser criado junto com a venda. Quando
// UnitPrice é nil, o preço corrente do produto é usado.
type NewItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice *decimal.Decimal
	Discount  decimal.Decimal
}

// ItemUpdate descreve a alteração parcial de um item de venda
type ItemUpdate struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Discount  *decimal.Decimal
}

// Repository define a interface para operações de repositório de vendas.
//
// Toda mutação que envolve estoque e total roda em uma única transação com
// bloqueio de linha nos produtos envolvidos: ou tudo é persistido, ou nada.
type Repository interface {
	// CreateWithItems cria a venda com seus itens, verificando produto ativo
	// e estoque suficiente para cada item e decrementando o estoque, tudo na
	// mesma transação. Retorna ErrProductNotFound, ErrInactiveProduct ou
	// ErrInsufficientStock e não persiste nada em caso de falha.
	CreateWithItems(ctx context.Context, s *Sale, items []NewItemInput) error

	// FindByID busca uma venda pelo ID, com seus itens
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas com filtros e paginação, ordenadas por data
	// decrescente
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Sale, error)

	// Count conta as vendas que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza forma de pagamento, status e observações da venda
	Update(ctx context.Context, s *Sale) error

	// Cancel muda o status para cancelada e devolve ao estoque a quantidade
	// de cada item, na mesma transação. Retorna ErrAlreadyCancelled se a
	// venda já estiver cancelada (nenhum estoque é alterado).
	Cancel(ctx context.Context, id string) (*Sale, error)

	// Delete devolve o estoque de todos os itens e remove a venda e seus
	// itens (cascata), na mesma transação
	Delete(ctx context.Context, id string) (*Sale, error)

	// AddItem adiciona um item a uma venda existente: valida produto e
	// estoque, cria o item, incrementa valor_total da venda e decrementa o
	// estoque, na mesma transação
	AddItem(ctx context.Context, saleID string, input NewItemInput) (*Item, error)

	// UpdateItem altera quantidade/valores de um item, ajustando estoque
	// pelo delta de quantidade e o valor_total da venda pela diferença de
	// totais, na mesma transação
	UpdateItem(ctx context.Context, itemID string, update ItemUpdate) (*Item, error)

	// DeleteItem remove um item, decrementando o valor_total da venda e
	// devolvendo a quantidade ao estoque, na mesma transação
	DeleteItem(ctx context.Context, itemID string) error

	// FindItemByID busca um item de venda pelo ID
	FindItemByID(ctx context.Context, itemID string) (*Item, error)

	// ListItems lista itens de venda com filtros e paginação
	ListItems(ctx context.Context, filter ItemFilter, limit, offset int) ([]*Item, error)

	// CountItems conta os itens que atendem ao filtro
	CountItems(ctx context.Context, filter ItemFilter) (int, error)
}
