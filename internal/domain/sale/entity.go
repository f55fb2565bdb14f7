package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyClientID      = errors.New("cliente é obrigatório")
	ErrNoItems            = errors.New("é necessário informar pelo menos um item para a venda")
	ErrInvalidQuantity    = errors.New("quantidade deve ser um número inteiro positivo")
	ErrNegativeDiscount   = errors.New("desconto não pode ser negativo")
	ErrInvalidPayment     = errors.New("forma de pagamento inválida")
	ErrInvalidStatus      = errors.New("status de venda inválido")
	ErrCancelled          = errors.New("não é possível alterar uma venda cancelada")
	ErrItemSaleCancelled  = errors.New("não é possível alterar itens de uma venda cancelada")
	ErrAlreadyCancelled   = errors.New("a venda já está cancelada")
	ErrItemNotFound       = errors.New("item de venda não encontrado")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrInactiveProduct    = errors.New("o produto está inativo")
	ErrProductNotFound    = errors.New("produto não encontrado")
)

// Status representa o estado da venda
type Status string

const (
	StatusPending   Status = "pendente"
	StatusCompleted Status = "concluida"
	StatusCancelled Status = "cancelada"
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentCredit     PaymentMethod = "cartao_credito"
	PaymentDebit      PaymentMethod = "cartao_debito"
	PaymentPix        PaymentMethod = "pix"
	PaymentBankSlip   PaymentMethod = "boleto"
)

// IsValidStatus verifica se o valor é um status conhecido
func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsValidPaymentMethod verifica se o valor é uma forma de pagamento conhecida
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentPix, PaymentBankSlip:
		return true
	}
	return false
}

// Item representa um item de venda (produto, quantidade e valores)
type Item struct {
	ID        string          `json:"id"`
	SaleID    string          `json:"venda_id"`
	ProductID string          `json:"produto_id"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"valor_unitario"`
	Discount  decimal.Decimal `json:"desconto"`
	Total     decimal.Decimal `json:"valor_total"`

	// Dados do produto, preenchidos nas consultas
	ProductName string `json:"produto_nome,omitempty"`
}

// ItemTotal calcula o total de um item: valor_unitario × quantidade − desconto.
// Toda a aritmética monetária usa decimal de ponto fixo; nunca float.
func ItemTotal(unitPrice decimal.Decimal, quantity int, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Sub(discount)
}

// NewItem cria um novo item de venda com o total já calculado
func NewItem(saleID, productID string, quantity int, unitPrice, discount decimal.Decimal) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}

	return &Item{
		ID:        uuid.New().String(),
		SaleID:    saleID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Discount:  discount,
		Total:     ItemTotal(unitPrice, quantity, discount),
	}, nil
}

// Recalculate recalcula o total do item a partir dos campos atuais
func (i *Item) Recalculate() {
	i.Total = ItemTotal(i.UnitPrice, i.Quantity, i.Discount)
}

// Sale representa uma venda de produtos para um cliente
type Sale struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"cliente_id"`
	StaffID       *string         `json:"funcionario_id"`
	Date          time.Time       `json:"data"`
	Total         decimal.Decimal `json:"valor_total"`
	Discount      decimal.Decimal `json:"desconto"`
	PaymentMethod PaymentMethod   `json:"forma_pagamento"`
	Status        Status          `json:"status"`
	Notes         string          `json:"observacoes"`
	Items         []*Item         `json:"itens,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Dados relacionados, preenchidos nas consultas
	ClientName  string `json:"cliente_nome,omitempty"`
	ClientEmail string `json:"cliente_email,omitempty"`
	StaffName   string `json:"funcionario_nome,omitempty"`
}

// NewSale cria uma nova venda. Seguindo o fluxo do ponto de venda, a venda
// nasce com status concluida; o status pendente existe no enum mas nenhum
// fluxo de criação passa por ele.
func NewSale(clientID string, staffID *string, discount decimal.Decimal, payment PaymentMethod, notes string) (*Sale, error) {
	if clientID == "" {
		return nil, ErrEmptyClientID
	}
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}
	if !IsValidPaymentMethod(payment) {
		return nil, ErrInvalidPayment
	}

	now := time.Now()
	return &Sale{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		StaffID:       staffID,
		Date:          now,
		Total:         decimal.Zero,
		Discount:      discount,
		PaymentMethod: payment,
		Status:        StatusCompleted,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AddItem agrega um item à venda e acumula o total
func (s *Sale) AddItem(item *Item) {
	item.SaleID = s.ID
	s.Items = append(s.Items, item)
	s.Total = s.Total.Add(item.Total)
}

// ApplyDiscount aplica o desconto geral sobre o total acumulado
func (s *Sale) ApplyDiscount() {
	s.Total = s.Total.Sub(s.Discount)
}

// IsCancelled verifica se a venda está cancelada
func (s *Sale) IsCancelled() bool {
	return s.Status == StatusCancelled
}

// SumItems soma o valor_total de todos os itens
func (s *Sale) SumItems() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.Items {
		sum = sum.Add(it.Total)
	}
	return sum
}
