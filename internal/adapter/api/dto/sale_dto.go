package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/sale"
)

// SaleItemInput representa um item na requisição de criação de venda
type SaleItemInput struct {
	ProductID string           `json:"produto_id" binding:"required"`
	Quantity  int              `json:"quantidade" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"valor_unitario"`
	Discount  decimal.Decimal  `json:"desconto"`
}

// SaleRequest representa a requisição de criação de venda
type SaleRequest struct {
	ClientID      string             `json:"cliente_id" binding:"required"`
	StaffID       *string            `json:"funcionario_id"`
	Discount      decimal.Decimal    `json:"desconto"`
	PaymentMethod sale.PaymentMethod `json:"forma_pagamento" binding:"required,oneof=dinheiro cartao_credito cartao_debito pix boleto"`
	Notes         string             `json:"observacoes"`
	Items         []SaleItemInput    `json:"itens" binding:"required,min=1,dive"`
}

// SaleUpdateRequest representa a requisição de atualização de venda
type SaleUpdateRequest struct {
	PaymentMethod sale.PaymentMethod `json:"forma_pagamento" binding:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix boleto"`
	Status        sale.Status        `json:"status" binding:"omitempty,oneof=pendente concluida cancelada"`
	Notes         *string            `json:"observacoes"`
}

// SaleItemRequest representa a requisição de criação de item avulso
type SaleItemRequest struct {
	SaleID    string           `json:"venda_id" binding:"required"`
	ProductID string           `json:"produto_id" binding:"required"`
	Quantity  int              `json:"quantidade" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"valor_unitario"`
	Discount  decimal.Decimal  `json:"desconto"`
}

// SaleItemUpdateRequest representa a requisição de atualização de item
type SaleItemUpdateRequest struct {
	Quantity  *int             `json:"quantidade" binding:"omitempty,gt=0"`
	UnitPrice *decimal.Decimal `json:"valor_unitario"`
	Discount  *decimal.Decimal `json:"desconto"`
}

// SaleItemResponse representa a resposta de item de venda
type SaleItemResponse struct {
	ID          string          `json:"id"`
	SaleID      string          `json:"venda_id"`
	ProductID   string          `json:"produto_id"`
	ProductName string          `json:"produto_nome,omitempty"`
	Quantity    int             `json:"quantidade"`
	UnitPrice   decimal.Decimal `json:"valor_unitario"`
	Discount    decimal.Decimal `json:"desconto"`
	Total       decimal.Decimal `json:"valor_total"`
}

// SaleResponse representa a resposta de venda
type SaleResponse struct {
	ID            string             `json:"id"`
	ClientID      string             `json:"cliente_id"`
	ClientName    string             `json:"cliente_nome"`
	StaffID       *string            `json:"funcionario_id"`
	StaffName     string             `json:"funcionario_nome,omitempty"`
	Date          time.Time          `json:"data"`
	Total         decimal.Decimal    `json:"valor_total"`
	Discount      decimal.Decimal    `json:"desconto"`
	PaymentMethod sale.PaymentMethod `json:"forma_pagamento"`
	Status        sale.Status        `json:"status"`
	Notes         string             `json:"observacoes"`
	Items         []SaleItemResponse `json:"itens,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Sales      []SaleResponse `json:"vendas"`
	Pagination PaginationMeta `json:"pagination"`
}

// SaleItemListResponse representa a resposta de lista de itens de venda
type SaleItemListResponse struct {
	Items      []SaleItemResponse `json:"itens_venda"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ToSaleItemResponse converte a entidade para o DTO de resposta
func ToSaleItemResponse(i *sale.Item) SaleItemResponse {
	return SaleItemResponse{
		ID:          i.ID,
		SaleID:      i.SaleID,
		ProductID:   i.ProductID,
		ProductName: i.ProductName,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		Discount:    i.Discount,
		Total:       i.Total,
	}
}

// ToSaleResponse converte a entidade para o DTO de resposta
func ToSaleResponse(s *sale.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, i := range s.Items {
		items = append(items, ToSaleItemResponse(i))
	}

	return SaleResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		ClientName:    s.ClientName,
		StaffID:       s.StaffID,
		StaffName:     s.StaffName,
		Date:          s.Date,
		Total:         s.Total,
		Discount:      s.Discount,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		Notes:         s.Notes,
		Items:         items,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSaleListResponse converte a lista de entidades para o DTO de listagem
func ToSaleListResponse(list []*sale.Sale, total int, p Pagination) SaleListResponse {
	items := make([]SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSaleResponse(s))
	}

	return SaleListResponse{
		Sales:      items,
		Pagination: NewPaginationMeta(total, p),
	}
}

// ToSaleItemListResponse converte a lista de itens para o DTO de listagem
func ToSaleItemListResponse(list []*sale.Item, total int, p Pagination) SaleItemListResponse {
	items := make([]SaleItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, ToSaleItemResponse(i))
	}

	return SaleItemListResponse{
		Items:      items,
		Pagination: NewPaginationMeta(total, p),
	}
}
