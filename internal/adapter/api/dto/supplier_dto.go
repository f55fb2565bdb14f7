package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name        string `json:"nome" binding:"required"`
	CNPJ        string `json:"cnpj" binding:"required"`
	Phone       string `json:"telefone"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"endereco"`
	City        string `json:"cidade"`
	State       string `json:"estado"`
	ZipCode     string `json:"cep"`
	ContactName string `json:"contato"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	CNPJ        string    `json:"cnpj"`
	Phone       string    `json:"telefone"`
	Email       string    `json:"email"`
	Address     string    `json:"endereco"`
	City        string    `json:"cidade"`
	State       string    `json:"estado"`
	ZipCode     string    `json:"cep"`
	ContactName string    `json:"contato"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Suppliers  []SupplierResponse `json:"fornecedores"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ToSupplierResponse converte a entidade para o DTO de resposta
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		CNPJ:        s.CNPJ,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		ZipCode:     s.ZipCode,
		ContactName: s.ContactName,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToSupplierListResponse converte a lista de entidades para o DTO de listagem
func ToSupplierListResponse(list []*supplier.Supplier, total int, p Pagination) SupplierListResponse {
	items := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToSupplierResponse(s))
	}

	return SupplierListResponse{
		Suppliers:  items,
		Pagination: NewPaginationMeta(total, p),
	}
}
