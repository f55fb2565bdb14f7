package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/category"
)

// CategoryRequest representa a requisição de categoria (serviço ou produto)
type CategoryRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
}

// CategoryResponse representa a resposta de categoria
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse representa a resposta de lista de categorias
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categorias"`
	Pagination PaginationMeta     `json:"pagination"`
}

// ToServiceCategoryResponse converte a entidade para o DTO de resposta
func ToServiceCategoryResponse(c *category.ServiceCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToProductCategoryResponse converte a entidade para o DTO de resposta
func ToProductCategoryResponse(c *category.ProductCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToServiceCategoryListResponse converte a lista de entidades para o DTO de listagem
func ToServiceCategoryListResponse(list []*category.ServiceCategory, total int, p Pagination) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, ToServiceCategoryResponse(c))
	}

	return CategoryListResponse{
		Categories: items,
		Pagination: NewPaginationMeta(total, p),
	}
}

// ToProductCategoryListResponse converte a lista de entidades para o DTO de listagem
func ToProductCategoryListResponse(list []*category.ProductCategory, total int, p Pagination) CategoryListResponse {
	items := make([]CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, ToProductCategoryResponse(c))
	}

	return CategoryListResponse{
		Categories: items,
		Pagination: NewPaginationMeta(total, p),
	}
}
