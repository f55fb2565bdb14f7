package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/service"
)

// ServiceRequest representa a requisição de serviço
type ServiceRequest struct {
	Name        string          `json:"nome" binding:"required"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco" binding:"required"`
	Duration    int             `json:"duracao" binding:"required,gt=0"`
	CategoryID  *string         `json:"categoria_id"`
	Status      service.Status  `json:"status" binding:"omitempty,oneof=ativo inativo"`
}

// ServiceResponse representa a resposta de serviço
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Duration    int             `json:"duracao"`
	CategoryID  *string         `json:"categoria_id"`
	Status      service.Status  `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ServiceListResponse representa a resposta de lista de serviços
type ServiceListResponse struct {
	Services   []ServiceResponse `json:"servicos"`
	Pagination PaginationMeta    `json:"pagination"`
}

// ToServiceResponse converte a entidade para o DTO de resposta
func ToServiceResponse(s *service.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Duration:    s.Duration,
		CategoryID:  s.CategoryID,
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ToServiceListResponse converte a lista de entidades para o DTO de listagem
func ToServiceListResponse(list []*service.Service, total int, p Pagination) ServiceListResponse {
	items := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToServiceResponse(s))
	}

	return ServiceListResponse{
		Services:   items,
		Pagination: NewPaginationMeta(total, p),
	}
}
