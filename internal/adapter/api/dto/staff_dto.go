package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/staff"
)

// StaffRequest representa a requisição de criação de funcionário
type StaffRequest struct {
	UserID    string          `json:"usuario_id" binding:"required"`
	Position  string          `json:"cargo" binding:"required"`
	Salary    decimal.Decimal `json:"salario"`
	HiredAt   string          `json:"data_contratacao"`
	Document  string          `json:"documento"`
	Specialty string          `json:"especialidade"`
}

// StaffUpdateRequest representa a requisição de atualização de funcionário
type StaffUpdateRequest struct {
	Position  string           `json:"cargo"`
	Salary    *decimal.Decimal `json:"salario"`
	HiredAt   string           `json:"data_contratacao"`
	Document  string           `json:"documento"`
	Specialty string           `json:"especialidade"`
}

// StaffResponse representa a resposta de funcionário
type StaffResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"usuario_id"`
	Name      string          `json:"nome"`
	Email     string          `json:"email"`
	Status    string          `json:"status"`
	Position  string          `json:"cargo"`
	Salary    decimal.Decimal `json:"salario"`
	HiredAt   *time.Time      `json:"data_contratacao"`
	Document  string          `json:"documento"`
	Specialty string          `json:"especialidade"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StaffListResponse representa a resposta de lista de funcionários
type StaffListResponse struct {
	Staff      []StaffResponse `json:"funcionarios"`
	Pagination PaginationMeta  `json:"pagination"`
}

// ToStaffResponse converte a entidade para o DTO de resposta
func ToStaffResponse(s *staff.Staff) StaffResponse {
	return StaffResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Name:      s.UserName,
		Email:     s.UserEmail,
		Status:    s.UserStatus,
		Position:  s.Position,
		Salary:    s.Salary,
		HiredAt:   s.HiredAt,
		Document:  s.Document,
		Specialty: s.Specialty,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToStaffListResponse converte a lista de entidades para o DTO de listagem
func ToStaffListResponse(list []*staff.Staff, total int, p Pagination) StaffListResponse {
	items := make([]StaffResponse, 0, len(list))
	for _, s := range list {
		items = append(items, ToStaffResponse(s))
	}

	return StaffListResponse{
		Staff:      items,
		Pagination: NewPaginationMeta(total, p),
	}
}
