package dto

import (
	"fmt"
	"time"
)

// ErrorResponse representa a estrutura de resposta para erros
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa a estrutura de resposta para operações bem-sucedidas
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewErrorResponse cria uma nova resposta de erro
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{
		Message: message,
		Data:    data,
	}
}

// Pagination representa os parâmetros de paginação de uma listagem
type Pagination struct {
	Page  int
	Limit int
}

// Offset retorna o deslocamento correspondente à página corrente
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// GetPagination retorna uma estrutura de paginação com valores padrão
func GetPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}

// PaginationMeta representa o bloco de paginação das respostas de listagem
type PaginationMeta struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPaginationMeta monta o bloco de paginação a partir do total de registros
func NewPaginationMeta(total int, p Pagination) PaginationMeta {
	pages := 1
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
		if pages == 0 {
			pages = 1
		}
	}

	return PaginationMeta{
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: pages,
	}
}

// ParseDate converte uma data no formato AAAA-MM-DD
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida, use o formato AAAA-MM-DD: %w", err)
	}
	return t, nil
}

// ParseTimeOfDay converte um horário no formato HH:MM ou HH:MM:SS
func ParseTimeOfDay(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("15:04:05", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("horário inválido, use o formato HH:MM: %w", err)
	}
	return t, nil
}
