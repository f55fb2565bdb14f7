package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
)

// ClientRequest representa a requisição de criação de cliente
type ClientRequest struct {
	UserID    string `json:"usuario_id" binding:"required"`
	CPF       string `json:"cpf"`
	Address   string `json:"endereco"`
	City      string `json:"cidade"`
	State     string `json:"estado"`
	ZipCode   string `json:"cep"`
	BirthDate string `json:"data_nascimento"`
	Notes     string `json:"observacoes"`
}

// ClientUpdateRequest representa a requisição de atualização de cliente
type ClientUpdateRequest struct {
	CPF       string `json:"cpf"`
	Address   string `json:"endereco"`
	City      string `json:"cidade"`
	State     string `json:"estado"`
	ZipCode   string `json:"cep"`
	BirthDate string `json:"data_nascimento"`
	Notes     string `json:"observacoes"`
}

// ClientResponse representa a resposta de cliente
type ClientResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"usuario_id"`
	Name      string     `json:"nome"`
	Email     string     `json:"email"`
	Phone     string     `json:"telefone"`
	CPF       string     `json:"cpf"`
	Address   string     `json:"endereco"`
	City      string     `json:"cidade"`
	State     string     `json:"estado"`
	ZipCode   string     `json:"cep"`
	BirthDate *time.Time `json:"data_nascimento"`
	Notes     string     `json:"observacoes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ClientListResponse representa a resposta de lista de clientes
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clientes"`
	Pagination PaginationMeta   `json:"pagination"`
}

// ToClientResponse converte a entidade para o DTO de resposta
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.UserName,
		Email:     c.UserEmail,
		Phone:     c.UserPhone,
		CPF:       c.CPF,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		BirthDate: c.BirthDate,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converte a lista de entidades para o DTO de listagem
func ToClientListResponse(clients []*client.Client, total int, p Pagination) ClientListResponse {
	items := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, ToClientResponse(c))
	}

	return ClientListResponse{
		Clients:    items,
		Pagination: NewPaginationMeta(total, p),
	}
}
