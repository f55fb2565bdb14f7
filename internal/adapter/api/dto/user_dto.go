package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
)

// UserRequest representa a requisição de criação de usuário
type UserRequest struct {
	Name     string    `json:"nome" binding:"required"`
	Email    string    `json:"email" binding:"required,email"`
	Password string    `json:"senha" binding:"required,min=6"`
	Phone    string    `json:"telefone"`
	Role     user.Role `json:"tipo" binding:"required,oneof=admin funcionario cliente"`
}

// UserUpdateRequest representa a requisição de atualização de usuário
type UserUpdateRequest struct {
	Name   string      `json:"nome"`
	Email  string      `json:"email" binding:"omitempty,email"`
	Phone  string      `json:"telefone"`
	Role   user.Role   `json:"tipo" binding:"omitempty,oneof=admin funcionario cliente"`
	Status user.Status `json:"status" binding:"omitempty,oneof=ativo inativo"`
}

// PasswordUpdateRequest representa a requisição de troca de senha
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"senha_atual" binding:"required"`
	NewPassword     string `json:"nova_senha" binding:"required,min=6"`
}

// UserResponse representa a resposta de usuário
type UserResponse struct {
	ID           string      `json:"id"`
	Name         string      `json:"nome"`
	Email        string      `json:"email"`
	Phone        string      `json:"telefone"`
	Role         user.Role   `json:"tipo"`
	Status       user.Status `json:"status"`
	RegisteredAt time.Time   `json:"data_cadastro"`
	LastAccessAt *time.Time  `json:"ultimo_acesso"`
}

// UserListResponse representa a resposta de lista de usuários
type UserListResponse struct {
	Users      []UserResponse `json:"usuarios"`
	Pagination PaginationMeta `json:"pagination"`
}

// ToUserResponse converte a entidade para o DTO de resposta
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         u.Role,
		Status:       u.Status,
		RegisteredAt: u.RegisteredAt,
		LastAccessAt: u.LastAccessAt,
	}
}

// ToUserListResponse converte a lista de entidades para o DTO de listagem
func ToUserListResponse(users []*user.User, total int, p Pagination) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, ToUserResponse(u))
	}

	return UserListResponse{
		Users:      items,
		Pagination: NewPaginationMeta(total, p),
	}
}
