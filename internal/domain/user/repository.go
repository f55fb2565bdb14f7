package user

import (
	"context"
	"time"
)

// Filter contém os filtros aceitos na listagem de usuários
type Filter struct {
	Role   Role
	Status Status
}

// Repository define a interface para operações de repositório de usuários
type Repository interface {
	// Create cria um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List lista os usuários com filtros e paginação, ordenados por nome
	List(ctx context.Context, filter Filter, limit, offset int) ([]*User, error)

	// Count conta os usuários que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *User) error

	// Delete remove um usuário
	Delete(ctx context.Context, id string) error

	// UpdatePassword atualiza o hash de senha de um usuário
	UpdatePassword(ctx context.Context, id, hashedPassword string) error

	// UpdateLastAccess atualiza o timestamp de último acesso
	UpdateLastAccess(ctx context.Context, id string) error

	// ExistsByEmail verifica se já existe um usuário com o email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ResetToken representa um token de redefinição de senha
type ResetToken struct {
	ID        string    `json:"id"`
	UserID    string    `json:"usuario_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expira_em"`
	Used      bool      `json:"usado"`
	CreatedAt time.Time `json:"criado_em"`
}

// IsValid verifica se o token ainda pode ser usado
func (t *ResetToken) IsValid(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

// ResetTokenRepository define a interface para tokens de redefinição de senha
type ResetTokenRepository interface {
	// Create registra um novo token
	Create(ctx context.Context, t *ResetToken) error

	// FindValid busca um token não usado e não expirado
	FindValid(ctx context.Context, token string) (*ResetToken, error)

	// MarkUsed marca um token como usado
	MarkUsed(ctx context.Context, id string) error
}
