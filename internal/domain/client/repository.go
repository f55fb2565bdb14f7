package client

import "context"

// Filter contém os filtros aceitos na listagem de clientes
type Filter struct {
	Name  string
	CPF   string
	City  string
	State string
}

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// FindByUserID busca o cliente associado a um usuário
	FindByUserID(ctx context.Context, userID string) (*Client, error)

	// List lista os clientes com filtros e paginação, ordenados pelo nome do usuário
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Client, error)

	// Count conta os clientes que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error

	// Exists verifica se um cliente existe
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByUserID verifica se um usuário já está associado a um cliente
	ExistsByUserID(ctx context.Context, userID string) (bool, error)

	// ExistsByCPF verifica se já existe um cliente com o CPF
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)
}
