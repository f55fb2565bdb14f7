package staff

import "context"

// Filter contém os filtros aceitos na listagem de funcionários
type Filter struct {
	Name      string
	Position  string
	Specialty string
}

// Repository define a interface para operações de repositório de funcionários
type Repository interface {
	// Create cria um novo funcionário
	Create(ctx context.Context, s *Staff) error

	// FindByID busca um funcionário pelo ID
	FindByID(ctx context.Context, id string) (*Staff, error)

	// FindByUserID busca o funcionário associado a um usuário
	FindByUserID(ctx context.Context, userID string) (*Staff, error)

	// List lista os funcionários com filtros e paginação, ordenados pelo nome do usuário
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Staff, error)

	// Count conta os funcionários que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um funcionário existente
	Update(ctx context.Context, s *Staff) error

	// Delete remove um funcionário
	Delete(ctx context.Context, id string) error

	// Exists verifica se um funcionário existe
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByUserID verifica se um usuário já está associado a um funcionário
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
}
