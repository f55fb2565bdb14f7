package pet

import "context"

// Filter contém os filtros aceitos na listagem de pets
type Filter struct {
	Name     string
	Species  string
	Breed    string
	ClientID string
}

// Repository define a interface para operações de repositório de pets
type Repository interface {
	// Create cria um novo pet
	Create(ctx context.Context, p *Pet) error

	// FindByID busca um pet pelo ID
	FindByID(ctx context.Context, id string) (*Pet, error)

	// FindByClient lista os pets de um cliente
	FindByClient(ctx context.Context, clientID string) ([]*Pet, error)

	// List lista os pets com filtros e paginação, ordenados por nome
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Pet, error)

	// Count conta os pets que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um pet existente
	Update(ctx context.Context, p *Pet) error

	// Delete remove um pet
	Delete(ctx context.Context, id string) error
}
