package service

import "context"

// Filter contém os filtros aceitos na listagem de serviços
type Filter struct {
	Name       string
	CategoryID string
	Status     Status
}

// Repository define a interface para operações de repositório de serviços
type Repository interface {
	// Create cria um novo serviço
	Create(ctx context.Context, s *Service) error

	// FindByID busca um serviço pelo ID
	FindByID(ctx context.Context, id string) (*Service, error)

	// FindByCategory lista os serviços de uma categoria
	FindByCategory(ctx context.Context, categoryID string, limit, offset int) ([]*Service, error)

	// List lista os serviços com filtros e paginação, ordenados por nome
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Service, error)

	// Count conta os serviços que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um serviço existente
	Update(ctx context.Context, s *Service) error

	// Delete remove um serviço
	Delete(ctx context.Context, id string) error

	// CountAppointments conta os agendamentos que referenciam o serviço
	CountAppointments(ctx context.Context, id string) (int, error)
}
