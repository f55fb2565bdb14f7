package supplier

import "context"

// Filter contém os filtros aceitos na listagem de fornecedores
type Filter struct {
	Name string
	CNPJ string
	City string
}

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista os fornecedores com filtros e paginação, ordenados por nome
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Supplier, error)

	// Count conta os fornecedores que atendem ao filtro
	Count(ctx context.Context, filter Filter) (int, error)

	// Update atualiza os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// Delete remove um fornecedor
	Delete(ctx context.Context, id string) error

	// Exists verifica se um fornecedor existe
	Exists(ctx context.Context, id string) (bool, error)

	// ExistsByCNPJ verifica se já existe um fornecedor com o CNPJ
	ExistsByCNPJ(ctx context.Context, cnpj, excludeID string) (bool, error)

	// CountProducts conta os produtos associados ao fornecedor
	CountProducts(ctx context.Context, id string) (int, error)
}
