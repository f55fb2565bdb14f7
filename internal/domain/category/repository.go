package category

import "context"

// ServiceCategoryRepository define a interface para categorias de serviço
type ServiceCategoryRepository interface {
	// Create cria uma nova categoria de serviço
	Create(ctx context.Context, c *ServiceCategory) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*ServiceCategory, error)

	// List lista as categorias com paginação, ordenadas por nome
	List(ctx context.Context, name string, limit, offset int) ([]*ServiceCategory, error)

	// Count conta as categorias que atendem ao filtro de nome
	Count(ctx context.Context, name string) (int, error)

	// Update atualiza uma categoria existente
	Update(ctx context.Context, c *ServiceCategory) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error

	// ExistsByName verifica se já existe uma categoria com o nome (case-insensitive)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)

	// CountServices conta os serviços associados à categoria
	CountServices(ctx context.Context, id string) (int, error)
}

// ProductCategoryRepository define a interface para categorias de produto
type ProductCategoryRepository interface {
	// Create cria uma nova categoria de produto
	Create(ctx context.Context, c *ProductCategory) error

	// FindByID busca uma categoria pelo ID
	FindByID(ctx context.Context, id string) (*ProductCategory, error)

	// List lista as categorias com paginação, ordenadas por nome
	List(ctx context.Context, name string, limit, offset int) ([]*ProductCategory, error)

	// Count conta as categorias que atendem ao filtro de nome
	Count(ctx context.Context, name string) (int, error)

	// Update atualiza uma categoria existente
	Update(ctx context.Context, c *ProductCategory) error

	// Delete remove uma categoria
	Delete(ctx context.Context, id string) error

	// ExistsByName verifica se já existe uma categoria com o nome (case-insensitive)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)

	// CountProducts conta os produtos associados à categoria
	CountProducts(ctx context.Context, id string) (int, error)
}
