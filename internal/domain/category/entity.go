package category

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome da categoria não pode ser vazio")

// ServiceCategory representa uma categoria de serviços (ex: estética, saúde)
type ServiceCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductCategory representa uma categoria de produtos (ex: alimentação, higiene)
type ProductCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewServiceCategory cria uma nova categoria de serviço
func NewServiceCategory(name, description string) (*ServiceCategory, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &ServiceCategory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewProductCategory cria uma nova categoria de produto
func NewProductCategory(name, description string) (*ProductCategory, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	return &ProductCategory{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
