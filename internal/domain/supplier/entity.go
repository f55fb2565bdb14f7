package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome do fornecedor não pode ser vazio")
	ErrEmptyCNPJ = errors.New("CNPJ é obrigatório")
)

// Supplier representa um fornecedor de produtos
type Supplier struct {
	ID          string    `json:"id"`
	Name        string    `json:"nome"`
	CNPJ        string    `json:"cnpj"`
	Phone       string    `json:"telefone"`
	Email       string    `json:"email"`
	Address     string    `json:"endereco"`
	City        string    `json:"cidade"`
	State       string    `json:"estado"`
	ZipCode     string    `json:"cep"`
	ContactName string    `json:"contato"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewSupplier cria um novo fornecedor
func NewSupplier(name, cnpj string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cnpj == "" {
		return nil, ErrEmptyCNPJ
	}

	now := time.Now()
	return &Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		CNPJ:      cnpj,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
