package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserID = errors.New("usuário é obrigatório")
)

// Client representa um cliente do pet shop, sempre vinculado a um usuário
type Client struct {
	ID        string     `json:"id"`
	UserID    string     `json:"usuario_id"`
	CPF       string     `json:"cpf"`
	Address   string     `json:"endereco"`
	City      string     `json:"cidade"`
	State     string     `json:"estado"`
	ZipCode   string     `json:"cep"`
	BirthDate *time.Time `json:"data_nascimento"`
	Notes     string     `json:"observacoes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Dados do usuário associado, preenchidos nas consultas
	UserName  string `json:"nome,omitempty"`
	UserEmail string `json:"email,omitempty"`
	UserPhone string `json:"telefone,omitempty"`
}

// NewClient cria um novo cliente vinculado a um usuário existente
func NewClient(userID, cpf string) (*Client, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	now := time.Now()
	return &Client{
		ID:        uuid.New().String(),
		UserID:    userID,
		CPF:       cpf,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
