package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName       = errors.New("nome do serviço não pode ser vazio")
	ErrInvalidPrice    = errors.New("preço deve ser maior ou igual a zero")
	ErrInvalidDuration = errors.New("duração deve ser maior que zero")
	ErrInactive        = errors.New("este serviço está inativo")
)

// Status representa o estado do serviço
type Status string

const (
	StatusActive   Status = "ativo"
	StatusInactive Status = "inativo"
)

// Service representa um serviço oferecido pelo pet shop (banho, tosa, consulta)
type Service struct {
	ID          string          `json:"id"`
	Name        string          `json:"nome"`
	Description string          `json:"descricao"`
	Price       decimal.Decimal `json:"preco"`
	Duration    int             `json:"duracao"` // duração em minutos
	CategoryID  *string         `json:"categoria_id"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewService cria um novo serviço
func NewService(name string, price decimal.Decimal, duration int) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now()
	return &Service{
		ID:        uuid.New().String(),
		Name:      name,
		Price:     price,
		Duration:  duration,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o serviço está ativo
func (s *Service) IsActive() bool {
	return s.Status == StatusActive
}
