package staff

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyUserID   = errors.New("usuário é obrigatório")
	ErrEmptyPosition = errors.New("cargo é obrigatório")
)

// Staff representa um funcionário do pet shop, sempre vinculado a um usuário
type Staff struct {
	ID        string          `json:"id"`
	UserID    string          `json:"usuario_id"`
	Position  string          `json:"cargo"`
	Salary    decimal.Decimal `json:"salario"`
	HiredAt   *time.Time      `json:"data_contratacao"`
	Document  string          `json:"documento"`
	Specialty string          `json:"especialidade"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	// Dados do usuário associado, preenchidos nas consultas
	UserName   string `json:"nome,omitempty"`
	UserEmail  string `json:"email,omitempty"`
	UserStatus string `json:"status,omitempty"`
}

// NewStaff cria um novo funcionário vinculado a um usuário existente
func NewStaff(userID, position string) (*Staff, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if position == "" {
		return nil, ErrEmptyPosition
	}

	now := time.Now()
	return &Staff{
		ID:        uuid.New().String(),
		UserID:    userID,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive verifica se o usuário associado ao funcionário está ativo
func (s *Staff) IsActive() bool {
	return s.UserStatus == "ativo"
}
