package pet

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do pet não pode ser vazio")
	ErrEmptyClientID = errors.New("cliente é obrigatório")
	ErrEmptySpecies  = errors.New("espécie é obrigatória")
)

// Pet representa um animal de estimação de um cliente
type Pet struct {
	ID        string     `json:"id"`
	ClientID  string     `json:"cliente_id"`
	Name      string     `json:"nome"`
	Species   string     `json:"especie"`
	Breed     string     `json:"raca"`
	BirthDate *time.Time `json:"data_nascimento"`
	Weight    float64    `json:"peso"`
	Sex       string     `json:"sexo"`
	Color     string     `json:"cor"`
	Notes     string     `json:"observacoes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewPet cria um novo pet vinculado a um cliente
func NewPet(clientID, name, species string) (*Pet, error) {
	if clientID == "" {
		return nil, ErrEmptyClientID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if species == "" {
		return nil, ErrEmptySpecies
	}

	now := time.Now()
	return &Pet{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Name:      name,
		Species:   species,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// BelongsTo verifica se o pet pertence ao cliente informado
func (p *Pet) BelongsTo(clientID string) bool {
	return p.ClientID == clientID
}
