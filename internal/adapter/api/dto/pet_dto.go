package dto

import (
	"time"

	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
)

// PetRequest representa a requisição de criação de pet
type PetRequest struct {
	ClientID  string  `json:"cliente_id" binding:"required"`
	Name      string  `json:"nome" binding:"required"`
	Species   string  `json:"especie" binding:"required"`
	Breed     string  `json:"raca"`
	BirthDate string  `json:"data_nascimento"`
	Weight    float64 `json:"peso"`
	Sex       string  `json:"sexo"`
	Color     string  `json:"cor"`
	Notes     string  `json:"observacoes"`
}

// PetUpdateRequest representa a requisição de atualização de pet
type PetUpdateRequest struct {
	Name      string   `json:"nome"`
	Species   string   `json:"especie"`
	Breed     string   `json:"raca"`
	BirthDate string   `json:"data_nascimento"`
	Weight    *float64 `json:"peso"`
	Sex       string   `json:"sexo"`
	Color     string   `json:"cor"`
	Notes     string   `json:"observacoes"`
}

// PetResponse representa a resposta de pet
type PetResponse struct {
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

// PetListResponse representa a resposta de lista de pets
type PetListResponse struct {
	Pets       []PetResponse  `json:"pets"`
	Pagination PaginationMeta `json:"pagination"`
}

// ToPetResponse converte a entidade para o DTO de resposta
func ToPetResponse(p *pet.Pet) PetResponse {
	return PetResponse{
		ID:        p.ID,
		ClientID:  p.ClientID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		BirthDate: p.BirthDate,
		Weight:    p.Weight,
		Sex:       p.Sex,
		Color:     p.Color,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPetListResponse converte a lista de entidades para o DTO de listagem
func ToPetListResponse(pets []*pet.Pet, total int, pg Pagination) PetListResponse {
	items := make([]PetResponse, 0, len(pets))
	for _, p := range pets {
		items = append(items, ToPetResponse(p))
	}

	return PetListResponse{
		Pets:       items,
		Pagination: NewPaginationMeta(total, pg),
	}
}
