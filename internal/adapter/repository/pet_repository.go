package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/pet"
)

// ErrPetNotFound indica que o pet não existe
var ErrPetNotFound = errors.New("pet não encontrado")

// PetRepository implementa a interface pet.Repository
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository cria uma nova instância de PetRepository
func NewPetRepository(db *pgxpool.Pool) pet.Repository {
	return &PetRepository{
		db: db,
	}
}

const petSelect = `SELECT
	id, cliente_id, nome, especie, raca, data_nascimento,
	peso, sexo, cor, observacoes, created_at, updated_at
FROM pets`

// Create implementa pet.Repository.Create
func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO pets (
			id, cliente_id, nome, especie, raca, data_nascimento,
			peso, sexo, cor, observacoes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.ClientID, p.Name, p.Species, p.Breed, p.BirthDate,
		p.Weight, p.Sex, p.Color, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar pet: %w", err)
	}

	return nil
}

// FindByID implementa pet.Repository.FindByID
func (r *PetRepository) FindByID(ctx context.Context, id string) (*pet.Pet, error) {
	row := r.db.QueryRow(ctx, petSelect+" WHERE id = $1", id)

	p, err := r.scanPet(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pet: %w", err)
	}

	return p, nil
}

// FindByClient implementa pet.Repository.FindByClient
func (r *PetRepository) FindByClient(ctx context.Context, clientID string) ([]*pet.Pet, error) {
	rows, err := r.db.Query(ctx,
		petSelect+" WHERE cliente_id = $1 ORDER BY nome ASC", clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pets do cliente: %w", err)
	}
	defer rows.Close()

	return r.scanPetRows(rows)
}

func buildPetWhere(filter pet.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("nome ILIKE $%d", len(args)))
	}
	if filter.Species != "" {
		args = append(args, "%"+filter.Species+"%")
		conditions = append(conditions, fmt.Sprintf("especie ILIKE $%d", len(args)))
	}
	if filter.Breed != "" {
		args = append(args, "%"+filter.Breed+"%")
		conditions = append(conditions, fmt.Sprintf("raca ILIKE $%d", len(args)))
	}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		conditions = append(conditions, fmt.Sprintf("cliente_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa pet.Repository.List
func (r *PetRepository) List(ctx context.Context, filter pet.Filter, limit, offset int) ([]*pet.Pet, error) {
	where, args := buildPetWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY nome ASC LIMIT $%d OFFSET $%d",
			petSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pets: %w", err)
	}
	defer rows.Close()

	return r.scanPetRows(rows)
}

// Count implementa pet.Repository.Count
func (r *PetRepository) Count(ctx context.Context, filter pet.Filter) (int, error) {
	where, args := buildPetWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM pets%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pets: %w", err)
	}

	return count, nil
}

// Update implementa pet.Repository.Update
func (r *PetRepository) Update(ctx context.Context, p *pet.Pet) error {
	result, err := r.db.Exec(ctx,
		`UPDATE pets SET
			nome = $1, especie = $2, raca = $3, data_nascimento = $4,
			peso = $5, sexo = $6, cor = $7, observacoes = $8, updated_at = $9
		WHERE id = $10`,
		p.Name, p.Species, p.Breed, p.BirthDate, p.Weight, p.Sex, p.Color,
		p.Notes, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar pet: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPetNotFound
	}

	return nil
}

// Delete implementa pet.Repository.Delete
func (r *PetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM pets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir pet: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrPetNotFound
	}

	return nil
}

func (r *PetRepository) scanPet(row pgx.Row) (*pet.Pet, error) {
	var p pet.Pet

	err := row.Scan(
		&p.ID, &p.ClientID, &p.Name, &p.Species, &p.Breed, &p.BirthDate,
		&p.Weight, &p.Sex, &p.Color, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// scanPetRows converte as linhas do resultado em entidades
func (r *PetRepository) scanPetRows(rows pgx.Rows) ([]*pet.Pet, error) {
	pets := make([]*pet.Pet, 0)

	for rows.Next() {
		p, err := r.scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler pet: %w", err)
		}
		pets = append(pets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer pets: %w", err)
	}

	return pets, nil
}
