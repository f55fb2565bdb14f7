package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/client"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicateKey = errors.New("já existe um cliente para este usuário ou CPF")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

const clientSelect = `SELECT
	c.id, c.usuario_id, c.cpf, c.endereco, c.cidade, c.estado, c.cep,
	c.data_nascimento, c.observacoes, c.created_at, c.updated_at,
	u.nome, u.email, u.telefone
FROM clientes c
JOIN usuarios u ON u.id = c.usuario_id`

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	exists, err := r.ExistsByUserID(ctx, c.UserID)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}
	if exists {
		return ErrClientDuplicateKey
	}

	if c.CPF != "" {
		exists, err = r.ExistsByCPF(ctx, c.CPF)
		if err != nil {
			return fmt.Errorf("erro ao verificar CPF: %w", err)
		}
		if exists {
			return ErrClientDuplicateKey
		}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO clientes (
			id, usuario_id, cpf, endereco, cidade, estado, cep,
			data_nascimento, observacoes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.UserID, nullIfEmpty(c.CPF), c.Address, c.City, c.State,
		c.ZipCode, c.BirthDate, c.Notes, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	row := r.db.QueryRow(ctx, clientSelect+" WHERE c.id = $1", id)

	c, err := r.scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return c, nil
}

// FindByUserID implementa client.Repository.FindByUserID
func (r *ClientRepository) FindByUserID(ctx context.Context, userID string) (*client.Client, error) {
	row := r.db.QueryRow(ctx, clientSelect+" WHERE c.usuario_id = $1", userID)

	c, err := r.scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente por usuário: %w", err)
	}

	return c, nil
}

func buildClientWhere(filter client.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("u.nome ILIKE $%d", len(args)))
	}
	if filter.CPF != "" {
		args = append(args, filter.CPF)
		conditions = append(conditions, fmt.Sprintf("c.cpf = $%d", len(args)))
	}
	if filter.City != "" {
		args = append(args, "%"+filter.City+"%")
		conditions = append(conditions, fmt.Sprintf("c.cidade ILIKE $%d", len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		conditions = append(conditions, fmt.Sprintf("c.estado = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, filter client.Filter, limit, offset int) ([]*client.Client, error) {
	where, args := buildClientWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf("%s%s ORDER BY u.nome ASC LIMIT $%d OFFSET $%d",
			clientSelect, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanClientRows(rows)
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context, filter client.Filter) (int, error) {
	where, args := buildClientWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM clientes c JOIN usuarios u ON u.id = c.usuario_id%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	result, err := r.db.Exec(ctx,
		`UPDATE clientes SET
			cpf = $1, endereco = $2, cidade = $3, estado = $4, cep = $5,
			data_nascimento = $6, observacoes = $7, updated_at = $8
		WHERE id = $9`,
		nullIfEmpty(c.CPF), c.Address, c.City, c.State, c.ZipCode,
		c.BirthDate, c.Notes, c.UpdatedAt, c.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM clientes WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Exists implementa client.Repository.Exists
func (r *ClientRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clientes WHERE id = $1)",
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar cliente: %w", err)
	}

	return exists, nil
}

// ExistsByUserID implementa client.Repository.ExistsByUserID
func (r *ClientRepository) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clientes WHERE usuario_id = $1)",
		userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar cliente por usuário: %w", err)
	}

	return exists, nil
}

// ExistsByCPF implementa client.Repository.ExistsByCPF
func (r *ClientRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM clientes WHERE cpf = $1)",
		cpf).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar CPF: %w", err)
	}

	return exists, nil
}

func (r *ClientRepository) scanClient(row pgx.Row) (*client.Client, error) {
	var c client.Client
	var cpf *string

	err := row.Scan(
		&c.ID, &c.UserID, &cpf, &c.Address, &c.City, &c.State, &c.ZipCode,
		&c.BirthDate, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
		&c.UserName, &c.UserEmail, &c.UserPhone)
	if err != nil {
		return nil, err
	}

	if cpf != nil {
		c.CPF = *cpf
	}

	return &c, nil
}

// scanClientRows converte as linhas do resultado em entidades
func (r *ClientRepository) scanClientRows(rows pgx.Rows) ([]*client.Client, error) {
	clients := make([]*client.Client, 0)

	for rows.Next() {
		c, err := r.scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer clientes: %w", err)
	}

	return clients, nil
}

// nullIfEmpty converte string vazia em NULL para colunas com unique parcial
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
