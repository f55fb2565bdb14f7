package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
)

// Erros específicos do repositório
var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	exists, err := r.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do usuário: %w", err)
	}
	if exists {
		return ErrUserDuplicateKey
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO usuarios (
			id, nome, email, senha, telefone, tipo, status,
			data_cadastro, ultimo_acesso
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.Name, u.Email, u.Password, u.Phone, u.Role, u.Status,
		u.RegisteredAt, u.LastAccessAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, email, senha, telefone, tipo, status,
			data_cadastro, ultimo_acesso
		FROM usuarios WHERE id = $1`,
		id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.Role, &u.Status,
		&u.RegisteredAt, &u.LastAccessAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User

	err := r.db.QueryRow(ctx,
		`SELECT id, nome, email, senha, telefone, tipo, status,
			data_cadastro, ultimo_acesso
		FROM usuarios WHERE LOWER(email) = LOWER($1)`,
		email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.Role, &u.Status,
		&u.RegisteredAt, &u.LastAccessAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário por email: %w", err)
	}

	return &u, nil
}

func buildUserWhere(filter user.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if filter.Role != "" {
		args = append(args, filter.Role)
		conditions = append(conditions, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, filter user.Filter, limit, offset int) ([]*user.User, error) {
	where, args := buildUserWhere(filter)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT id, nome, email, senha, telefone, tipo, status,
			data_cadastro, ultimo_acesso
		FROM usuarios%s
		ORDER BY nome ASC
		LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	return r.scanUserRows(rows)
}

// Count implementa user.Repository.Count
func (r *UserRepository) Count(ctx context.Context, filter user.Filter) (int, error) {
	where, args := buildUserWhere(filter)

	var count int
	err := r.db.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM usuarios%s", where),
		args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	return count, nil
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result, err := r.db.Exec(ctx,
		`UPDATE usuarios SET
			nome = $1, email = $2, telefone = $3, tipo = $4, status = $5
		WHERE id = $6`,
		u.Name, u.Email, u.Phone, u.Role, u.Status, u.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete implementa user.Repository.Delete
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdatePassword implementa user.Repository.UpdatePassword
func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE usuarios SET senha = $1 WHERE id = $2",
		hashedPassword, id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar senha: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateLastAccess implementa user.Repository.UpdateLastAccess
func (r *UserRepository) UpdateLastAccess(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		"UPDATE usuarios SET ultimo_acesso = $1 WHERE id = $2",
		time.Now(), id)
	if err != nil {
		return fmt.Errorf("erro ao atualizar último acesso: %w", err)
	}

	return nil
}

// ExistsByEmail implementa user.Repository.ExistsByEmail
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM usuarios WHERE LOWER(email) = LOWER($1))",
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar email: %w", err)
	}

	return exists, nil
}

// scanUserRows converte as linhas do resultado em entidades
func (r *UserRepository) scanUserRows(rows pgx.Rows) ([]*user.User, error) {
	users := make([]*user.User, 0)

	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Password, &u.Phone, &u.Role,
			&u.Status, &u.RegisteredAt, &u.LastAccessAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer usuários: %w", err)
	}

	return users, nil
}
