package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tecnologiawebnetsystem/pet-shop-back/internal/domain/user"
)

// ErrResetTokenNotFound indica que o token não existe, já foi usado ou expirou
var ErrResetTokenNotFound = errors.New("token inválido ou expirado")

// ResetTokenRepository implementa a interface user.ResetTokenRepository
type ResetTokenRepository struct {
	db *pgxpool.Pool
}

// NewResetTokenRepository cria uma nova instância de ResetTokenRepository
func NewResetTokenRepository(db *pgxpool.Pool) user.ResetTokenRepository {
	return &ResetTokenRepository{
		db: db,
	}
}

// Create implementa user.ResetTokenRepository.Create
func (r *ResetTokenRepository) Create(ctx context.Context, t *user.ResetToken) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reset_senha_tokens (id, usuario_id, token, expira_em, usado, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.UserID, t.Token, t.ExpiresAt, t.Used, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao criar token de redefinição: %w", err)
	}

	return nil
}

// FindValid implementa user.ResetTokenRepository.FindValid
func (r *ResetTokenRepository) FindValid(ctx context.Context, token string) (*user.ResetToken, error) {
	var t user.ResetToken

	err := r.db.QueryRow(ctx,
		`SELECT id, usuario_id, token, expira_em, usado, criado_em
		FROM reset_senha_tokens
		WHERE token = $1 AND usado = FALSE AND expira_em > $2`,
		token, time.Now()).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrResetTokenNotFound
		}
		return nil, fmt.Errorf("erro ao buscar token de redefinição: %w", err)
	}

	return &t, nil
}

// MarkUsed implementa user.ResetTokenRepository.MarkUsed
func (r *ResetTokenRepository) MarkUsed(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE reset_senha_tokens SET usado = TRUE WHERE id = $1",
		id)
	if err != nil {
		return fmt.Errorf("erro ao marcar token como usado: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrResetTokenNotFound
	}

	return nil
}
