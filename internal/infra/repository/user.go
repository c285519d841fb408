package repository

import (
	"context"
	"errors"

	"dealdesk/internal/infra"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view         queries.AuthorizedUserView
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, display_name, is_active, password_hash
		FROM users WHERE email = $1`, email,
	).Scan(&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.IsActive, &passwordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, passwordHash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, role, display_name, is_active
		FROM users WHERE id = $1`, id,
	).Scan(&view.ID, &view.Email, &view.Role, &view.DisplayName, &view.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `
		UPDATE users SET last_login_at = now() WHERE id = $1`, userID,
	); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
