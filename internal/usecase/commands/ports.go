package commands

import (
	"context"

	"dealdesk/internal/domain/deal"

	"github.com/google/uuid"
)

// Write-side repository ports, implemented under internal/infra.

type DealRepository interface {
	Create(ctx context.Context, d *deal.Deal) error
	FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
	Save(ctx context.Context, d *deal.Deal) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
