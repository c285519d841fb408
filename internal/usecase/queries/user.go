package queries

import (
	"context"

	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}
	return view, nil
}
