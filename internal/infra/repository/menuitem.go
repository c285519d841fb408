package repository

import (
	"context"

	"dealdesk/internal/infra"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuItemRepository struct {
	pool *pgxpool.Pool
}

func NewMenuItemRepository(pool *pgxpool.Pool) *MenuItemRepository {
	return &MenuItemRepository{pool: pool}
}

func (r *MenuItemRepository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]queries.MenuItemView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, base_price_cents
		FROM menu_items
		WHERE merchant_id = $1 AND is_available = true
		ORDER BY name, id`, merchantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var items []queries.MenuItemView
	for rows.Next() {
		var item queries.MenuItemView
		if err := rows.Scan(&item.ID, &item.Name, &item.BasePriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return items, nil
}
