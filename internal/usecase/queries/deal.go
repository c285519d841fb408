package queries

import (
	"context"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type DealView struct {
	ID             uuid.UUID           `json:"id"`
	MerchantID     uuid.UUID           `json:"merchant_id"`
	Name           string              `json:"name"`
	Status         string              `json:"status"`
	Preset         *string             `json:"preset,omitempty"`
	DetectedPreset *string             `json:"detected_preset,omitempty"`
	Windows        []WindowView        `json:"windows"`
	GlobalDiscount *GlobalDiscountView `json:"global_discount,omitempty"`
	Overrides      []OverrideView      `json:"overrides"`
	ScheduleReady  bool                `json:"schedule_ready"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type WindowView struct {
	ID            uuid.UUID `json:"id"`
	DayScope      string    `json:"day_scope"`
	DayLabel      string    `json:"day_label"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	DurationLabel *string   `json:"duration_label,omitempty"`
	IsValid       bool      `json:"is_valid"`
	Message       *string   `json:"message,omitempty"`
}

type GlobalDiscountView struct {
	PercentOff     *float64 `json:"percent_off,omitempty"`
	AmountOffCents *int64   `json:"amount_off_cents,omitempty"`
}

type OverrideView struct {
	ItemID          uuid.UUID `json:"item_id"`
	Mode            string    `json:"mode"`
	FixedPriceCents *int64    `json:"fixed_price_cents,omitempty"`
	PercentOff      *float64  `json:"percent_off,omitempty"`
	AmountOffCents  *int64    `json:"amount_off_cents,omitempty"`
}

type DealListItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	WindowCount int       `json:"window_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type ItemPriceView struct {
	ItemID          uuid.UUID `json:"item_id"`
	Name            string    `json:"name"`
	BasePriceCents  int64     `json:"base_price_cents"`
	FinalPriceCents int64     `json:"final_price_cents"`
	DiscountPercent float64   `json:"discount_percent"`
	SavingsCents    int64     `json:"savings_cents"`
	Description     string    `json:"description"`
	Overridden      bool      `json:"overridden"`
}

type PricingView struct {
	DealID uuid.UUID       `json:"deal_id"`
	Items  []ItemPriceView `json:"items"`
}

type MenuItemView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
}

type DealQueries interface {
	GetByID(ctx context.Context, actorID, id uuid.UUID) (*DealView, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*DealListItem, error)
	GetPricing(ctx context.Context, actorID, id uuid.UUID) (*PricingView, error)
}

type DealViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error)
	FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*deal.Deal, error)
}

type MenuItemViewRepo interface {
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]MenuItemView, error)
}

type dealQueriesImpl struct {
	deals DealViewRepo
	items MenuItemViewRepo
}

func NewDealQueries(deals DealViewRepo, items MenuItemViewRepo) DealQueries {
	return &dealQueriesImpl{deals: deals, items: items}
}

func (q *dealQueriesImpl) GetByID(ctx context.Context, actorID, id uuid.UUID) (*DealView, error) {
	d, err := q.findOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}
	return ToDealView(d), nil
}

func (q *dealQueriesImpl) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*DealListItem, error) {
	deals, err := q.deals.FindByMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	items := make([]*DealListItem, len(deals))
	for i, d := range deals {
		items[i] = &DealListItem{
			ID:          d.ID(),
			Name:        d.Name(),
			Status:      d.Status().String(),
			WindowCount: len(d.Windows()),
			CreatedAt:   d.CreatedAt(),
		}
	}
	return items, nil
}

// GetPricing builds the resolved price table over the merchant's menu.
// It is recomputed from scratch on every call; resolved prices are never
// stored, so they cannot lag behind the draft.
func (q *dealQueriesImpl) GetPricing(ctx context.Context, actorID, id uuid.UUID) (*PricingView, error) {
	d, err := q.findOwned(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	menu, err := q.items.ListByMerchant(ctx, d.MerchantID())
	if err != nil {
		return nil, err
	}

	view := &PricingView{DealID: d.ID(), Items: make([]ItemPriceView, len(menu))}
	for i, item := range menu {
		resolved := d.ResolveItem(item.ID, item.BasePriceCents)
		view.Items[i] = ItemPriceView{
			ItemID:          item.ID,
			Name:            item.Name,
			BasePriceCents:  item.BasePriceCents,
			FinalPriceCents: resolved.FinalPriceCents,
			DiscountPercent: resolved.DiscountPercent,
			SavingsCents:    resolved.SavingsCents,
			Description:     resolved.Description,
			Overridden:      !d.OverrideFor(item.ID).IsUseGlobal(),
		}
	}
	return view, nil
}

func (q *dealQueriesImpl) findOwned(ctx context.Context, actorID, id uuid.UUID) (*deal.Deal, error) {
	d, err := q.deals.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrDealNotFound)
		}
		return nil, err
	}
	// Hide other merchants' drafts behind the same not-found answer.
	if d.MerchantID() != actorID {
		return nil, errs.ErrDealNotFound
	}
	return d, nil
}
