package repository

import (
	"context"
	"errors"
	"time"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/discount"
	"dealdesk/internal/domain/schedule"
	"dealdesk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealRepository struct {
	pool *pgxpool.Pool
}

func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

type dealRow struct {
	ID                   uuid.UUID
	MerchantID           uuid.UUID
	Name                 string
	Status               string
	Preset               string
	GlobalPercentOff     *float64
	GlobalAmountOffCents *int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	global := d.Global()
	_, err = tx.Exec(ctx, `
		INSERT INTO deals (id, merchant_id, name, status, preset, global_percent_off, global_amount_off_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID(), d.MerchantID(), d.Name(), d.Status().String(), d.Preset().String(),
		global.PercentOff(), global.AmountOffCents(),
	)
	if err != nil {
		return wrapPgErr("failed to insert deal", err)
	}

	if err := r.insertChildren(ctx, tx, d); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

// Save rewrites the draft wholesale: the deals row is updated in place
// and the window and override child rows are deleted and re-inserted
// inside one transaction.
func (r *DealRepository) Save(ctx context.Context, d *deal.Deal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	global := d.Global()
	tag, err := tx.Exec(ctx, `
		UPDATE deals
		SET name = $2, status = $3, preset = $4,
		    global_percent_off = $5, global_amount_off_cents = $6,
		    updated_at = now()
		WHERE id = $1`,
		d.ID(), d.Name(), d.Status().String(), d.Preset().String(),
		global.PercentOff(), global.AmountOffCents(),
	)
	if err != nil {
		return wrapPgErr("failed to update deal", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("deal not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM deal_windows WHERE deal_id = $1`, d.ID()); err != nil {
		return wrapPgErr("failed to clear deal windows", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM deal_item_overrides WHERE deal_id = $1`, d.ID()); err != nil {
		return wrapPgErr("failed to clear item overrides", err)
	}

	if err := r.insertChildren(ctx, tx, d); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit transaction", err)
	}
	return nil
}

func (r *DealRepository) insertChildren(ctx context.Context, tx pgx.Tx, d *deal.Deal) error {
	for i, w := range d.Windows() {
		_, err := tx.Exec(ctx, `
			INSERT INTO deal_windows (id, deal_id, day_scope, start_time, end_time, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			w.ID, d.ID(), w.Scope.String(), w.Start, w.End, i,
		)
		if err != nil {
			return wrapPgErr("failed to insert deal window", err)
		}
	}

	for itemID, ov := range d.Overrides() {
		_, err := tx.Exec(ctx, `
			INSERT INTO deal_item_overrides (deal_id, item_id, mode, fixed_price_cents, percent_off, amount_off_cents)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID(), itemID, ov.Mode().String(), ov.FixedPriceCents(), ov.PercentOff(), ov.AmountOffCents(),
		)
		if err != nil {
			return wrapPgErr("failed to insert item override", err)
		}
	}
	return nil
}

func (r *DealRepository) FindByID(ctx context.Context, id uuid.UUID) (*deal.Deal, error) {
	var row dealRow
	err := r.pool.QueryRow(ctx, `
		SELECT id, merchant_id, name, status, preset,
		       global_percent_off, global_amount_off_cents, created_at, updated_at
		FROM deals WHERE id = $1`, id,
	).Scan(
		&row.ID, &row.MerchantID, &row.Name, &row.Status, &row.Preset,
		&row.GlobalPercentOff, &row.GlobalAmountOffCents, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find deal by ID", err)
	}

	windows, err := r.loadWindows(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	overrides, err := r.loadOverrides(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	return r.reconstruct(row, windows, overrides)
}

func (r *DealRepository) FindByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*deal.Deal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, merchant_id, name, status, preset,
		       global_percent_off, global_amount_off_cents, created_at, updated_at
		FROM deals WHERE merchant_id = $1
		ORDER BY created_at DESC`, merchantID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by merchant", err)
	}
	defer rows.Close()

	var dealRows []dealRow
	for rows.Next() {
		var row dealRow
		if err := rows.Scan(
			&row.ID, &row.MerchantID, &row.Name, &row.Status, &row.Preset,
			&row.GlobalPercentOff, &row.GlobalAmountOffCents, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan deal row", err)
		}
		dealRows = append(dealRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate deal rows", err)
	}

	deals := make([]*deal.Deal, 0, len(dealRows))
	for _, row := range dealRows {
		windows, err := r.loadWindows(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		overrides, err := r.loadOverrides(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		d, err := r.reconstruct(row, windows, overrides)
		if err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, nil
}

func (r *DealRepository) loadWindows(ctx context.Context, dealID uuid.UUID) ([]schedule.TimeWindow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, day_scope, start_time, end_time
		FROM deal_windows WHERE deal_id = $1
		ORDER BY position`, dealID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load deal windows", err)
	}
	defer rows.Close()

	var windows []schedule.TimeWindow
	for rows.Next() {
		var (
			w        schedule.TimeWindow
			scopeRaw string
		)
		if err := rows.Scan(&w.ID, &scopeRaw, &w.Start, &w.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan window row", err)
		}
		scope, err := schedule.NewDayScope(scopeRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid day scope in storage", err)
		}
		w.Scope = scope
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate window rows", err)
	}
	return windows, nil
}

func (r *DealRepository) loadOverrides(ctx context.Context, dealID uuid.UUID) (map[uuid.UUID]discount.ItemOverride, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item_id, mode, fixed_price_cents, percent_off, amount_off_cents
		FROM deal_item_overrides WHERE deal_id = $1`, dealID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load item overrides", err)
	}
	defer rows.Close()

	overrides := make(map[uuid.UUID]discount.ItemOverride)
	for rows.Next() {
		var (
			itemID     uuid.UUID
			modeRaw    string
			fixedPrice *int64
			percentOff *float64
			amountOff  *int64
		)
		if err := rows.Scan(&itemID, &modeRaw, &fixedPrice, &percentOff, &amountOff); err != nil {
			return nil, infra.WrapRepoErr("failed to scan override row", err)
		}
		mode, err := discount.NewOverrideMode(modeRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid override mode in storage", err)
		}
		ov, err := discount.ReconstructOverride(mode, fixedPrice, percentOff, amountOff)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid override values in storage", err)
		}
		overrides[itemID] = ov
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate override rows", err)
	}
	return overrides, nil
}

func (r *DealRepository) reconstruct(row dealRow, windows []schedule.TimeWindow, overrides map[uuid.UUID]discount.ItemOverride) (*deal.Deal, error) {
	status, err := deal.NewStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid deal status in storage", err)
	}

	var preset schedule.Preset
	if row.Preset != "" {
		preset, err = schedule.NewPreset(row.Preset)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid preset in storage", err)
		}
	}

	global, err := discount.ReconstructGlobal(row.GlobalPercentOff, row.GlobalAmountOffCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid global discount in storage", err)
	}

	return deal.Reconstruct(
		row.ID, row.MerchantID, row.Name,
		status, preset, windows, global, overrides,
		row.CreatedAt, row.UpdatedAt,
	), nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
