package commands

import (
	"context"
	"errors"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/discount"
	"dealdesk/internal/domain/schedule"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealCommands interface {
	CreateDeal(ctx context.Context, actorID uuid.UUID, req reqdto.CreateDealRequest) (*queries.DealView, error)
	SelectPreset(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SelectPresetRequest) (*queries.DealView, error)
	AddWindow(ctx context.Context, actorID, dealID uuid.UUID) (*queries.DealView, error)
	UpdateWindow(ctx context.Context, actorID, dealID, windowID uuid.UUID, req reqdto.UpdateWindowRequest) (*queries.DealView, error)
	RemoveWindow(ctx context.Context, actorID, dealID, windowID uuid.UUID) (*queries.DealView, error)
	SetWindowTime(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SetWindowTimeRequest) (*queries.DealView, error)
	SetGlobalDiscount(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SetGlobalDiscountRequest) (*queries.DealView, error)
	SetItemOverride(ctx context.Context, actorID, dealID, itemID uuid.UUID, req reqdto.SetItemOverrideRequest) (*queries.DealView, error)
	ResetItemOverride(ctx context.Context, actorID, dealID, itemID uuid.UUID) (*queries.DealView, error)
	PublishDeal(ctx context.Context, actorID, dealID uuid.UUID) (*queries.DealView, error)
}

type dealCommandsImpl struct {
	dealRepo DealRepository
}

func NewDealCommands(dealRepo DealRepository) DealCommands {
	return &dealCommandsImpl{dealRepo: dealRepo}
}

func (u *dealCommandsImpl) CreateDeal(ctx context.Context, actorID uuid.UUID, req reqdto.CreateDealRequest) (*queries.DealView, error) {
	d, err := deal.NewDeal(actorID, req.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.dealRepo.Create(ctx, d); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.ToDealView(d), nil
}

func (u *dealCommandsImpl) SelectPreset(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SelectPresetRequest) (*queries.DealView, error) {
	preset, err := schedule.NewPreset(req.Preset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		d.SelectPreset(preset, req.GetStart(), req.GetEnd())
		return nil
	})
}

func (u *dealCommandsImpl) AddWindow(ctx context.Context, actorID, dealID uuid.UUID) (*queries.DealView, error) {
	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		d.AddCustomWindow()
		return nil
	})
}

func (u *dealCommandsImpl) UpdateWindow(ctx context.Context, actorID, dealID, windowID uuid.UUID, req reqdto.UpdateWindowRequest) (*queries.DealView, error) {
	field, err := schedule.NewWindowField(req.Field)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		return d.UpdateWindow(windowID, field, req.Value)
	})
}

func (u *dealCommandsImpl) RemoveWindow(ctx context.Context, actorID, dealID, windowID uuid.UUID) (*queries.DealView, error) {
	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		d.RemoveWindow(windowID)
		return nil
	})
}

func (u *dealCommandsImpl) SetWindowTime(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SetWindowTimeRequest) (*queries.DealView, error) {
	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		return d.SetSingleWindowTime(req.Start, req.End)
	})
}

func (u *dealCommandsImpl) SetGlobalDiscount(ctx context.Context, actorID, dealID uuid.UUID, req reqdto.SetGlobalDiscountRequest) (*queries.DealView, error) {
	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		switch {
		case req.PercentOff != nil && req.AmountOffCents != nil:
			return errs.New("global discount cannot be both percentage and amount")
		case req.PercentOff != nil:
			return d.SetGlobalPercentage(*req.PercentOff)
		case req.AmountOffCents != nil:
			return d.SetGlobalAmount(*req.AmountOffCents)
		}
		d.ClearGlobalDiscount()
		return nil
	})
}

func (u *dealCommandsImpl) SetItemOverride(ctx context.Context, actorID, dealID, itemID uuid.UUID, req reqdto.SetItemOverrideRequest) (*queries.DealView, error) {
	mode, err := discount.NewOverrideMode(req.Mode)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	override, err := discount.ReconstructOverride(mode, req.FixedPriceCents, req.PercentOff, req.AmountOffCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		d.SetItemOverride(itemID, override)
		return nil
	})
}

func (u *dealCommandsImpl) ResetItemOverride(ctx context.Context, actorID, dealID, itemID uuid.UUID) (*queries.DealView, error) {
	return u.mutate(ctx, actorID, dealID, func(d *deal.Deal) error {
		d.ResetItemOverride(itemID)
		return nil
	})
}

// PublishDeal applies the publish policy: the core only annotates invalid
// windows, so the gate that an unready schedule cannot go live lives here.
func (u *dealCommandsImpl) PublishDeal(ctx context.Context, actorID, dealID uuid.UUID) (*queries.DealView, error) {
	d, err := u.loadOwned(ctx, actorID, dealID)
	if err != nil {
		return nil, err
	}

	if !d.ScheduleReady() {
		return nil, errs.ErrScheduleNotReady
	}
	if err := d.Publish(); err != nil {
		return nil, errs.Mark(err, errs.ErrAlreadyPublished)
	}

	if err := u.dealRepo.Save(ctx, d); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.ToDealView(d), nil
}

// mutate is the shared load → command → save path every schedule and
// discount edit goes through.
func (u *dealCommandsImpl) mutate(ctx context.Context, actorID, dealID uuid.UUID, fn func(*deal.Deal) error) (*queries.DealView, error) {
	d, err := u.loadOwned(ctx, actorID, dealID)
	if err != nil {
		return nil, err
	}

	if err := fn(d); err != nil {
		if errors.Is(err, deal.ErrWindowNotFound) {
			return nil, errs.ErrWindowNotFound
		}
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := u.dealRepo.Save(ctx, d); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return queries.ToDealView(d), nil
}

func (u *dealCommandsImpl) loadOwned(ctx context.Context, actorID, dealID uuid.UUID) (*deal.Deal, error) {
	d, err := u.dealRepo.FindByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if d.MerchantID() != actorID {
		return nil, errs.ErrDealNotFound
	}
	return d, nil
}
