//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/schedule"
	reqdto "dealdesk/internal/handler/dto/request"
	"dealdesk/internal/infra"
	"dealdesk/internal/pkg/errs"
	"dealdesk/internal/usecase/commands"
	commandsmock "dealdesk/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupDealCommands(t *testing.T) (commands.DealCommands, *commandsmock.MockDealRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := commandsmock.NewMockDealRepository(ctrl)
	return commands.NewDealCommands(repo), repo
}

func draftOwnedBy(t *testing.T, merchantID uuid.UUID) *deal.Deal {
	t.Helper()
	d, err := deal.NewDeal(merchantID, "Happy Hour")
	require.NoError(t, err)
	return d
}

func TestDealCommands_CreateDeal(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("creates and returns the draft view", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

		view, err := uc.CreateDeal(ctx, actorID, reqdto.CreateDealRequest{Name: "Happy Hour"})
		require.NoError(t, err)
		assert.Equal(t, "Happy Hour", view.Name)
		assert.Equal(t, actorID, view.MerchantID)
		assert.Equal(t, "draft", view.Status)
		assert.False(t, view.ScheduleReady)
	})

	t.Run("blank name is a domain validation error", func(t *testing.T) {
		uc, _ := setupDealCommands(t)

		_, err := uc.CreateDeal(ctx, actorID, reqdto.CreateDealRequest{Name: "   "})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestDealCommands_Ownership(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()

	t.Run("missing deal surfaces as not found", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		repo.EXPECT().FindByID(ctx, dealID).
			Return(nil, infra.WrapRepoErr("deal not found", nil, infra.KindNotFound)).Times(1)

		_, err := uc.AddWindow(ctx, actorID, dealID)
		assert.ErrorIs(t, err, errs.ErrDealNotFound)
	})

	t.Run("another merchant's deal surfaces as not found", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		other := draftOwnedBy(t, uuid.New())
		repo.EXPECT().FindByID(ctx, dealID).Return(other, nil).Times(1)

		_, err := uc.AddWindow(ctx, actorID, dealID)
		assert.ErrorIs(t, err, errs.ErrDealNotFound)
	})
}

func TestDealCommands_SelectPreset(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()

	t.Run("applies the preset and persists", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		view, err := uc.SelectPreset(ctx, actorID, dealID, reqdto.SelectPresetRequest{Preset: "WEEKDAYS"})
		require.NoError(t, err)
		require.Len(t, view.Windows, 1)
		assert.Equal(t, "WEEKDAYS", view.Windows[0].DayScope)
		assert.Equal(t, "Monday - Friday", view.Windows[0].DayLabel)
		assert.True(t, view.ScheduleReady)
	})

	t.Run("unknown preset never reaches the repository", func(t *testing.T) {
		uc, _ := setupDealCommands(t)

		_, err := uc.SelectPreset(ctx, actorID, dealID, reqdto.SelectPresetRequest{Preset: "SOMETIMES"})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestDealCommands_UpdateWindow(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()

	t.Run("missing window maps to the window sentinel", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)

		_, err := uc.UpdateWindow(ctx, actorID, dealID, uuid.New(), reqdto.UpdateWindowRequest{Field: "start", Value: "20:00"})
		assert.ErrorIs(t, err, errs.ErrWindowNotFound)
	})

	t.Run("bad field name is rejected before loading", func(t *testing.T) {
		uc, _ := setupDealCommands(t)

		_, err := uc.UpdateWindow(ctx, actorID, dealID, uuid.New(), reqdto.UpdateWindowRequest{Field: "color", Value: "red"})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("invalid times are kept and flagged, not rejected", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		w := d.AddCustomWindow()
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		view, err := uc.UpdateWindow(ctx, actorID, dealID, w.ID, reqdto.UpdateWindowRequest{Field: "start", Value: "banana"})
		require.NoError(t, err)
		require.Len(t, view.Windows, 1)
		assert.False(t, view.Windows[0].IsValid)
		require.NotNil(t, view.Windows[0].Message)
		assert.Equal(t, "Please set both start and end times", *view.Windows[0].Message)
	})
}

func TestDealCommands_SetGlobalDiscount(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()

	t.Run("both forms at once is invalid", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)

		pct := 10.0
		amt := int64(100)
		_, err := uc.SetGlobalDiscount(ctx, actorID, dealID, reqdto.SetGlobalDiscountRequest{PercentOff: &pct, AmountOffCents: &amt})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("empty body clears the discount", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		require.NoError(t, d.SetGlobalPercentage(15))
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		view, err := uc.SetGlobalDiscount(ctx, actorID, dealID, reqdto.SetGlobalDiscountRequest{})
		require.NoError(t, err)
		assert.Nil(t, view.GlobalDiscount)
	})

	t.Run("switching forms replaces, never stacks", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		require.NoError(t, d.SetGlobalPercentage(15))
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		amt := int64(250)
		view, err := uc.SetGlobalDiscount(ctx, actorID, dealID, reqdto.SetGlobalDiscountRequest{AmountOffCents: &amt})
		require.NoError(t, err)
		require.NotNil(t, view.GlobalDiscount)
		assert.Nil(t, view.GlobalDiscount.PercentOff)
		require.NotNil(t, view.GlobalDiscount.AmountOffCents)
		assert.Equal(t, int64(250), *view.GlobalDiscount.AmountOffCents)
	})
}

func TestDealCommands_SetItemOverride(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()
	itemID := uuid.New()

	t.Run("stores the override", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		fixed := int64(800)
		view, err := uc.SetItemOverride(ctx, actorID, dealID, itemID, reqdto.SetItemOverrideRequest{Mode: "FIXED_PRICE", FixedPriceCents: &fixed})
		require.NoError(t, err)
		require.Len(t, view.Overrides, 1)
		assert.Equal(t, itemID, view.Overrides[0].ItemID)
		assert.Equal(t, "FIXED_PRICE", view.Overrides[0].Mode)
	})

	t.Run("value not matching the mode is rejected", func(t *testing.T) {
		uc, _ := setupDealCommands(t)

		pct := 10.0
		_, err := uc.SetItemOverride(ctx, actorID, dealID, itemID, reqdto.SetItemOverrideRequest{Mode: "FIXED_PRICE", PercentOff: &pct})
		assert.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("reset round-trips to use-global", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		require.NoError(t, d.SetGlobalPercentage(10))

		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		view, err := uc.ResetItemOverride(ctx, actorID, dealID, itemID)
		require.NoError(t, err)
		require.Len(t, view.Overrides, 1)
		assert.Equal(t, "USE_GLOBAL", view.Overrides[0].Mode)
	})
}

func TestDealCommands_PublishDeal(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	dealID := uuid.New()

	t.Run("publishes a ready schedule", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		d.SelectPreset(schedule.PresetEveryday, "", "")
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)
		repo.EXPECT().Save(ctx, d).Return(nil).Times(1)

		view, err := uc.PublishDeal(ctx, actorID, dealID)
		require.NoError(t, err)
		assert.Equal(t, "published", view.Status)
	})

	t.Run("refuses an empty schedule", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)

		_, err := uc.PublishDeal(ctx, actorID, dealID)
		assert.ErrorIs(t, err, errs.ErrScheduleNotReady)
	})

	t.Run("refuses an invalid window", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		d.SelectPreset(schedule.PresetEveryday, "17:00", "17:00")
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)

		_, err := uc.PublishDeal(ctx, actorID, dealID)
		assert.ErrorIs(t, err, errs.ErrScheduleNotReady)
	})

	t.Run("refuses double publication", func(t *testing.T) {
		uc, repo := setupDealCommands(t)
		d := draftOwnedBy(t, actorID)
		d.SelectPreset(schedule.PresetEveryday, "", "")
		require.NoError(t, d.Publish())
		repo.EXPECT().FindByID(ctx, dealID).Return(d, nil).Times(1)

		_, err := uc.PublishDeal(ctx, actorID, dealID)
		assert.ErrorIs(t, err, errs.ErrAlreadyPublished)
	})
}
