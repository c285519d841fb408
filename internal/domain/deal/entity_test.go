//go:build unit

package deal_test

import (
	"testing"

	"dealdesk/internal/domain/deal"
	"dealdesk/internal/domain/discount"
	"dealdesk/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(t *testing.T) *deal.Deal {
	t.Helper()
	d, err := deal.NewDeal(uuid.New(), "Happy Hour")
	require.NoError(t, err)
	return d
}

func TestNewDeal(t *testing.T) {
	merchantID := uuid.New()

	d, err := deal.NewDeal(merchantID, "  Taco Tuesday  ")
	require.NoError(t, err)
	assert.Equal(t, "Taco Tuesday", d.Name())
	assert.Equal(t, merchantID, d.MerchantID())
	assert.Equal(t, deal.StatusDraft, d.Status())
	assert.Empty(t, d.Windows())

	_, err = deal.NewDeal(merchantID, "   ")
	assert.ErrorIs(t, err, deal.ErrEmptyName)
}

func TestDeal_SelectPreset(t *testing.T) {
	t.Run("single-window preset replaces the list", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		d.AddCustomWindow()
		d.AddCustomWindow()

		d.SelectPreset(schedule.PresetWeekdays, "", "")

		windows := d.Windows()
		require.Len(t, windows, 1)
		assert.Equal(t, schedule.ScopeWeekdays, windows[0].Scope)
		assert.Equal(t, schedule.DefaultStart, windows[0].Start)
		assert.Equal(t, schedule.DefaultEnd, windows[0].End)
	})

	t.Run("explicit times override the defaults", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetEveryday, "16:00", "18:30")

		windows := d.Windows()
		require.Len(t, windows, 1)
		assert.Equal(t, "16:00", windows[0].Start)
		assert.Equal(t, "18:30", windows[0].End)
	})

	t.Run("custom days clears the list", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetWeekends, "", "")
		d.SelectPreset(schedule.PresetCustomDays, "", "")

		assert.Empty(t, d.Windows())
		assert.Equal(t, schedule.PresetCustomDays, d.Preset())
	})
}

func TestDeal_WindowCommands(t *testing.T) {
	t.Run("custom windows default to Monday evening", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		w := d.AddCustomWindow()

		assert.Equal(t, schedule.ScopeMonday, w.Scope)
		assert.Equal(t, schedule.DefaultStart, w.Start)
		assert.Equal(t, schedule.DefaultEnd, w.End)
		assert.Len(t, d.Windows(), 1)
	})

	t.Run("update one field leaves the rest alone", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		w := d.AddCustomWindow()

		require.NoError(t, d.UpdateWindow(w.ID, schedule.FieldDayScope, "FRI"))
		require.NoError(t, d.UpdateWindow(w.ID, schedule.FieldStart, "20:00"))

		got := d.Windows()[0]
		assert.Equal(t, schedule.ScopeFriday, got.Scope)
		assert.Equal(t, "20:00", got.Start)
		assert.Equal(t, schedule.DefaultEnd, got.End)
	})

	t.Run("update rejects a bad day scope", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		w := d.AddCustomWindow()

		err := d.UpdateWindow(w.ID, schedule.FieldDayScope, "FUNDAY")
		assert.ErrorIs(t, err, schedule.ErrInvalidDayScope)
	})

	t.Run("update of an unknown window fails", func(t *testing.T) {
		d := newDraft(t)
		err := d.UpdateWindow(uuid.New(), schedule.FieldStart, "20:00")
		assert.ErrorIs(t, err, deal.ErrWindowNotFound)
	})

	t.Run("remove is a no-op for unknown IDs", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetCustomDays, "", "")
		w := d.AddCustomWindow()

		d.RemoveWindow(uuid.New())
		assert.Len(t, d.Windows(), 1)

		d.RemoveWindow(w.ID)
		assert.Empty(t, d.Windows())
	})

	t.Run("single-window time edit requires exactly one window", func(t *testing.T) {
		d := newDraft(t)
		assert.ErrorIs(t, d.SetSingleWindowTime("18:00", "20:00"), deal.ErrNoSingleWindow)

		d.SelectPreset(schedule.PresetEveryday, "", "")
		require.NoError(t, d.SetSingleWindowTime("18:00", "20:00"))
		assert.Equal(t, "18:00", d.Windows()[0].Start)
		assert.Equal(t, "20:00", d.Windows()[0].End)
	})
}

func TestDeal_DetectedPreset(t *testing.T) {
	d := newDraft(t)
	d.SelectPreset(schedule.PresetWeekends, "", "")

	preset, ok := d.DetectedPreset()
	require.True(t, ok)
	assert.Equal(t, schedule.PresetWeekends, preset)

	d.SelectPreset(schedule.PresetCustomDays, "", "")
	d.AddCustomWindow()
	preset, ok = d.DetectedPreset()
	require.True(t, ok)
	assert.Equal(t, schedule.PresetCustomDays, preset)
}

func TestDeal_Discounts(t *testing.T) {
	t.Run("percentage and amount are mutually exclusive", func(t *testing.T) {
		d := newDraft(t)
		require.NoError(t, d.SetGlobalPercentage(20))
		assert.True(t, d.Global().HasPercent())

		require.NoError(t, d.SetGlobalAmount(300))
		assert.True(t, d.Global().HasAmount())
		assert.False(t, d.Global().HasPercent())

		d.ClearGlobalDiscount()
		assert.False(t, d.Global().IsSet())
	})

	t.Run("untouched items follow the global discount", func(t *testing.T) {
		d := newDraft(t)
		require.NoError(t, d.SetGlobalPercentage(10))

		got := d.ResolveItem(uuid.New(), 1000)
		assert.Equal(t, int64(900), got.FinalPriceCents)
		assert.Equal(t, "10% off (global)", got.Description)
	})

	t.Run("override takes precedence and reset restores the global", func(t *testing.T) {
		d := newDraft(t)
		itemID := uuid.New()
		require.NoError(t, d.SetGlobalPercentage(10))

		ov, err := discount.NewFixedPriceOverride(500)
		require.NoError(t, err)
		d.SetItemOverride(itemID, ov)

		got := d.ResolveItem(itemID, 1000)
		assert.Equal(t, int64(500), got.FinalPriceCents)
		assert.Equal(t, "Fixed price: $5.00", got.Description)

		d.ResetItemOverride(itemID)
		got = d.ResolveItem(itemID, 1000)
		assert.Equal(t, int64(900), got.FinalPriceCents)
		assert.True(t, d.OverrideFor(itemID).IsUseGlobal())
	})
}

func TestDeal_Publish(t *testing.T) {
	t.Run("schedule readiness", func(t *testing.T) {
		d := newDraft(t)
		assert.False(t, d.ScheduleReady(), "no windows")

		d.SelectPreset(schedule.PresetEveryday, "", "")
		assert.True(t, d.ScheduleReady())

		require.NoError(t, d.SetSingleWindowTime("17:00", "17:00"))
		assert.False(t, d.ScheduleReady(), "invalid window blocks readiness")
	})

	t.Run("publish flips status once", func(t *testing.T) {
		d := newDraft(t)
		d.SelectPreset(schedule.PresetEveryday, "", "")

		require.NoError(t, d.Publish())
		assert.Equal(t, deal.StatusPublished, d.Status())

		assert.ErrorIs(t, d.Publish(), deal.ErrAlreadyPublished)
	})
}
