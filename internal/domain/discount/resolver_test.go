//go:build unit

package discount_test

import (
	"testing"

	"dealdesk/internal/domain/discount"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGlobalPercent(t *testing.T, pct float64) discount.Global {
	t.Helper()
	g, err := discount.NewGlobalPercentage(pct)
	require.NoError(t, err)
	return g
}

func mustGlobalAmount(t *testing.T, cents int64) discount.Global {
	t.Helper()
	g, err := discount.NewGlobalAmount(cents)
	require.NoError(t, err)
	return g
}

func mustFixedPrice(t *testing.T, cents int64) discount.ItemOverride {
	t.Helper()
	ov, err := discount.NewFixedPriceOverride(cents)
	require.NoError(t, err)
	return ov
}

func mustPercentOff(t *testing.T, pct float64) discount.ItemOverride {
	t.Helper()
	ov, err := discount.NewPercentageOverride(pct)
	require.NoError(t, err)
	return ov
}

func mustAmountOff(t *testing.T, cents int64) discount.ItemOverride {
	t.Helper()
	ov, err := discount.NewAmountOffOverride(cents)
	require.NoError(t, err)
	return ov
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		base     int64
		override discount.ItemOverride
		global   discount.Global
		want     discount.ResolvedItemPrice
	}{
		{
			name: "no override no global",
			base: 1500,
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 1500,
				DiscountPercent: 0,
				SavingsCents:    0,
				Description:     "No discount",
			},
		},
		{
			name:   "global percentage applies",
			base:   1200,
			global: mustGlobalPercent(t, 25),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 900,
				DiscountPercent: 25,
				SavingsCents:    300,
				Description:     "25% off (global)",
			},
		},
		{
			name:   "global amount applies",
			base:   1000,
			global: mustGlobalAmount(t, 250),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 750,
				DiscountPercent: 25,
				SavingsCents:    250,
				Description:     "$2.50 off (global)",
			},
		},
		{
			name:     "fixed price override beats global",
			base:     1500,
			override: mustFixedPrice(t, 1200),
			global:   mustGlobalPercent(t, 50),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 1200,
				DiscountPercent: 20,
				SavingsCents:    300,
				Description:     "Fixed price: $12.00",
			},
		},
		{
			name:     "percentage override without global suffix",
			base:     2000,
			override: mustPercentOff(t, 10),
			global:   mustGlobalAmount(t, 500),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 1800,
				DiscountPercent: 10,
				SavingsCents:    200,
				Description:     "10% off",
			},
		},
		{
			name:     "amount override without global suffix",
			base:     800,
			override: mustAmountOff(t, 150),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 650,
				DiscountPercent: 18.75,
				SavingsCents:    150,
				Description:     "$1.50 off",
			},
		},
		{
			name:     "explicit use-global falls through",
			base:     1000,
			override: discount.UseGlobal(),
			global:   mustGlobalPercent(t, 10),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 900,
				DiscountPercent: 10,
				SavingsCents:    100,
				Description:     "10% off (global)",
			},
		},
		{
			name:     "fractional percent keeps trailing digits in label",
			base:     1000,
			override: mustPercentOff(t, 12.5),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 875,
				DiscountPercent: 12.5,
				SavingsCents:    125,
				Description:     "12.5% off",
			},
		},
		{
			name:     "percentage rounds half up",
			base:     999,
			override: mustPercentOff(t, 50),
			want: discount.ResolvedItemPrice{
				FinalPriceCents: 500,
				DiscountPercent: 50,
				SavingsCents:    499,
				Description:     "50% off",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := discount.Resolve(tt.base, tt.override, tt.global)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolvedItemPrice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_Clamps(t *testing.T) {
	t.Run("amount larger than base floors final price at zero", func(t *testing.T) {
		got := discount.Resolve(300, mustAmountOff(t, 500), discount.Global{})
		assert.Equal(t, int64(0), got.FinalPriceCents)
		assert.Equal(t, float64(100), got.DiscountPercent)
		assert.Equal(t, int64(300), got.SavingsCents)
		assert.Equal(t, "$5.00 off", got.Description)
	})

	t.Run("fixed price above base reports zero discount", func(t *testing.T) {
		got := discount.Resolve(1000, mustFixedPrice(t, 1500), discount.Global{})
		assert.Equal(t, int64(1500), got.FinalPriceCents)
		assert.Equal(t, float64(0), got.DiscountPercent)
		assert.Equal(t, int64(0), got.SavingsCents)
	})

	t.Run("zero base never divides by zero", func(t *testing.T) {
		got := discount.Resolve(0, mustAmountOff(t, 200), discount.Global{})
		assert.Equal(t, int64(0), got.FinalPriceCents)
		assert.Equal(t, float64(0), got.DiscountPercent)
		assert.Equal(t, int64(0), got.SavingsCents)
	})

	t.Run("free item under global percent stays free", func(t *testing.T) {
		got := discount.Resolve(0, discount.UseGlobal(), mustGlobalPercent(t, 50))
		assert.Equal(t, int64(0), got.FinalPriceCents)
		assert.Equal(t, int64(0), got.SavingsCents)
	})

	t.Run("resolution is pure", func(t *testing.T) {
		override := mustPercentOff(t, 20)
		first := discount.Resolve(1000, override, discount.Global{})
		second := discount.Resolve(1000, override, discount.Global{})
		assert.Equal(t, first, second)
	})
}

func TestGlobalConstruction(t *testing.T) {
	t.Run("percent must be in (0,100]", func(t *testing.T) {
		_, err := discount.NewGlobalPercentage(0)
		assert.ErrorIs(t, err, discount.ErrInvalidPercent)

		_, err = discount.NewGlobalPercentage(100.01)
		assert.ErrorIs(t, err, discount.ErrInvalidPercent)

		g, err := discount.NewGlobalPercentage(100)
		require.NoError(t, err)
		assert.True(t, g.HasPercent())
	})

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := discount.NewGlobalAmount(0)
		assert.ErrorIs(t, err, discount.ErrInvalidAmount)

		_, err = discount.NewGlobalAmount(-5)
		assert.ErrorIs(t, err, discount.ErrInvalidAmount)
	})

	t.Run("reconstruct rejects both set", func(t *testing.T) {
		pct := 10.0
		amt := int64(100)
		_, err := discount.ReconstructGlobal(&pct, &amt)
		assert.Error(t, err)
	})
}

func TestOverrideConstruction(t *testing.T) {
	t.Run("fixed price allows zero", func(t *testing.T) {
		ov, err := discount.NewFixedPriceOverride(0)
		require.NoError(t, err)
		assert.Equal(t, discount.ModeFixedPrice, ov.Mode())
	})

	t.Run("fixed price rejects negative", func(t *testing.T) {
		_, err := discount.NewFixedPriceOverride(-1)
		assert.ErrorIs(t, err, discount.ErrNegativePrice)
	})

	t.Run("zero value behaves as use-global", func(t *testing.T) {
		var ov discount.ItemOverride
		assert.True(t, ov.IsUseGlobal())

		got := discount.Resolve(500, ov, discount.Global{})
		assert.Equal(t, "No discount", got.Description)
	})

	t.Run("reconstruct requires value matching mode", func(t *testing.T) {
		_, err := discount.ReconstructOverride(discount.ModeFixedPrice, nil, nil, nil)
		assert.Error(t, err)

		pct := 10.0
		_, err = discount.ReconstructOverride(discount.ModeFixedPrice, nil, &pct, nil)
		assert.Error(t, err)
	})
}
