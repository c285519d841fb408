package discount

import (
	"fmt"
	"math"
)

// ResolvedItemPrice is what the pricing table shows for one menu item.
// It is derived on demand from the base price, the item's override, and
// the global config; nothing here is ever cached or persisted.
type ResolvedItemPrice struct {
	FinalPriceCents int64
	DiscountPercent float64
	SavingsCents    int64
	Description     string
}

// Resolve computes the effective price of an item. One resolver per
// override mode; a zero-value override behaves as USE_GLOBAL so items
// the merchant never touched need no table entry.
func Resolve(basePriceCents int64, override ItemOverride, global Global) ResolvedItemPrice {
	switch override.Mode() {
	case ModeFixedPrice:
		return resolveFixedPrice(basePriceCents, *override.FixedPriceCents())
	case ModePercentageOff:
		return resolvePercentage(basePriceCents, *override.PercentOff(), "")
	case ModeAmountOff:
		return resolveAmountOff(basePriceCents, *override.AmountOffCents(), "")
	}
	return resolveGlobal(basePriceCents, global)
}

func resolveFixedPrice(baseCents, fixedCents int64) ResolvedItemPrice {
	return finish(baseCents, fixedCents,
		percentOfBase(baseCents, baseCents-fixedCents),
		fmt.Sprintf("Fixed price: $%.2f", float64(fixedCents)/100.0))
}

func resolvePercentage(baseCents int64, pct float64, suffix string) ResolvedItemPrice {
	finalCents := int64(math.Round(float64(baseCents) * (1 - pct/100.0)))
	return finish(baseCents, finalCents, pct, formatPercent(pct)+"% off"+suffix)
}

func resolveAmountOff(baseCents, amountCents int64, suffix string) ResolvedItemPrice {
	finalCents := baseCents - amountCents
	return finish(baseCents, finalCents,
		percentOfBase(baseCents, amountCents),
		fmt.Sprintf("$%.2f off%s", float64(amountCents)/100.0, suffix))
}

func resolveGlobal(baseCents int64, global Global) ResolvedItemPrice {
	switch {
	case global.HasPercent():
		return resolvePercentage(baseCents, *global.PercentOff(), " (global)")
	case global.HasAmount():
		return resolveAmountOff(baseCents, *global.AmountOffCents(), " (global)")
	}
	return ResolvedItemPrice{
		FinalPriceCents: baseCents,
		DiscountPercent: 0,
		SavingsCents:    0,
		Description:     "No discount",
	}
}

// percentOfBase guards the zero-base case: with nothing to discount the
// effective rate is 0, never a division by zero.
func percentOfBase(baseCents, offCents int64) float64 {
	if baseCents <= 0 {
		return 0
	}
	return float64(offCents) / float64(baseCents) * 100.0
}

// finish applies the clamps that hold for every mode: the final price is
// floored at zero, the discount percent is confined to [0,100] (a fixed
// price above the base would otherwise report a negative discount, and
// an amount above the base one over 100), and the shown savings never go
// negative.
func finish(baseCents, finalCents int64, pct float64, description string) ResolvedItemPrice {
	if finalCents < 0 {
		finalCents = 0
	}
	pct = math.Max(0, math.Min(100, pct))

	savings := baseCents - finalCents
	if savings < 0 {
		savings = 0
	}

	return ResolvedItemPrice{
		FinalPriceCents: finalCents,
		DiscountPercent: pct,
		SavingsCents:    savings,
		Description:     description,
	}
}
