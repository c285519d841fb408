package discount

import "errors"

var ErrInvalidOverrideMode = errors.New("invalid override mode")

// OverrideMode tags the per-item override union. Any mode is reachable
// from any other; transitions always go through the deal commands.
type OverrideMode string

const (
	ModeUseGlobal     OverrideMode = "USE_GLOBAL"
	ModeFixedPrice    OverrideMode = "FIXED_PRICE"
	ModePercentageOff OverrideMode = "PERCENTAGE_OFF"
	ModeAmountOff     OverrideMode = "AMOUNT_OFF"
)

func NewOverrideMode(s string) (OverrideMode, error) {
	m := OverrideMode(s)
	switch m {
	case ModeUseGlobal, ModeFixedPrice, ModePercentageOff, ModeAmountOff:
		return m, nil
	}
	return "", ErrInvalidOverrideMode
}

func (m OverrideMode) String() string {
	return string(m)
}

// ItemOverride replaces the global discount for one menu item. Exactly
// the field matching the mode is populated; USE_GLOBAL carries none.
type ItemOverride struct {
	mode            OverrideMode
	fixedPriceCents *int64
	percentOff      *float64
	amountOffCents  *int64
}

// UseGlobal is the override every item starts from and returns to on
// reset: follow the deal-wide discount, all value fields cleared.
func UseGlobal() ItemOverride {
	return ItemOverride{mode: ModeUseGlobal}
}

func NewFixedPriceOverride(fixedPriceCents int64) (ItemOverride, error) {
	if fixedPriceCents < 0 {
		return ItemOverride{}, ErrNegativePrice
	}
	return ItemOverride{mode: ModeFixedPrice, fixedPriceCents: &fixedPriceCents}, nil
}

func NewPercentageOverride(percentOff float64) (ItemOverride, error) {
	if percentOff <= 0 || percentOff > 100 {
		return ItemOverride{}, ErrInvalidPercent
	}
	return ItemOverride{mode: ModePercentageOff, percentOff: &percentOff}, nil
}

func NewAmountOffOverride(amountOffCents int64) (ItemOverride, error) {
	if amountOffCents <= 0 {
		return ItemOverride{}, ErrInvalidAmount
	}
	return ItemOverride{mode: ModeAmountOff, amountOffCents: &amountOffCents}, nil
}

// ReconstructOverride rebuilds a persisted override, enforcing that the
// populated value field matches the mode.
func ReconstructOverride(mode OverrideMode, fixedPriceCents *int64, percentOff *float64, amountOffCents *int64) (ItemOverride, error) {
	switch mode {
	case ModeUseGlobal:
		if fixedPriceCents != nil || percentOff != nil || amountOffCents != nil {
			return ItemOverride{}, errors.New("USE_GLOBAL override must not carry values")
		}
		return UseGlobal(), nil
	case ModeFixedPrice:
		if fixedPriceCents == nil || percentOff != nil || amountOffCents != nil {
			return ItemOverride{}, errors.New("FIXED_PRICE override requires exactly a fixed price")
		}
		return NewFixedPriceOverride(*fixedPriceCents)
	case ModePercentageOff:
		if percentOff == nil || fixedPriceCents != nil || amountOffCents != nil {
			return ItemOverride{}, errors.New("PERCENTAGE_OFF override requires exactly a percentage")
		}
		return NewPercentageOverride(*percentOff)
	case ModeAmountOff:
		if amountOffCents == nil || fixedPriceCents != nil || percentOff != nil {
			return ItemOverride{}, errors.New("AMOUNT_OFF override requires exactly an amount")
		}
		return NewAmountOffOverride(*amountOffCents)
	}
	return ItemOverride{}, ErrInvalidOverrideMode
}

func (o ItemOverride) Mode() OverrideMode {
	return o.mode
}

func (o ItemOverride) IsUseGlobal() bool {
	return o.mode == ModeUseGlobal || o.mode == ""
}

func (o ItemOverride) FixedPriceCents() *int64 {
	return o.fixedPriceCents
}

func (o ItemOverride) PercentOff() *float64 {
	return o.percentOff
}

func (o ItemOverride) AmountOffCents() *int64 {
	return o.amountOffCents
}
