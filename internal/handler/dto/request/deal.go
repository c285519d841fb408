package request

type CreateDealRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectPresetRequest struct {
	Preset string  `json:"preset" binding:"required"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

func (r SelectPresetRequest) GetStart() string {
	if r.Start == nil {
		return ""
	}
	return *r.Start
}

func (r SelectPresetRequest) GetEnd() string {
	if r.End == nil {
		return ""
	}
	return *r.End
}

type UpdateWindowRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type SetWindowTimeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// SetGlobalDiscountRequest carries at most one of the two forms; both
// absent clears the deal-wide discount.
type SetGlobalDiscountRequest struct {
	PercentOff     *float64 `json:"percent_off,omitempty"`
	AmountOffCents *int64   `json:"amount_off_cents,omitempty"`
}

type SetItemOverrideRequest struct {
	Mode            string   `json:"mode" binding:"required"`
	FixedPriceCents *int64   `json:"fixed_price_cents,omitempty"`
	PercentOff      *float64 `json:"percent_off,omitempty"`
	AmountOffCents  *int64   `json:"amount_off_cents,omitempty"`
}
