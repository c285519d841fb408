package response

import (
	"time"

	"dealdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealResponse struct {
	ID             uuid.UUID               `json:"id"`
	MerchantID     uuid.UUID               `json:"merchantId"`
	Name           string                  `json:"name"`
	Status         string                  `json:"status"`
	Preset         *string                 `json:"preset,omitempty"`
	DetectedPreset *string                 `json:"detectedPreset,omitempty"`
	Windows        []WindowResponse        `json:"windows"`
	GlobalDiscount *GlobalDiscountResponse `json:"globalDiscount,omitempty"`
	Overrides      []OverrideResponse      `json:"overrides"`
	ScheduleReady  bool                    `json:"scheduleReady"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type WindowResponse struct {
	ID            uuid.UUID `json:"id"`
	DayScope      string    `json:"dayScope"`
	DayLabel      string    `json:"dayLabel"`
	Start         string    `json:"start"`
	End           string    `json:"end"`
	DurationLabel *string   `json:"durationLabel,omitempty"`
	IsValid       bool      `json:"isValid"`
	Message       *string   `json:"message,omitempty"`
}

type GlobalDiscountResponse struct {
	PercentOff     *float64 `json:"percentOff,omitempty"`
	AmountOffCents *int64   `json:"amountOffCents,omitempty"`
}

type OverrideResponse struct {
	ItemID          uuid.UUID `json:"itemId"`
	Mode            string    `json:"mode"`
	FixedPriceCents *int64    `json:"fixedPriceCents,omitempty"`
	PercentOff      *float64  `json:"percentOff,omitempty"`
	AmountOffCents  *int64    `json:"amountOffCents,omitempty"`
}

type DealListResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	WindowCount int       `json:"windowCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ItemPriceResponse struct {
	ItemID          uuid.UUID `json:"itemId"`
	Name            string    `json:"name"`
	BasePriceCents  int64     `json:"basePriceCents"`
	FinalPriceCents int64     `json:"finalPriceCents"`
	DiscountPercent float64   `json:"discountPercent"`
	SavingsCents    int64     `json:"savingsCents"`
	Description     string    `json:"description"`
	Overridden      bool      `json:"overridden"`
}

type PricingResponse struct {
	DealID uuid.UUID           `json:"dealId"`
	Items  []ItemPriceResponse `json:"items"`
}

func FromDealView(rm *queries.DealView) *DealResponse {
	windows := make([]WindowResponse, len(rm.Windows))
	for i, w := range rm.Windows {
		windows[i] = WindowResponse{
			ID:            w.ID,
			DayScope:      w.DayScope,
			DayLabel:      w.DayLabel,
			Start:         w.Start,
			End:           w.End,
			DurationLabel: w.DurationLabel,
			IsValid:       w.IsValid,
			Message:       w.Message,
		}
	}

	overrides := make([]OverrideResponse, len(rm.Overrides))
	for i, o := range rm.Overrides {
		overrides[i] = OverrideResponse{
			ItemID:          o.ItemID,
			Mode:            o.Mode,
			FixedPriceCents: o.FixedPriceCents,
			PercentOff:      o.PercentOff,
			AmountOffCents:  o.AmountOffCents,
		}
	}

	resp := &DealResponse{
		ID:             rm.ID,
		MerchantID:     rm.MerchantID,
		Name:           rm.Name,
		Status:         rm.Status,
		Preset:         rm.Preset,
		DetectedPreset: rm.DetectedPreset,
		Windows:        windows,
		Overrides:      overrides,
		ScheduleReady:  rm.ScheduleReady,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
	if rm.GlobalDiscount != nil {
		resp.GlobalDiscount = &GlobalDiscountResponse{
			PercentOff:     rm.GlobalDiscount.PercentOff,
			AmountOffCents: rm.GlobalDiscount.AmountOffCents,
		}
	}
	return resp
}

func FromDealListItem(rm *queries.DealListItem) *DealListResponse {
	return &DealListResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Status:      rm.Status,
		WindowCount: rm.WindowCount,
		CreatedAt:   rm.CreatedAt,
	}
}

func FromPricingView(rm *queries.PricingView) *PricingResponse {
	items := make([]ItemPriceResponse, len(rm.Items))
	for i, item := range rm.Items {
		items[i] = ItemPriceResponse{
			ItemID:          item.ItemID,
			Name:            item.Name,
			BasePriceCents:  item.BasePriceCents,
			FinalPriceCents: item.FinalPriceCents,
			DiscountPercent: item.DiscountPercent,
			SavingsCents:    item.SavingsCents,
			Description:     item.Description,
			Overridden:      item.Overridden,
		}
	}
	return &PricingResponse{DealID: rm.DealID, Items: items}
}
