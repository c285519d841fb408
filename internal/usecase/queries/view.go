package queries

import (
	"sort"

	"dealdesk/internal/domain/deal"
)

// ToDealView derives the full draft view from the aggregate: per-window
// validation and duration labels, the inferred preset, and the override
// table with absent value fields left absent.
func ToDealView(d *deal.Deal) *DealView {
	windows := d.Windows()
	windowViews := make([]WindowView, len(windows))
	for i, w := range windows {
		wv := WindowView{
			ID:       w.ID,
			DayScope: w.Scope.String(),
			DayLabel: w.Scope.Label(),
			Start:    w.Start,
			End:      w.End,
		}
		if label, ok := w.DurationLabel(); ok {
			wv.DurationLabel = &label
		}
		validation := w.Validate()
		wv.IsValid = validation.IsValid
		if validation.Message != "" {
			msg := validation.Message
			wv.Message = &msg
		}
		windowViews[i] = wv
	}

	view := &DealView{
		ID:            d.ID(),
		MerchantID:    d.MerchantID(),
		Name:          d.Name(),
		Status:        d.Status().String(),
		Windows:       windowViews,
		Overrides:     toOverrideViews(d),
		ScheduleReady: d.ScheduleReady(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}

	if p := d.Preset(); p != "" {
		s := p.String()
		view.Preset = &s
	}
	if p, ok := d.DetectedPreset(); ok {
		s := p.String()
		view.DetectedPreset = &s
	}
	if g := d.Global(); g.IsSet() {
		view.GlobalDiscount = &GlobalDiscountView{
			PercentOff:     g.PercentOff(),
			AmountOffCents: g.AmountOffCents(),
		}
	}
	return view
}

func toOverrideViews(d *deal.Deal) []OverrideView {
	overrides := d.Overrides()
	views := make([]OverrideView, 0, len(overrides))
	for itemID, ov := range overrides {
		views = append(views, OverrideView{
			ItemID:          itemID,
			Mode:            ov.Mode().String(),
			FixedPriceCents: ov.FixedPriceCents(),
			PercentOff:      ov.PercentOff(),
			AmountOffCents:  ov.AmountOffCents(),
		})
	}
	// Map iteration order is random; keep the view stable.
	sort.Slice(views, func(i, j int) bool {
		return views[i].ItemID.String() < views[j].ItemID.String()
	})
	return views
}
