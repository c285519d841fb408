package deal

import (
	"errors"
	"strings"
	"time"

	"dealdesk/internal/domain/discount"
	"dealdesk/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("deal name cannot be empty")
	ErrInvalidStatus    = errors.New("invalid deal status")
	ErrWindowNotFound   = errors.New("time window not found")
	ErrNoSingleWindow   = errors.New("deal does not have exactly one window")
	ErrAlreadyPublished = errors.New("deal is already published")
)

// Deal is the draft a merchant edits: the window list, the deal-wide
// discount, and the per-item override table. The draft is owned by one
// editing session; every mutation goes through a command method and every
// public view is re-derived from current state, so nothing can go stale.
type Deal struct {
	id         uuid.UUID
	merchantID uuid.UUID
	name       string
	status     Status
	preset     schedule.Preset
	windows    []schedule.TimeWindow
	global     discount.Global
	overrides  map[uuid.UUID]discount.ItemOverride
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDeal(merchantID uuid.UUID, name string) (*Deal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Deal{
		id:         uuid.New(),
		merchantID: merchantID,
		name:       name,
		status:     StatusDraft,
		overrides:  make(map[uuid.UUID]discount.ItemOverride),
	}, nil
}

func Reconstruct(
	id, merchantID uuid.UUID,
	name string,
	status Status,
	preset schedule.Preset,
	windows []schedule.TimeWindow,
	global discount.Global,
	overrides map[uuid.UUID]discount.ItemOverride,
	createdAt, updatedAt time.Time,
) *Deal {
	if overrides == nil {
		overrides = make(map[uuid.UUID]discount.ItemOverride)
	}
	return &Deal{
		id:         id,
		merchantID: merchantID,
		name:       name,
		status:     status,
		preset:     preset,
		windows:    windows,
		global:     global,
		overrides:  overrides,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// ---------------------------------------------------------------------
// Schedule commands
// ---------------------------------------------------------------------

// SelectPreset replaces the window list wholesale. A single-window preset
// leaves exactly one window with the mapped scope; CUSTOM_DAYS empties
// the list so the merchant adds days explicitly. Previous windows are
// discarded, never merged.
func (d *Deal) SelectPreset(preset schedule.Preset, start, end string) {
	if start == "" {
		start = schedule.DefaultStart
	}
	if end == "" {
		end = schedule.DefaultEnd
	}

	d.preset = preset
	if scope, ok := preset.Scope(); ok {
		w := schedule.NewWindow(scope)
		w.Start = start
		w.End = end
		d.windows = []schedule.TimeWindow{w}
		return
	}
	d.windows = nil
}

// AddCustomWindow appends a Monday 17:00-19:00 window; only meaningful
// under CUSTOM_DAYS.
func (d *Deal) AddCustomWindow() schedule.TimeWindow {
	w := schedule.NewWindow(schedule.ScopeMonday)
	d.windows = append(d.windows, w)
	return w
}

// RemoveWindow deletes the identified window; no-op when absent.
func (d *Deal) RemoveWindow(windowID uuid.UUID) {
	for i, w := range d.windows {
		if w.ID == windowID {
			d.windows = append(d.windows[:i], d.windows[i+1:]...)
			return
		}
	}
}

// UpdateWindow sets one field on the identified window. Other windows
// are left untouched and are not re-validated.
func (d *Deal) UpdateWindow(windowID uuid.UUID, field schedule.WindowField, value string) error {
	for i := range d.windows {
		if d.windows[i].ID != windowID {
			continue
		}
		switch field {
		case schedule.FieldDayScope:
			scope, err := schedule.NewDayScope(value)
			if err != nil {
				return err
			}
			d.windows[i].Scope = scope
		case schedule.FieldStart:
			d.windows[i].Start = value
		case schedule.FieldEnd:
			d.windows[i].End = value
		default:
			return schedule.ErrInvalidField
		}
		return nil
	}
	return ErrWindowNotFound
}

// SetSingleWindowTime is the convenience path for the single-window
// presets: it edits the only window's times directly.
func (d *Deal) SetSingleWindowTime(start, end string) error {
	if len(d.windows) != 1 {
		return ErrNoSingleWindow
	}
	d.windows[0].Start = start
	d.windows[0].End = end
	return nil
}

// ---------------------------------------------------------------------
// Discount commands
// ---------------------------------------------------------------------

// SetGlobalPercentage makes the deal-wide discount a percentage, clearing
// any previously set amount.
func (d *Deal) SetGlobalPercentage(percentOff float64) error {
	g, err := discount.NewGlobalPercentage(percentOff)
	if err != nil {
		return err
	}
	d.global = g
	return nil
}

// SetGlobalAmount makes the deal-wide discount a flat amount, clearing
// any previously set percentage.
func (d *Deal) SetGlobalAmount(amountOffCents int64) error {
	g, err := discount.NewGlobalAmount(amountOffCents)
	if err != nil {
		return err
	}
	d.global = g
	return nil
}

// ClearGlobalDiscount removes the deal-wide discount entirely.
func (d *Deal) ClearGlobalDiscount() {
	d.global = discount.Global{}
}

// SetItemOverride records the item's override, creating the table entry
// on first edit.
func (d *Deal) SetItemOverride(itemID uuid.UUID, override discount.ItemOverride) {
	d.overrides[itemID] = override
}

// ResetItemOverride returns the item to USE_GLOBAL with every value
// field cleared, making it indistinguishable from an item that was never
// overridden.
func (d *Deal) ResetItemOverride(itemID uuid.UUID) {
	d.overrides[itemID] = discount.UseGlobal()
}

// ---------------------------------------------------------------------
// Publication
// ---------------------------------------------------------------------

// Publish flips the draft to published. Whether an invalid schedule may
// publish is the caller's policy, surfaced through window validation;
// the entity only refuses double publication.
func (d *Deal) Publish() error {
	if d.status == StatusPublished {
		return ErrAlreadyPublished
	}
	d.status = StatusPublished
	return nil
}

// ---------------------------------------------------------------------
// Derived queries
// ---------------------------------------------------------------------

// Windows returns a copy of the window list, invalid entries included.
func (d *Deal) Windows() []schedule.TimeWindow {
	out := make([]schedule.TimeWindow, len(d.windows))
	copy(out, d.windows)
	return out
}

// DetectedPreset infers the preset from the window list.
func (d *Deal) DetectedPreset() (schedule.Preset, bool) {
	return schedule.DetectPreset(d.windows)
}

// ScheduleReady reports whether the schedule can be published: at least
// one window and none invalid.
func (d *Deal) ScheduleReady() bool {
	if len(d.windows) == 0 {
		return false
	}
	for _, w := range d.windows {
		if !w.Validate().IsValid {
			return false
		}
	}
	return true
}

// OverrideFor returns the stored override, or USE_GLOBAL for items the
// merchant never touched.
func (d *Deal) OverrideFor(itemID uuid.UUID) discount.ItemOverride {
	if ov, ok := d.overrides[itemID]; ok {
		return ov
	}
	return discount.UseGlobal()
}

// ResolveItem prices one menu item under the current configuration.
func (d *Deal) ResolveItem(itemID uuid.UUID, basePriceCents int64) discount.ResolvedItemPrice {
	return discount.Resolve(basePriceCents, d.OverrideFor(itemID), d.global)
}

func (d *Deal) Overrides() map[uuid.UUID]discount.ItemOverride {
	out := make(map[uuid.UUID]discount.ItemOverride, len(d.overrides))
	for k, v := range d.overrides {
		out[k] = v
	}
	return out
}

func (d *Deal) ID() uuid.UUID           { return d.id }
func (d *Deal) MerchantID() uuid.UUID   { return d.merchantID }
func (d *Deal) Name() string            { return d.name }
func (d *Deal) Status() Status          { return d.status }
func (d *Deal) Preset() schedule.Preset { return d.preset }
func (d *Deal) Global() discount.Global { return d.global }
func (d *Deal) CreatedAt() time.Time    { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time    { return d.updatedAt }
