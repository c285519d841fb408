package schedule

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

const (
	DefaultStart = "17:00"
	DefaultEnd   = "19:00"

	// Duration bounds for a valid window, in minutes.
	MinDurationMinutes = 30
	MaxDurationMinutes = 480

	minutesPerDay = 24 * 60
)

var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// TimeWindow is one contiguous start-end range on the days named by Scope.
// Times are wall-clock "HH:MM" strings exactly as the merchant typed them;
// a window with bad times stays in the list and is flagged by Validate,
// never dropped.
type TimeWindow struct {
	ID    uuid.UUID
	Scope DayScope
	Start string
	End   string
}

// NewWindow returns a window with the default 17:00-19:00 range.
func NewWindow(scope DayScope) TimeWindow {
	return TimeWindow{
		ID:    uuid.New(),
		Scope: scope,
		Start: DefaultStart,
		End:   DefaultEnd,
	}
}

func minuteOfDay(s string) (int, bool) {
	m := timeOfDayRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	mm := int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return h*60 + mm, true
}

// DurationMinutes computes the window length. An end earlier than the
// start crosses midnight and wraps; identical times mean zero, not 24h.
// ok is false when either time is missing or unparseable.
func (w TimeWindow) DurationMinutes() (minutes int, ok bool) {
	start, okStart := minuteOfDay(w.Start)
	end, okEnd := minuteOfDay(w.End)
	if !okStart || !okEnd {
		return 0, false
	}
	return (end + minutesPerDay - start) % minutesPerDay, true
}

// DurationLabel formats the window length as "Xh Ym", collapsing a zero
// component to "Xh" or "Ym" alone.
func (w TimeWindow) DurationLabel() (string, bool) {
	minutes, ok := w.DurationMinutes()
	if !ok {
		return "", false
	}
	return FormatDuration(minutes), true
}

func FormatDuration(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// Validation is the annotated result of checking one window. Invalid
// windows are data, not errors: the merchant is usually mid-edit and the
// UI has to keep working (the caller decides whether publishing blocks).
type Validation struct {
	IsValid bool
	Message string
}

const (
	msgMissingTimes = "Please set both start and end times"
	msgEndNotAfter  = "End time must be after start time"
	msgTooShort     = "Minimum duration is 30 minutes"
	msgTooLong      = "Maximum duration is 8 hours"
)

// Validate checks the window's duration bounds. Rules short-circuit in
// order: times present, duration positive, at least 30 minutes, at most
// 8 hours.
func (w TimeWindow) Validate() Validation {
	minutes, ok := w.DurationMinutes()
	if !ok {
		return Validation{Message: msgMissingTimes}
	}
	if minutes == 0 {
		return Validation{Message: msgEndNotAfter}
	}
	if minutes < MinDurationMinutes {
		return Validation{Message: msgTooShort}
	}
	if minutes > MaxDurationMinutes {
		return Validation{Message: msgTooLong}
	}
	return Validation{IsValid: true}
}

// DetectPreset infers the preset a window list represents, so the UI can
// stay consistent after the list is mutated from elsewhere. This is a
// derived query on purpose: storing the preset redundantly would let it
// desync from the windows.
func DetectPreset(windows []TimeWindow) (Preset, bool) {
	if len(windows) == 0 {
		return "", false
	}
	if len(windows) == 1 {
		switch windows[0].Scope {
		case ScopeAll:
			return PresetEveryday, true
		case ScopeWeekdays:
			return PresetWeekdays, true
		case ScopeWeekends:
			return PresetWeekends, true
		}
	}
	for _, w := range windows {
		if w.Scope.IsSpecificDay() {
			return PresetCustomDays, true
		}
	}
	return "", false
}
