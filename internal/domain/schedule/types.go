package schedule

import "errors"

var (
	ErrInvalidDayScope = errors.New("invalid day scope")
	ErrInvalidPreset   = errors.New("invalid schedule preset")
	ErrInvalidField    = errors.New("invalid window field")
)

// DayScope identifies which days a time window applies to: one of the
// grouped scopes or a single weekday.
type DayScope string

const (
	ScopeAll       DayScope = "ALL"
	ScopeWeekdays  DayScope = "WEEKDAYS"
	ScopeWeekends  DayScope = "WEEKENDS"
	ScopeMonday    DayScope = "MON"
	ScopeTuesday   DayScope = "TUE"
	ScopeWednesday DayScope = "WED"
	ScopeThursday  DayScope = "THU"
	ScopeFriday    DayScope = "FRI"
	ScopeSaturday  DayScope = "SAT"
	ScopeSunday    DayScope = "SUN"
)

var dayLabels = map[DayScope]string{
	ScopeAll:       "Everyday",
	ScopeWeekdays:  "Monday - Friday",
	ScopeWeekends:  "Saturday - Sunday",
	ScopeMonday:    "Monday",
	ScopeTuesday:   "Tuesday",
	ScopeWednesday: "Wednesday",
	ScopeThursday:  "Thursday",
	ScopeFriday:    "Friday",
	ScopeSaturday:  "Saturday",
	ScopeSunday:    "Sunday",
}

func NewDayScope(s string) (DayScope, error) {
	scope := DayScope(s)
	if _, ok := dayLabels[scope]; !ok {
		return "", ErrInvalidDayScope
	}
	return scope, nil
}

func (d DayScope) String() string {
	return string(d)
}

// Label returns the display string shown next to a window's times.
func (d DayScope) Label() string {
	return dayLabels[d]
}

// IsSpecificDay reports whether the scope names a single weekday rather
// than one of the grouped scopes.
func (d DayScope) IsSpecificDay() bool {
	switch d {
	case ScopeAll, ScopeWeekdays, ScopeWeekends:
		return false
	}
	_, ok := dayLabels[d]
	return ok
}

// Preset is the named shorthand a merchant picks to seed the window list.
type Preset string

const (
	PresetEveryday   Preset = "EVERYDAY"
	PresetWeekdays   Preset = "WEEKDAYS"
	PresetWeekends   Preset = "WEEKENDS"
	PresetCustomDays Preset = "CUSTOM_DAYS"
)

var presetScopes = map[Preset]DayScope{
	PresetEveryday: ScopeAll,
	PresetWeekdays: ScopeWeekdays,
	PresetWeekends: ScopeWeekends,
}

func NewPreset(s string) (Preset, error) {
	p := Preset(s)
	switch p {
	case PresetEveryday, PresetWeekdays, PresetWeekends, PresetCustomDays:
		return p, nil
	}
	return "", ErrInvalidPreset
}

func (p Preset) String() string {
	return string(p)
}

// Scope returns the day scope a single-window preset maps to. The second
// result is false for CUSTOM_DAYS, which carries no scope of its own.
func (p Preset) Scope() (DayScope, bool) {
	scope, ok := presetScopes[p]
	return scope, ok
}

// WindowField names the mutable fields of a TimeWindow for UpdateWindow.
type WindowField string

const (
	FieldDayScope WindowField = "dayScope"
	FieldStart    WindowField = "start"
	FieldEnd      WindowField = "end"
)

func NewWindowField(s string) (WindowField, error) {
	f := WindowField(s)
	switch f {
	case FieldDayScope, FieldStart, FieldEnd:
		return f, nil
	}
	return "", ErrInvalidField
}
