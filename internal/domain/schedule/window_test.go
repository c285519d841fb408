//go:build unit

package schedule_test

import (
	"testing"

	"dealdesk/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(scope schedule.DayScope, start, end string) schedule.TimeWindow {
	w := schedule.NewWindow(scope)
	w.Start = start
	w.End = end
	return w
}

func TestTimeWindow_DurationMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		minutes int
		ok      bool
	}{
		{name: "default evening range", start: "17:00", end: "19:00", minutes: 120, ok: true},
		{name: "overnight wrap", start: "22:00", end: "02:00", minutes: 240, ok: true},
		{name: "just before midnight", start: "23:30", end: "00:00", minutes: 30, ok: true},
		{name: "identical times are zero not a full day", start: "17:00", end: "17:00", minutes: 0, ok: true},
		{name: "one minute", start: "23:59", end: "00:00", minutes: 1, ok: true},
		{name: "empty start", start: "", end: "19:00", ok: false},
		{name: "empty end", start: "17:00", end: "", ok: false},
		{name: "hour out of range", start: "24:00", end: "01:00", ok: false},
		{name: "minute out of range", start: "17:60", end: "19:00", ok: false},
		{name: "missing leading zero", start: "9:00", end: "11:00", ok: false},
		{name: "garbage input", start: "5pm", end: "7pm", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := window(schedule.ScopeAll, tt.start, tt.end)
			minutes, ok := w.DurationMinutes()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, minutes)
			}
		})
	}
}

func TestTimeWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		isValid bool
		message string
	}{
		{name: "two hour window", start: "17:00", end: "19:00", isValid: true},
		{name: "exactly 30 minutes", start: "17:00", end: "17:30", isValid: true},
		{name: "exactly 8 hours", start: "16:00", end: "00:00", isValid: true},
		{name: "overnight within bounds", start: "22:00", end: "02:00", isValid: true},
		{name: "missing times win over everything", start: "", end: "", message: "Please set both start and end times"},
		{name: "unparseable start reported as missing", start: "25:00", end: "19:00", message: "Please set both start and end times"},
		{name: "zero duration", start: "17:00", end: "17:00", message: "End time must be after start time"},
		{name: "under 30 minutes", start: "17:00", end: "17:29", message: "Minimum duration is 30 minutes"},
		{name: "over 8 hours", start: "16:00", end: "00:01", message: "Maximum duration is 8 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := window(schedule.ScopeAll, tt.start, tt.end).Validate()
			assert.Equal(t, tt.isValid, v.IsValid)
			assert.Equal(t, tt.message, v.Message)
		})
	}
}

func TestTimeWindow_DurationLabel(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		label string
		ok    bool
	}{
		{name: "hours and minutes", start: "17:00", end: "19:30", label: "2h 30m", ok: true},
		{name: "whole hours collapse minutes", start: "17:00", end: "19:00", label: "2h", ok: true},
		{name: "under an hour collapses hours", start: "17:00", end: "17:45", label: "45m", ok: true},
		{name: "zero duration", start: "17:00", end: "17:00", label: "0m", ok: true},
		{name: "unparseable has no label", start: "bad", end: "19:00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, ok := window(schedule.ScopeAll, tt.start, tt.end).DurationLabel()
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestDetectPreset(t *testing.T) {
	tests := []struct {
		name    string
		windows []schedule.TimeWindow
		preset  schedule.Preset
		ok      bool
	}{
		{
			name: "empty list detects nothing",
		},
		{
			name:    "single ALL window",
			windows: []schedule.TimeWindow{window(schedule.ScopeAll, "17:00", "19:00")},
			preset:  schedule.PresetEveryday,
			ok:      true,
		},
		{
			name:    "single WEEKDAYS window",
			windows: []schedule.TimeWindow{window(schedule.ScopeWeekdays, "17:00", "19:00")},
			preset:  schedule.PresetWeekdays,
			ok:      true,
		},
		{
			name:    "single WEEKENDS window",
			windows: []schedule.TimeWindow{window(schedule.ScopeWeekends, "17:00", "19:00")},
			preset:  schedule.PresetWeekends,
			ok:      true,
		},
		{
			name:    "single specific day is custom",
			windows: []schedule.TimeWindow{window(schedule.ScopeFriday, "17:00", "19:00")},
			preset:  schedule.PresetCustomDays,
			ok:      true,
		},
		{
			name: "multiple specific days are custom",
			windows: []schedule.TimeWindow{
				window(schedule.ScopeMonday, "17:00", "19:00"),
				window(schedule.ScopeWednesday, "17:00", "19:00"),
			},
			preset: schedule.PresetCustomDays,
			ok:     true,
		},
		{
			name: "mixed grouped and specific is custom",
			windows: []schedule.TimeWindow{
				window(schedule.ScopeWeekdays, "17:00", "19:00"),
				window(schedule.ScopeSaturday, "12:00", "14:00"),
			},
			preset: schedule.PresetCustomDays,
			ok:     true,
		},
		{
			name: "multiple grouped windows detect nothing",
			windows: []schedule.TimeWindow{
				window(schedule.ScopeWeekdays, "17:00", "19:00"),
				window(schedule.ScopeWeekends, "12:00", "14:00"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, ok := schedule.DetectPreset(tt.windows)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.preset, preset)
		})
	}
}

func TestDayScope_Label(t *testing.T) {
	tests := []struct {
		scope schedule.DayScope
		label string
	}{
		{schedule.ScopeAll, "Everyday"},
		{schedule.ScopeWeekdays, "Monday - Friday"},
		{schedule.ScopeWeekends, "Saturday - Sunday"},
		{schedule.ScopeMonday, "Monday"},
		{schedule.ScopeSunday, "Sunday"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.label, tt.scope.Label())
	}
}

func TestNewDayScope(t *testing.T) {
	scope, err := schedule.NewDayScope("WED")
	require.NoError(t, err)
	assert.Equal(t, schedule.ScopeWednesday, scope)
	assert.True(t, scope.IsSpecificDay())

	_, err = schedule.NewDayScope("SOMEDAY")
	assert.ErrorIs(t, err, schedule.ErrInvalidDayScope)
}

func TestPreset_Scope(t *testing.T) {
	scope, ok := schedule.PresetEveryday.Scope()
	require.True(t, ok)
	assert.Equal(t, schedule.ScopeAll, scope)

	_, ok = schedule.PresetCustomDays.Scope()
	assert.False(t, ok)
}
