// Package timeutil provides the day/week window arithmetic and urgency
// classification used by the briefing triage pipeline.
package timeutil

import (
	"time"

	"github.com/morningbutler/butler/internal/model"
)

// layouts accepted for feed timestamps. Canvas mixes tz-aware and tz-naive
// forms, so naive ones are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Parse reads a feed timestamp. It reports false for empty or unparseable
// input, which callers treat as "no due date" rather than an error.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatHuman renders an instant as a fixed, locale-independent
// "month day, hour:minute" string.
func FormatHuman(t time.Time) string {
	return t.Format("Jan 2, 15:04")
}

// StartOfDay returns now truncated to 00:00:00.000 in now's location.
func StartOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Window is a closed time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// WeekWindow returns [startOfDay(now), startOfDay(now)+7d at 23:59:59.999].
func WeekWindow(now time.Time) Window {
	start := StartOfDay(now)
	end := start.AddDate(0, 0, 7).
		Add(23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond)

	return Window{Start: start, End: end}
}

// ClassifyUrgency partitions a due instant into exactly one of today, week
// or none relative to now. Today means the same calendar day as now; week
// means strictly after tomorrow's start and no later than the week window
// end.
func ClassifyUrgency(due, now time.Time) model.Urgency {
	local := due.In(now.Location())

	if local.Year() == now.Year() && local.YearDay() == now.YearDay() {
		return model.UrgencyToday
	}

	tomorrow := StartOfDay(now).AddDate(0, 0, 1)
	if local.After(tomorrow) && !local.After(WeekWindow(now).End) {
		return model.UrgencyWeek
	}

	return model.UrgencyNone
}

// IsUrgent reports whether due falls in [now, week window end].
func IsUrgent(due, now time.Time) bool {
	return !due.Before(now) && !due.After(WeekWindow(now).End)
}
