// Package triage turns normalized briefing records into the filtered,
// sorted, windowed slices the dashboard presents. Every stage is pure:
// the engine never mutates its inputs and has no side effects.
package triage

import (
	"sort"
	"strings"
	"time"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/timeutil"
)

// DefaultAnnouncements is how many unseen announcements the default
// briefing slice shows before an explicit show-all.
const DefaultAnnouncements = 2

// Engine applies the configured filters and the per-request view state.
type Engine struct {
	filters model.FilterConfig
}

// New creates a triage engine with the given filter configuration.
func New(filters model.FilterConfig) *Engine {
	return &Engine{filters: filters}
}

// Assignments runs the full pipeline: base filter, free-text search,
// stable sort, then the default-view window unless state requests show-all.
func (e *Engine) Assignments(state model.ViewState, views []model.AssignmentView, now time.Time) []model.AssignmentView {
	out := e.baseFilter(views)
	out = search(state.Query, out)
	out = sortViews(state.SortKey, out)

	if !state.ShowAll {
		out = e.window(out, now)
	}

	return out
}

func (e *Engine) baseFilter(views []model.AssignmentView) []model.AssignmentView {
	out := make([]model.AssignmentView, 0, len(views))

	for _, v := range views {
		if e.filters.HideNoDueDate && !v.HasDueDate {
			continue
		}
		if e.filters.HideCompleted && isCompleted(v.Status) {
			continue
		}

		out = append(out, v)
	}

	return out
}

func isCompleted(status string) bool {
	s := strings.ToLower(status)
	return strings.HasPrefix(s, "graded") || strings.HasPrefix(s, "submitted")
}

func search(query string, views []model.AssignmentView) []model.AssignmentView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return views
	}

	out := make([]model.AssignmentView, 0, len(views))
	for _, v := range views {
		if strings.Contains(strings.ToLower(v.Name), query) ||
			strings.Contains(strings.ToLower(v.Course), query) {
			out = append(out, v)
		}
	}

	return out
}

// dueInstant resolves a view's due date for ordering. Missing or invalid
// dates sort last under due-asc and first-is-worst under due-desc, so they
// land at the bottom either way.
func dueInstant(v model.AssignmentView, missing time.Time) time.Time {
	if t, ok := timeutil.Parse(v.DueDate); ok {
		return t
	}

	return missing
}

var (
	farFuture = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)
	farPast   = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
)

func sortViews(key string, views []model.AssignmentView) []model.AssignmentView {
	out := make([]model.AssignmentView, len(views))
	copy(out, views)

	switch key {
	case model.SortDueDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return dueInstant(out[i], farPast).After(dueInstant(out[j], farPast))
		})
	case model.SortCourse:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Course < out[j].Course
		})
	case model.SortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	default: // due-asc
		sort.SliceStable(out, func(i, j int) bool {
			return dueInstant(out[i], farFuture).Before(dueInstant(out[j], farFuture))
		})
	}

	return out
}

func (e *Engine) window(views []model.AssignmentView, now time.Time) []model.AssignmentView {
	view := e.filters.DefaultView
	if view == "" {
		view = model.ViewWeek
	}
	if view == model.ViewAll {
		return views
	}

	week := timeutil.WeekWindow(now)
	out := make([]model.AssignmentView, 0, len(views))

	for _, v := range views {
		due, ok := timeutil.Parse(v.DueDate)
		if !ok {
			continue
		}

		switch view {
		case model.ViewDay:
			if timeutil.ClassifyUrgency(due, now) == model.UrgencyToday {
				out = append(out, v)
			}
		default: // week
			if !due.Before(week.Start) && !due.After(week.End) {
				out = append(out, v)
			}
		}
	}

	return out
}

// Announcements partitions the normalized announcement set. The default
// slice is the first DefaultAnnouncements unseen items in feed order; an
// explicit show-all presents the full set, seen and unseen, still in feed
// order.
func (e *Engine) Announcements(state model.ViewState, views []model.AnnouncementView) []model.AnnouncementView {
	if state.ShowAll {
		out := make([]model.AnnouncementView, len(views))
		copy(out, views)
		return out
	}

	out := make([]model.AnnouncementView, 0, DefaultAnnouncements)
	for _, v := range views {
		if v.IsSeen {
			continue
		}

		out = append(out, v)
		if len(out) == DefaultAnnouncements {
			break
		}
	}

	return out
}
