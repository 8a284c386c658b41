// Package normalize maps raw feed records into the presentation records the
// triage engine works on. Every function is total: missing or malformed
// fields resolve to documented defaults, never an error.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/timeutil"
)

// MaxShortName is the display length cap for assignment names.
const MaxShortName = 45

// NoDueDate is the placeholder rendered for assignments without a due date.
const NoDueDate = "No due date"

// Submission statuses rendered on assignment cards.
const (
	StatusGraded       = "Graded"
	StatusSubmitted    = "Submitted"
	StatusNotSubmitted = "Not submitted"
)

var separators = regexp.MustCompile(`[:\-–—]`)

// ShortenName caps an assignment name at MaxShortName characters. Names
// within the cap pass through unchanged. Longer names are split on
// separator punctuation and the last part is preferred when it is long
// enough to stand alone; otherwise the name is truncated with an ellipsis.
// The function is idempotent.
func ShortenName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxShortName {
		return name
	}

	parts := separators.Split(name, -1)
	if len(parts) >= 2 {
		last := strings.TrimSpace(parts[len(parts)-1])
		if n := len([]rune(last)); n > 10 && n <= MaxShortName {
			return last
		}
	}

	return string(runes[:MaxShortName]) + "…"
}

// Assignment derives the presentation record for one raw assignment
// relative to now.
func Assignment(raw model.RawAssignment, now time.Time) model.AssignmentView {
	view := model.AssignmentView{
		Course:    raw.Course,
		Name:      raw.Name,
		ShortName: ShortenName(raw.Name),
		Due:       NoDueDate,
		Status:    StatusNotSubmitted,
		Urgency:   model.UrgencyNone,
	}

	if due, ok := timeutil.Parse(raw.DueAt); ok {
		view.Due = timeutil.FormatHuman(due)
		view.DueDate = raw.DueAt
		view.HasDueDate = true
		view.Urgency = timeutil.ClassifyUrgency(due, now)
		view.IsUrgent = timeutil.IsUrgent(due, now)
	}

	if sub := raw.Submission; sub != nil {
		view.URL = sub.PreviewURL

		switch sub.WorkflowState {
		case model.WorkflowGraded:
			if grade := gradeLabel(sub); grade != "" {
				view.Status = StatusGraded + ": " + grade
			} else {
				view.Status = StatusGraded
			}
		case model.WorkflowSubmitted:
			view.Status = StatusSubmitted
		}
	}

	return view
}

func gradeLabel(sub *model.Submission) string {
	if sub.Grade != "" {
		return sub.Grade
	}
	if sub.Score != nil {
		return strconv.FormatFloat(*sub.Score, 'f', -1, 64)
	}

	return ""
}
