package normalize

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morningbutler/butler/internal/model"
)

var now = time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)

func TestShortenName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short name passes through",
			input: "Homework 3: Vector Calculus - Part B",
			want:  "Homework 3: Vector Calculus - Part B",
		},
		{
			name:  "long name keeps the last part after a separator",
			input: "Advanced Topics in Computational Neuroscience: Problem Set Nine",
			want:  "Problem Set Nine",
		},
		{
			name:  "long name without separators is truncated",
			input: strings.Repeat("a", 60),
			want:  strings.Repeat("a", 45) + "…",
		},
		{
			name:  "last part too short falls back to truncation",
			input: strings.Repeat("x", 50) + " - Quiz",
			want:  strings.Repeat("x", 45) + "…",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortenName(tt.input))
		})
	}
}

func TestShortenName_Idempotent(t *testing.T) {
	inputs := []string{
		"Homework 3",
		strings.Repeat("a", 60),
		"Advanced Topics in Computational Neuroscience: Problem Set Nine",
		strings.Repeat("дано", 20),
	}

	for _, input := range inputs {
		once := ShortenName(input)
		assert.Equal(t, once, ShortenName(once), "input=%q", input)
	}
}

func TestAssignment_DueToday(t *testing.T) {
	raw := model.RawAssignment{
		Course: "CS 101",
		Name:   "Homework 3",
		DueAt:  "2026-08-31T23:59:00Z",
	}

	view := Assignment(raw, now)

	assert.Equal(t, "CS 101", view.Course)
	assert.Equal(t, "Homework 3", view.ShortName)
	assert.Equal(t, "Aug 31, 23:59", view.Due)
	assert.True(t, view.HasDueDate)
	assert.Equal(t, model.UrgencyToday, view.Urgency)
	assert.True(t, view.IsUrgent)
	assert.Equal(t, StatusNotSubmitted, view.Status)
}

func TestAssignment_DueBeyondWindow(t *testing.T) {
	raw := model.RawAssignment{
		Course: "CS 101",
		Name:   "Final Project",
		DueAt:  "2026-09-10T23:59:00Z",
	}

	view := Assignment(raw, now)

	assert.Equal(t, model.UrgencyNone, view.Urgency)
	assert.False(t, view.IsUrgent)
}

func TestAssignment_NoDueDate(t *testing.T) {
	view := Assignment(model.RawAssignment{Course: "ART 210", Name: "Sketchbook"}, now)

	assert.Equal(t, NoDueDate, view.Due)
	assert.Empty(t, view.DueDate)
	assert.False(t, view.HasDueDate)
	assert.Equal(t, model.UrgencyNone, view.Urgency)
}

func TestAssignment_MalformedDueDate(t *testing.T) {
	view := Assignment(model.RawAssignment{Name: "Essay", DueAt: "soonish"}, now)

	assert.Equal(t, NoDueDate, view.Due)
	assert.False(t, view.HasDueDate)
}

func TestAssignment_Status(t *testing.T) {
	score := 95.5

	tests := []struct {
		name string
		sub  *model.Submission
		want string
	}{
		{"no submission", nil, StatusNotSubmitted},
		{"unsubmitted", &model.Submission{WorkflowState: "unsubmitted"}, StatusNotSubmitted},
		{"submitted", &model.Submission{WorkflowState: model.WorkflowSubmitted}, StatusSubmitted},
		{"graded with letter grade", &model.Submission{WorkflowState: model.WorkflowGraded, Grade: "A-"}, "Graded: A-"},
		{"graded with score only", &model.Submission{WorkflowState: model.WorkflowGraded, Score: &score}, "Graded: 95.5"},
		{"graded without grade or score", &model.Submission{WorkflowState: model.WorkflowGraded}, StatusGraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Assignment(model.RawAssignment{Name: "Lab 1", Submission: tt.sub}, now)
			assert.Equal(t, tt.want, view.Status)
		})
	}
}

func TestAssignment_PreviewURL(t *testing.T) {
	raw := model.RawAssignment{
		Name: "Lab 1",
		Submission: &model.Submission{
			WorkflowState: model.WorkflowSubmitted,
			PreviewURL:    "https://canvas.example.edu/preview/42",
		},
	}

	view := Assignment(raw, now)

	require.Equal(t, "https://canvas.example.edu/preview/42", view.URL)
}
