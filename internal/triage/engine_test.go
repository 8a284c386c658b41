package triage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morningbutler/butler/internal/model"
)

var now = time.Date(2026, time.August, 31, 8, 0, 0, 0, time.UTC)

func assignment(course, name, dueAt, status string) model.AssignmentView {
	return model.AssignmentView{
		Course:     course,
		Name:       name,
		ShortName:  name,
		DueDate:    dueAt,
		HasDueDate: dueAt != "",
		Status:     status,
	}
}

func names(views []model.AssignmentView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Name)
	}
	return out
}

func TestEngine_BaseFilter(t *testing.T) {
	views := []model.AssignmentView{
		assignment("CS 101", "Homework 3", "2026-09-01T23:59:00Z", "Not submitted"),
		assignment("CS 101", "Sketchbook", "", "Not submitted"),
		assignment("MATH 210", "Quiz 4", "2026-09-02T23:59:00Z", "Graded: A-"),
		assignment("MATH 210", "Quiz 5", "2026-09-03T23:59:00Z", "Submitted"),
	}

	// Expectations are in the default due-asc order, which the engine
	// always applies; the undated Sketchbook sorts last.
	tests := []struct {
		name    string
		filters model.FilterConfig
		want    []string
	}{
		{
			name:    "no filters keeps everything",
			filters: model.FilterConfig{},
			want:    []string{"Homework 3", "Quiz 4", "Quiz 5", "Sketchbook"},
		},
		{
			name:    "hide no due date",
			filters: model.FilterConfig{HideNoDueDate: true},
			want:    []string{"Homework 3", "Quiz 4", "Quiz 5"},
		},
		{
			name:    "hide completed drops graded and submitted",
			filters: model.FilterConfig{HideCompleted: true},
			want:    []string{"Homework 3", "Sketchbook"},
		},
		{
			name:    "both filters",
			filters: model.FilterConfig{HideNoDueDate: true, HideCompleted: true},
			want:    []string{"Homework 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(tt.filters)
			got := engine.Assignments(model.ViewState{ShowAll: true}, views, now)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestEngine_Search(t *testing.T) {
	views := []model.AssignmentView{
		assignment("CS 101", "Homework 3", "2026-09-01T23:59:00Z", "Not submitted"),
		assignment("MATH 210", "Quiz 4", "2026-09-02T23:59:00Z", "Not submitted"),
		assignment("BIOL 120", "Lab report", "2026-09-03T23:59:00Z", "Not submitted"),
	}
	engine := New(model.FilterConfig{})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{Query: "HOMEWORK", ShowAll: true}, views, now)
		assert.Equal(t, []string{"Homework 3"}, names(got))
	})

	t.Run("matches course", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{Query: "math", ShowAll: true}, views, now)
		assert.Equal(t, []string{"Quiz 4"}, names(got))
	})

	t.Run("blank query passes everything", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{Query: "   ", ShowAll: true}, views, now)
		assert.Len(t, got, 3)
	})

	t.Run("no match yields empty", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{Query: "chemistry", ShowAll: true}, views, now)
		assert.Empty(t, got)
	})
}

func TestEngine_Sort(t *testing.T) {
	views := []model.AssignmentView{
		assignment("MATH 210", "Quiz 4", "2026-09-03T23:59:00Z", "Submitted"),
		assignment("CS 101", "Homework 3", "2026-09-01T23:59:00Z", "Not submitted"),
		assignment("ART 210", "Sketchbook", "", "Not submitted"),
		assignment("BIOL 120", "Lab report", "2026-09-02T23:59:00Z", "Graded: A"),
	}
	engine := New(model.FilterConfig{})

	t.Run("due ascending puts undated last", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{SortKey: model.SortDueAsc, ShowAll: true}, views, now)
		assert.Equal(t, []string{"Homework 3", "Lab report", "Quiz 4", "Sketchbook"}, names(got))
	})

	t.Run("due descending keeps undated last", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{SortKey: model.SortDueDesc, ShowAll: true}, views, now)
		assert.Equal(t, []string{"Quiz 4", "Lab report", "Homework 3", "Sketchbook"}, names(got))
	})

	t.Run("course", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{SortKey: model.SortCourse, ShowAll: true}, views, now)
		assert.Equal(t, []string{"Sketchbook", "Lab report", "Homework 3", "Quiz 4"}, names(got))
	})

	t.Run("status", func(t *testing.T) {
		got := engine.Assignments(model.ViewState{SortKey: model.SortStatus, ShowAll: true}, views, now)
		assert.Equal(t, []string{"Lab report", "Homework 3", "Sketchbook", "Quiz 4"}, names(got))
	})
}

// On a fully dated set due-desc is exactly due-asc reversed.
func TestEngine_SortDueDescMirrorsAsc(t *testing.T) {
	views := []model.AssignmentView{
		assignment("A", "one", "2026-09-04T10:00:00Z", ""),
		assignment("B", "two", "2026-09-01T10:00:00Z", ""),
		assignment("C", "three", "2026-09-02T10:00:00Z", ""),
	}
	engine := New(model.FilterConfig{})

	asc := engine.Assignments(model.ViewState{SortKey: model.SortDueAsc, ShowAll: true}, views, now)
	desc := engine.Assignments(model.ViewState{SortKey: model.SortDueDesc, ShowAll: true}, views, now)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].Name, desc[len(desc)-1-i].Name)
	}
}

func TestEngine_Window(t *testing.T) {
	views := []model.AssignmentView{
		assignment("CS 101", "Due today", "2026-08-31T23:00:00Z", "Not submitted"),
		assignment("CS 101", "Due this week", "2026-09-04T23:00:00Z", "Not submitted"),
		assignment("CS 101", "Due in ten days", "2026-09-10T23:00:00Z", "Not submitted"),
		assignment("CS 101", "No due date", "", "Not submitted"),
	}

	t.Run("day view", func(t *testing.T) {
		engine := New(model.FilterConfig{DefaultView: model.ViewDay})
		got := engine.Assignments(model.ViewState{}, views, now)
		assert.Equal(t, []string{"Due today"}, names(got))
	})

	t.Run("week view", func(t *testing.T) {
		engine := New(model.FilterConfig{DefaultView: model.ViewWeek})
		got := engine.Assignments(model.ViewState{}, views, now)
		assert.Equal(t, []string{"Due today", "Due this week"}, names(got))
	})

	t.Run("all view", func(t *testing.T) {
		engine := New(model.FilterConfig{DefaultView: model.ViewAll})
		got := engine.Assignments(model.ViewState{}, views, now)
		assert.Len(t, got, 4)
	})

	t.Run("unset view defaults to week", func(t *testing.T) {
		engine := New(model.FilterConfig{})
		got := engine.Assignments(model.ViewState{}, views, now)
		assert.Equal(t, []string{"Due today", "Due this week"}, names(got))
	})

	t.Run("show-all bypasses the window", func(t *testing.T) {
		engine := New(model.FilterConfig{DefaultView: model.ViewDay})
		got := engine.Assignments(model.ViewState{ShowAll: true}, views, now)
		assert.Len(t, got, 4)
	})
}

func TestEngine_InputNotMutated(t *testing.T) {
	views := []model.AssignmentView{
		assignment("B", "two", "2026-09-04T10:00:00Z", ""),
		assignment("A", "one", "2026-09-01T10:00:00Z", ""),
	}
	engine := New(model.FilterConfig{})

	engine.Assignments(model.ViewState{SortKey: model.SortDueAsc, ShowAll: true}, views, now)

	assert.Equal(t, "two", views[0].Name)
	assert.Equal(t, "one", views[1].Name)
}

func TestEngine_Announcements(t *testing.T) {
	views := []model.AnnouncementView{
		{ID: "a", Title: "first", IsSeen: true},
		{ID: "b", Title: "second"},
		{ID: "c", Title: "third"},
		{ID: "d", Title: "fourth"},
	}
	engine := New(model.FilterConfig{})

	t.Run("default shows first two unseen in feed order", func(t *testing.T) {
		got := engine.Announcements(model.ViewState{}, views)

		require.Len(t, got, 2)
		assert.Equal(t, "second", got[0].Title)
		assert.Equal(t, "third", got[1].Title)
	})

	t.Run("show-all keeps everything including seen", func(t *testing.T) {
		got := engine.Announcements(model.ViewState{ShowAll: true}, views)

		require.Len(t, got, 4)
		assert.Equal(t, "first", got[0].Title)
	})

	t.Run("fewer unseen than the cap", func(t *testing.T) {
		got := engine.Announcements(model.ViewState{}, []model.AnnouncementView{
			{ID: "a", Title: "first", IsSeen: true},
			{ID: "b", Title: "second"},
		})

		require.Len(t, got, 1)
		assert.Equal(t, "second", got[0].Title)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, engine.Announcements(model.ViewState{}, nil))
	})
}
