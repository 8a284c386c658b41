package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/morningbutler/butler/internal/model"
)

type ledgerStub map[string]bool

func (l ledgerStub) IsSeen(id string) bool { return l[id] }

func TestDeriveID(t *testing.T) {
	tests := []struct {
		name   string
		course string
		title  string
		want   string
	}{
		{"simple", "CS 101", "Midterm Info", "CS_101_Midterm_Info"},
		{"whitespace runs collapse", "CS  101", "Midterm\tInfo", "CS_101_Midterm_Info"},
		{"leading and trailing space trimmed", " CS 101 ", " Midterm ", "CS_101_Midterm"},
		{"empty title", "CS 101", "", "CS_101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveID(tt.course, tt.title))
		})
	}
}

func TestAnnouncement(t *testing.T) {
	raw := model.RawAnnouncement{
		Course: "CS 101",
		Title:  "Midterm Info",
		Posted: "2026-08-30T09:15:00Z",
		URL:    "https://canvas.example.edu/announcements/7",
	}

	view := Announcement(raw, ledgerStub{})

	assert.Equal(t, "CS_101_Midterm_Info", view.ID)
	assert.Equal(t, "CS 101", view.Course)
	assert.Equal(t, "Aug 30, 09:15", view.Posted)
	assert.Equal(t, "https://canvas.example.edu/announcements/7", view.URL)
	assert.False(t, view.IsSeen)
}

func TestAnnouncement_Seen(t *testing.T) {
	raw := model.RawAnnouncement{Course: "CS 101", Title: "Midterm Info"}

	view := Announcement(raw, ledgerStub{"CS_101_Midterm_Info": true})

	assert.True(t, view.IsSeen)
}

func TestAnnouncement_MalformedPosted(t *testing.T) {
	view := Announcement(model.RawAnnouncement{Course: "CS 101", Title: "Hi", Posted: "yesterday"}, ledgerStub{})

	assert.Empty(t, view.Posted)
}
