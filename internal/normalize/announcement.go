package normalize

import (
	"regexp"
	"strings"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/timeutil"
)

var whitespace = regexp.MustCompile(`\s+`)

// SeenLookup answers whether an announcement id has been opened before.
type SeenLookup interface {
	IsSeen(id string) bool
}

// DeriveID builds the stable identity of an announcement from its course
// and title, replacing every whitespace run with a single underscore.
// Two announcements sharing course and title collide; the feed carries no
// better identity to disambiguate them.
func DeriveID(course, title string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(course+" "+title), "_")
}

// Announcement derives the presentation record for one raw announcement,
// sourcing the seen flag from the given ledger.
func Announcement(raw model.RawAnnouncement, seen SeenLookup) model.AnnouncementView {
	view := model.AnnouncementView{
		ID:     DeriveID(raw.Course, raw.Title),
		Course: raw.Course,
		Title:  raw.Title,
		URL:    raw.URL,
	}

	if posted, ok := timeutil.Parse(raw.Posted); ok {
		view.Posted = timeutil.FormatHuman(posted)
	}

	view.IsSeen = seen.IsSeen(view.ID)

	return view
}
