package model

// Submission workflow states reported by Canvas.
const (
	WorkflowGraded    = "graded"
	WorkflowSubmitted = "submitted"
)

// Submission holds the submission part of a raw assignment record.
// All fields are optional on the wire.
type Submission struct {
	WorkflowState string   `json:"workflow_state"`
	Grade         string   `json:"grade,omitempty"`
	Score         *float64 `json:"score,omitempty"`
	PreviewURL    string   `json:"preview_url,omitempty"`
}

// RawAssignment is an assignment record as it arrives from the feed.
// DueAt is ISO-8601 text and may be empty or unparseable.
type RawAssignment struct {
	Course     string      `json:"course"`
	Name       string      `json:"name"`
	DueAt      string      `json:"due_at,omitempty"`
	Submission *Submission `json:"submission,omitempty"`
}

// Urgency classifies an assignment's due date relative to today and the
// current seven-day window.
type Urgency string

const (
	UrgencyNone  Urgency = "none"
	UrgencyToday Urgency = "today"
	UrgencyWeek  Urgency = "week"
)

// AssignmentView is the presentation record derived from a RawAssignment.
// It is a value object, recomputed on every briefing pass and never mutated.
type AssignmentView struct {
	Course     string  `json:"course"`
	Name       string  `json:"name"`
	ShortName  string  `json:"short_name"`
	Due        string  `json:"due"`
	DueDate    string  `json:"due_date,omitempty"` // original raw timestamp, empty when absent or unparseable
	Status     string  `json:"status"`
	URL        string  `json:"url"`
	HasDueDate bool    `json:"has_due_date"`
	IsUrgent   bool    `json:"is_urgent"`
	Urgency    Urgency `json:"urgency"`
}

// RawAnnouncement is an announcement record as it arrives from the feed.
type RawAnnouncement struct {
	Course string `json:"course"`
	Title  string `json:"title"`
	Posted string `json:"posted,omitempty"`
	URL    string `json:"url,omitempty"`
}

// AnnouncementView is the presentation record derived from a RawAnnouncement.
type AnnouncementView struct {
	ID     string `json:"id"`
	Course string `json:"course"`
	Title  string `json:"title"`
	Posted string `json:"posted"`
	IsSeen bool   `json:"is_seen"`
	URL    string `json:"url"`
}

// Default-view windows applied to assignments before an explicit show-all.
const (
	ViewDay  = "day"
	ViewWeek = "week"
	ViewAll  = "all"
)

// Sort keys accepted by the triage engine.
const (
	SortDueAsc  = "due-asc"
	SortDueDesc = "due-desc"
	SortCourse  = "course"
	SortStatus  = "status"
)

// FilterConfig holds the configured assignment filters.
type FilterConfig struct {
	HideNoDueDate bool   `json:"hideNoDueDate" mapstructure:"hide_no_due_date"`
	HideCompleted bool   `json:"hideCompleted" mapstructure:"hide_completed"`
	DefaultView   string `json:"defaultView" mapstructure:"default_view" validate:"omitempty,oneof=day week all"`
}

// ViewState is the per-request view state threaded through the triage
// pipeline instead of being captured in UI callbacks.
type ViewState struct {
	Query   string
	SortKey string
	ShowAll bool
}

// Preferences is the user-editable part of the configuration, persisted
// across sessions.
type Preferences struct {
	Theme             string            `json:"theme" validate:"omitempty,oneof=auto light dark"`
	AssignmentFilters FilterConfig      `json:"assignmentFilters"`
	WeatherEnabled    bool              `json:"weatherEnabled"`
	NewsEnabled       bool              `json:"newsEnabled"`
	EmailsEnabled     bool              `json:"emailsEnabled"`
	TokenExpiration   string            `json:"tokenExpiration,omitempty"`
	CourseAliases     map[string]string `json:"courseAliases,omitempty"`
}

// EmailPreview is one unread-mail preview shown on the briefing page.
// Only envelope data is fetched, so there is no body snippet.
type EmailPreview struct {
	Account   string `json:"account"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
}

// NewsItem is one headline shown on the briefing page.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	URL    string `json:"url"`
}
