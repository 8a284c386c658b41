package briefing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/api/respond"
	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/news"
	"github.com/morningbutler/butler/internal/weather"
)

// briefingService defines the interface that the Handler depends on.
//
// It abstracts the briefing orchestration: triaged feed slices, seen-state
// updates and preference persistence.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/briefing/mock.go -package=mocks
type briefingService interface {
	Assignments(ctx context.Context, state model.ViewState) ([]model.AssignmentView, error)
	Announcements(ctx context.Context, showAll bool) ([]model.AnnouncementView, error)
	MarkSeen(ctx context.Context, id, postedAt string) error
	Weather(ctx context.Context) (weather.Report, error)
	News(ctx context.Context) (news.Digest, error)
	Emails(ctx context.Context) ([]model.EmailPreview, error)
	Preferences(ctx context.Context) (model.Preferences, error)
	SavePreferences(ctx context.Context, prefs model.Preferences) error
}

// Handler handles HTTP requests for the briefing page.
type Handler struct {
	service   briefingService
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s briefingService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Assignments handles GET requests for the triaged assignment slice.
//
// Query parameters: query (free text), sort (due-asc, due-desc, course,
// status), show_all (bool).
func (h *Handler) Assignments(c *ginext.Context) {
	state := model.ViewState{
		Query:   c.Query("query"),
		SortKey: c.DefaultQuery("sort", model.SortDueAsc),
		ShowAll: parseBool(c.Query("show_all")),
	}

	assignments, err := h.service.Assignments(c.Request.Context(), state)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get assignments")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, assignments)
}

// Announcements handles GET requests for the announcement slice.
func (h *Handler) Announcements(c *ginext.Context) {
	showAll := parseBool(c.Query("show_all"))

	announcements, err := h.service.Announcements(c.Request.Context(), showAll)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get announcements")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, announcements)
}

// markSeenRequest carries the posted-at value recorded with the seen entry.
type markSeenRequest struct {
	Posted string `json:"posted"`
}

// MarkSeen handles POST requests reporting that an announcement was opened.
func (h *Handler) MarkSeen(c *ginext.Context) {
	id := c.Param("id")
	if id == "" {
		zlog.Logger.Warn().Msg("missing announcement id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return
	}

	// The body is optional; an empty posted value is recorded as such.
	var req markSeenRequest
	if c.Request.Body != nil {
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && err.Error() != "EOF" {
			zlog.Logger.Warn().Err(err).Msg("failed to decode mark-seen body")
		}
	}

	if err := h.service.MarkSeen(c.Request.Context(), id, req.Posted); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id).Msg("failed to mark announcement seen")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "announcement marked seen")
}

// Weather handles GET requests for the weather block.
func (h *Handler) Weather(c *ginext.Context) {
	report, err := h.service.Weather(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get weather")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, report)
}

// News handles GET requests for the headline digest.
func (h *Handler) News(c *ginext.Context) {
	digest, err := h.service.News(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get news")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, digest)
}

// Emails handles GET requests for unread-mail previews.
func (h *Handler) Emails(c *ginext.Context) {
	previews, err := h.service.Emails(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get email previews")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, previews)
}

// Preferences handles GET requests for the user preferences.
func (h *Handler) Preferences(c *ginext.Context) {
	prefs, err := h.service.Preferences(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get preferences")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, prefs)
}

// SavePreferences handles PUT requests persisting the user preferences.
func (h *Handler) SavePreferences(c *ginext.Context) {
	var prefs model.Preferences

	if err := json.NewDecoder(c.Request.Body).Decode(&prefs); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(prefs); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if err := h.service.SavePreferences(c.Request.Context(), prefs); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to save preferences")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "preferences saved")
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(s)
	return err == nil && v
}
