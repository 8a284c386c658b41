// Package briefing assembles the morning-briefing data: it fans out to the
// feed clients, normalizes the records and runs the triage pipeline.
package briefing

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/canvas"
	"github.com/morningbutler/butler/internal/config"
	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/news"
	"github.com/morningbutler/butler/internal/normalize"
	"github.com/morningbutler/butler/internal/seen"
	"github.com/morningbutler/butler/internal/timeutil"
	"github.com/morningbutler/butler/internal/triage"
	"github.com/morningbutler/butler/internal/weather"
)

const (
	canvasCacheKey  = "feeds:canvas"
	weatherCacheKey = "feeds:weather"
	newsCacheKey    = "feeds:news"
	emailsCacheKey  = "feeds:emails"
	preferencesKey  = "config:preferences"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/briefing/mock.go -package=mocks

type canvasClient interface {
	CheckToken(ctx context.Context) bool
	Courses(ctx context.Context) ([]canvas.Course, error)
	Assignments(ctx context.Context, course canvas.Course) ([]model.RawAssignment, error)
	Announcements(ctx context.Context, course canvas.Course) ([]model.RawAnnouncement, error)
}

type weatherClient interface {
	Current(ctx context.Context, loc weather.Location) weather.Report
}

type newsClient interface {
	Headlines(ctx context.Context) news.Digest
}

type mailFetcher interface {
	UnreadPreviews() []model.EmailPreview
}

type feedCache interface {
	Get(ctx context.Context, key string, out interface{}) bool
	Set(ctx context.Context, key string, v interface{})
}

type seenStore interface {
	All(ctx context.Context) seen.Ledger
	MarkSeen(ctx context.Context, id, postedAt string) error
}

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// canvasPayload is the cached combination of both Canvas feeds.
type canvasPayload struct {
	Assignments   []model.RawAssignment   `json:"assignments"`
	Announcements []model.RawAnnouncement `json:"announcements"`
}

// Service is the briefing orchestrator behind the HTTP handlers and the
// notification scheduler.
type Service struct {
	canvas  canvasClient
	weather weatherClient
	news    newsClient
	mail    mailFetcher
	cache   feedCache
	seen    seenStore
	kv      kvStore
	cfg     *config.Config
}

func NewService(
	canvasClient canvasClient,
	weatherClient weatherClient,
	newsClient newsClient,
	mail mailFetcher,
	cache feedCache,
	seenStore seenStore,
	kv kvStore,
	cfg *config.Config,
) *Service {
	return &Service{
		canvas:  canvasClient,
		weather: weatherClient,
		news:    newsClient,
		mail:    mail,
		cache:   cache,
		seen:    seenStore,
		kv:      kv,
		cfg:     cfg,
	}
}

// Assignments returns the triaged assignment slice for one briefing
// request.
func (s *Service) Assignments(ctx context.Context, state model.ViewState) ([]model.AssignmentView, error) {
	payload, err := s.fetchCanvas(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch canvas feeds: %w", err)
	}

	now := time.Now()
	views := make([]model.AssignmentView, 0, len(payload.Assignments))
	for _, raw := range payload.Assignments {
		views = append(views, normalize.Assignment(raw, now))
	}

	prefs, _ := s.Preferences(ctx)
	engine := triage.New(prefs.AssignmentFilters)

	return engine.Assignments(state, views, now), nil
}

// Announcements returns the partitioned announcement slice: the first
// unseen ones by default, everything on show-all.
func (s *Service) Announcements(ctx context.Context, showAll bool) ([]model.AnnouncementView, error) {
	payload, err := s.fetchCanvas(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch canvas feeds: %w", err)
	}

	ledger := s.seen.All(ctx)
	views := make([]model.AnnouncementView, 0, len(payload.Announcements))
	for _, raw := range payload.Announcements {
		views = append(views, normalize.Announcement(raw, ledger))
	}

	prefs, _ := s.Preferences(ctx)
	engine := triage.New(prefs.AssignmentFilters)

	return engine.Announcements(model.ViewState{ShowAll: showAll}, views), nil
}

// NormalizedAssignments feeds the notification policy: the full normalized
// set, no filters applied.
func (s *Service) NormalizedAssignments(ctx context.Context) ([]model.AssignmentView, error) {
	payload, err := s.fetchCanvas(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch canvas feeds: %w", err)
	}

	now := time.Now()
	views := make([]model.AssignmentView, 0, len(payload.Assignments))
	for _, raw := range payload.Assignments {
		views = append(views, normalize.Assignment(raw, now))
	}

	return views, nil
}

// TokenExpiration returns the credential expiration the policy checks,
// preferring the user-saved value over the static configuration.
func (s *Service) TokenExpiration(ctx context.Context) string {
	prefs, err := s.Preferences(ctx)
	if err == nil && prefs.TokenExpiration != "" {
		return prefs.TokenExpiration
	}

	return s.cfg.Canvas.TokenExpiration
}

// MarkSeen records that the user opened the announcement with the given id.
func (s *Service) MarkSeen(ctx context.Context, id, postedAt string) error {
	return s.seen.MarkSeen(ctx, id, postedAt)
}

// Weather returns the weather block, cached for the configured TTL.
func (s *Service) Weather(ctx context.Context) (weather.Report, error) {
	prefs, _ := s.Preferences(ctx)
	if !prefs.WeatherEnabled {
		return weather.Report{Temp: "N/A", Condition: "Weather disabled"}, nil
	}

	var report weather.Report
	if s.cache.Get(ctx, weatherCacheKey, &report) {
		return report, nil
	}

	report = s.weather.Current(ctx, weather.Location{
		ZipCode: s.cfg.Location.ZipCode,
		Lat:     s.cfg.Location.Lat,
		Lon:     s.cfg.Location.Lon,
	})
	s.cache.Set(ctx, weatherCacheKey, report)

	return report, nil
}

// News returns the headline digest, cached for the configured TTL.
func (s *Service) News(ctx context.Context) (news.Digest, error) {
	prefs, _ := s.Preferences(ctx)
	if !prefs.NewsEnabled {
		return news.Digest{Items: []model.NewsItem{}}, nil
	}

	var digest news.Digest
	if s.cache.Get(ctx, newsCacheKey, &digest) {
		return digest, nil
	}

	digest = s.news.Headlines(ctx)
	s.cache.Set(ctx, newsCacheKey, digest)

	return digest, nil
}

// Emails returns unread-mail previews, cached for the configured TTL.
func (s *Service) Emails(ctx context.Context) ([]model.EmailPreview, error) {
	prefs, _ := s.Preferences(ctx)
	if !prefs.EmailsEnabled {
		return []model.EmailPreview{}, nil
	}

	var previews []model.EmailPreview
	if s.cache.Get(ctx, emailsCacheKey, &previews) {
		return previews, nil
	}

	previews = s.mail.UnreadPreviews()
	s.cache.Set(ctx, emailsCacheKey, previews)

	return previews, nil
}

// Preferences returns the persisted user preferences, falling back to the
// configuration defaults when nothing was saved yet.
func (s *Service) Preferences(ctx context.Context) (model.Preferences, error) {
	defaults := model.Preferences{
		Theme:             s.cfg.Theme,
		AssignmentFilters: s.cfg.Filters,
		WeatherEnabled:    s.cfg.Weather.Enabled,
		NewsEnabled:       s.cfg.News.Enabled,
		EmailsEnabled:     s.cfg.Emails.Enabled,
		TokenExpiration:   s.cfg.Canvas.TokenExpiration,
		CourseAliases:     s.cfg.Canvas.CourseAliases,
	}

	raw, err := s.kv.Get(ctx, preferencesKey)
	if err != nil {
		return defaults, nil
	}

	var prefs model.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		zlog.Logger.Warn().Err(err).Msg("stored preferences corrupted, using defaults")
		return defaults, nil
	}

	return prefs, nil
}

// SavePreferences persists the user preferences.
func (s *Service) SavePreferences(ctx context.Context, prefs model.Preferences) error {
	if prefs.AssignmentFilters.DefaultView == "" {
		prefs.AssignmentFilters.DefaultView = model.ViewWeek
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	if err := s.kv.Set(ctx, preferencesKey, string(raw)); err != nil {
		return fmt.Errorf("persist preferences: %w", err)
	}

	// The dashboard's save flow re-verifies the token and prefetches the
	// Canvas feeds so the next briefing render starts warm.
	if s.cfg.Canvas.Enabled && s.cfg.Canvas.Token != "" {
		s.refreshCanvas(ctx)
	}

	return nil
}

// fetchCanvas retrieves both Canvas feeds, serving the cached payload when
// it is still fresh. Retrieval failures degrade to empty feeds.
func (s *Service) fetchCanvas(ctx context.Context) (canvasPayload, error) {
	if !s.cfg.Canvas.Enabled || s.cfg.Canvas.Token == "" {
		return canvasPayload{
			Assignments:   []model.RawAssignment{},
			Announcements: []model.RawAnnouncement{},
		}, nil
	}

	var payload canvasPayload
	if s.cache.Get(ctx, canvasCacheKey, &payload) {
		return payload, nil
	}

	return s.refreshCanvas(ctx), nil
}

// courseFeeds holds one course's fetched feeds, indexed by course position
// so the combined payload keeps the enrollment order regardless of which
// goroutine finishes first.
type courseFeeds struct {
	assignments   []model.RawAssignment
	announcements []model.RawAnnouncement
}

// refreshCanvas fetches both feeds fresh, fanning out per course, and
// caches the combined payload.
func (s *Service) refreshCanvas(ctx context.Context) canvasPayload {
	empty := canvasPayload{
		Assignments:   []model.RawAssignment{},
		Announcements: []model.RawAnnouncement{},
	}

	if !s.canvas.CheckToken(ctx) {
		zlog.Logger.Warn().Msg("canvas token rejected, serving empty feeds")
		return empty
	}

	courses, err := s.canvas.Courses(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("course list failed, serving empty feeds")
		return empty
	}

	results := make([]courseFeeds, len(courses))

	var wg sync.WaitGroup
	for i, course := range courses {
		wg.Add(1)
		go func(i int, course canvas.Course) {
			defer wg.Done()

			assignments, err := s.canvas.Assignments(ctx, course)
			if err != nil {
				zlog.Logger.Warn().Err(err).Int64("course", course.ID).Msg("assignment feed failed")
			}

			announcements, err := s.canvas.Announcements(ctx, course)
			if err != nil {
				zlog.Logger.Warn().Err(err).Int64("course", course.ID).Msg("announcement feed failed")
			}

			results[i] = courseFeeds{assignments: assignments, announcements: announcements}
		}(i, course)
	}

	wg.Wait()

	payload := empty
	for _, r := range results {
		payload.Assignments = append(payload.Assignments, r.assignments...)
		payload.Announcements = append(payload.Announcements, r.announcements...)
	}

	// Feed order: upcoming due dates first, undated ones ahead of them.
	// Announcements stay in course enrollment order.
	sort.SliceStable(payload.Assignments, func(i, j int) bool {
		ti, _ := timeutil.Parse(payload.Assignments[i].DueAt)
		tj, _ := timeutil.Parse(payload.Assignments[j].DueAt)
		return ti.Before(tj)
	})

	s.cache.Set(ctx, canvasCacheKey, payload)

	return payload
}
