// Package canvas fetches assignment and announcement feeds from the Canvas
// LMS REST API.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/timeutil"
)

// AnnouncementsPerCourse caps how many of the newest announcements are kept
// for each course.
const AnnouncementsPerCourse = 2

// Course is one active enrollment with its shortened display name resolved.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"full_name"`
	DisplayName string `json:"name"`
}

// Client talks to one Canvas instance on behalf of one token.
type Client struct {
	baseURL  string
	token    string
	aliases  map[string]string
	http     *http.Client
	strategy retry.Strategy
}

func NewClient(baseURL, token string, aliases map[string]string, strategy retry.Strategy) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		aliases:  aliases,
		http:     &http.Client{Timeout: 10 * time.Second},
		strategy: strategy,
	}
}

// CheckToken reports whether the configured token is accepted by Canvas.
func (c *Client) CheckToken(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/self/profile", nil)
	if err != nil {
		return false
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// nonAcademic marks enrollments that are not real courses (orientation
// programs, parent/guardian shells and the like).
var nonAcademic = []string{"program", "organization", "guardian", "nextup"}

func isAcademic(name string) bool {
	lower := strings.ToLower(name)
	for _, k := range nonAcademic {
		if strings.Contains(lower, k) {
			return false
		}
	}

	return true
}

// Courses lists active enrollments, dropping non-academic ones and
// resolving display names through the alias map.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var raw []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	endpoint := c.baseURL + "/courses?enrollment_state=active&per_page=100"
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]Course, 0, len(raw))
	for _, rc := range raw {
		if !isAcademic(rc.Name) {
			continue
		}

		display := c.aliases[fmt.Sprintf("%d", rc.ID)]
		if display == "" {
			display = DisplayName(rc.Name)
		}

		courses = append(courses, Course{ID: rc.ID, Name: rc.Name, DisplayName: display})
	}

	return courses, nil
}

// Assignments fetches the assignment feed for one course, submission
// included, tagged with the course display name.
func (c *Client) Assignments(ctx context.Context, course Course) ([]model.RawAssignment, error) {
	var raw []struct {
		Name       string            `json:"name"`
		DueAt      string            `json:"due_at"`
		Submission *model.Submission `json:"submission"`
	}

	endpoint := fmt.Sprintf("%s/courses/%d/assignments?per_page=100&include[]=submission", c.baseURL, course.ID)
	if err := c.getJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("list assignments for course %d: %w", course.ID, err)
	}

	assignments := make([]model.RawAssignment, 0, len(raw))
	for _, ra := range raw {
		name := ra.Name
		if name == "" {
			name = "Unnamed Assignment"
		}

		assignments = append(assignments, model.RawAssignment{
			Course:     course.DisplayName,
			Name:       name,
			DueAt:      ra.DueAt,
			Submission: ra.Submission,
		})
	}

	return assignments, nil
}

type rawAnnouncement struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	PostedAt string `json:"posted_at"`
	HTMLURL  string `json:"html_url"`
}

// Announcements walks the paginated announcement feed for one course,
// deduplicates by server id and keeps the newest AnnouncementsPerCourse.
func (c *Client) Announcements(ctx context.Context, course Course) ([]model.RawAnnouncement, error) {
	endpoint := fmt.Sprintf("%s/courses/%d/discussion_topics?only_announcements=true&per_page=50", c.baseURL, course.ID)

	dedup := map[int64]rawAnnouncement{}
	for endpoint != "" {
		var batch []rawAnnouncement

		next, err := c.getJSONPage(ctx, endpoint, &batch)
		if err != nil {
			zlog.Logger.Warn().Err(err).Int64("course", course.ID).Msg("announcement page fetch failed")
			break
		}

		for _, a := range batch {
			if a.ID == 0 {
				continue
			}
			if _, ok := dedup[a.ID]; !ok {
				dedup[a.ID] = a
			}
		}

		endpoint = next
	}

	latest := make([]rawAnnouncement, 0, len(dedup))
	for _, a := range dedup {
		latest = append(latest, a)
	}

	sort.SliceStable(latest, func(i, j int) bool {
		ti, _ := timeutil.Parse(latest[i].PostedAt)
		tj, _ := timeutil.Parse(latest[j].PostedAt)
		return ti.After(tj)
	})

	if len(latest) > AnnouncementsPerCourse {
		latest = latest[:AnnouncementsPerCourse]
	}

	announcements := make([]model.RawAnnouncement, 0, len(latest))
	for _, a := range latest {
		title := a.Title
		if title == "" {
			title = "Untitled"
		}

		announcements = append(announcements, model.RawAnnouncement{
			Course: course.DisplayName,
			Title:  title,
			Posted: a.PostedAt,
			URL:    a.HTMLURL,
		})
	}

	return announcements, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	return retry.Do(func() error {
		_, err := c.fetch(ctx, endpoint, out)
		return err
	}, c.strategy)
}

// getJSONPage fetches one page and returns the rel="next" link, empty when
// the feed is exhausted.
func (c *Client) getJSONPage(ctx context.Context, endpoint string, out interface{}) (string, error) {
	var next string

	err := retry.Do(func() error {
		var ferr error
		next, ferr = c.fetch(ctx, endpoint, out)
		return ferr
	}, c.strategy)

	return next, err
}

func (c *Client) fetch(ctx context.Context, endpoint string, out interface{}) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("canvas API status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", err
	}

	return nextLink(resp.Header.Get("Link")), nil
}

var nextLinkRe = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

func nextLink(header string) string {
	m := nextLinkRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	if _, err := url.Parse(m[1]); err != nil {
		return ""
	}

	return m[1]
}
