// Package news aggregates headlines from a fixed list of RSS feeds.
package news

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/model"
)

const (
	itemsPerFeed = 2
	maxItems     = 5
)

// Source is one RSS feed to aggregate.
type Source struct {
	Name string
	URL  string
}

// DefaultSources mirrors the dashboard's built-in feed list.
var DefaultSources = []Source{
	{Name: "Reuters", URL: "https://feeds.reuters.com/reuters/worldNews"},
	{Name: "AP News", URL: "https://apnews.com/apf-topnews?format=rss"},
	{Name: "NPR", URL: "https://feeds.npr.org/1001/rss.xml"},
	{Name: "BBC", URL: "http://feeds.bbci.co.uk/news/rss.xml"},
	{Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
	{Name: "Al Jazeera", URL: "https://www.aljazeera.com/xml/rss/all.xml"},
}

// Digest is the news block of the briefing page.
type Digest struct {
	UpdatedAt string           `json:"updated_at"`
	Items     []model.NewsItem `json:"items"`
}

type Client struct {
	sources  []Source
	http     *http.Client
	strategy retry.Strategy
}

func NewClient(sources []Source, strategy retry.Strategy) *Client {
	if len(sources) == 0 {
		sources = DefaultSources
	}

	return &Client{
		sources:  sources,
		http:     &http.Client{Timeout: 5 * time.Second},
		strategy: strategy,
	}
}

type dated struct {
	item      model.NewsItem
	published time.Time
}

// Headlines fetches every source, keeps the top items per feed and returns
// the newest maxItems overall. Feeds that fail are skipped.
func (c *Client) Headlines(ctx context.Context) Digest {
	var all []dated

	for _, src := range c.sources {
		items, err := c.fetch(ctx, src)
		if err != nil {
			zlog.Logger.Debug().Err(err).Str("source", src.Name).Msg("news feed fetch failed")
			continue
		}

		all = append(all, items...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].published.After(all[j].published)
	})

	if len(all) > maxItems {
		all = all[:maxItems]
	}

	items := make([]model.NewsItem, 0, len(all))
	for _, d := range all {
		items = append(items, d.item)
	}

	return Digest{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     items,
	}
}

type rssDoc struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title   string     `xml:"title"`
	Links   []atomLink `xml:"link"`
	Updated string     `xml:"updated"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
}

func (c *Client) fetch(ctx context.Context, src Source) ([]dated, error) {
	var body []byte

	err := retry.Do(func() error {
		req, rerr := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if rerr != nil {
			return rerr
		}
		req.Header.Set("User-Agent", "morning-butler-briefing")

		resp, rerr := c.http.Do(req)
		if rerr != nil {
			return rerr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("feed status %s", resp.Status)
		}

		body, rerr = io.ReadAll(resp.Body)
		return rerr
	}, c.strategy)
	if err != nil {
		return nil, err
	}

	items := parseRSS(body, src.Name)
	if len(items) == 0 {
		items = parseAtom(body, src.Name)
	}

	if len(items) > itemsPerFeed {
		items = items[:itemsPerFeed]
	}

	return items, nil
}

func parseRSS(body []byte, source string) []dated {
	var doc rssDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil
	}

	items := make([]dated, 0, len(doc.Items))
	for _, it := range doc.Items {
		title := it.Title
		if title == "" {
			title = "Untitled"
		}

		items = append(items, dated{
			item:      model.NewsItem{Title: title, Source: source, URL: it.Link},
			published: parsePublished(it.PubDate),
		})
	}

	return items
}

func parseAtom(body []byte, source string) []dated {
	var feed atomFeed
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil
	}

	items := make([]dated, 0, len(feed.Entries))
	for _, e := range feed.Entries {
		title := e.Title
		if title == "" {
			title = "Untitled"
		}

		href := ""
		if len(e.Links) > 0 {
			href = e.Links[0].Href
		}

		items = append(items, dated{
			item:      model.NewsItem{Title: title, Source: source, URL: href},
			published: parsePublished(e.Updated),
		})
	}

	return items
}

var publishedLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
}

// parsePublished reads the assorted date formats feeds use; unparseable
// dates sort oldest.
func parsePublished(s string) time.Time {
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return time.Time{}
}
