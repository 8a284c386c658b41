// Package mailbox fetches unread-mail previews over IMAP. Only envelopes
// are read so no message is marked seen on the server.
package mailbox

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/model"
)

const (
	perAccount = 5
	maxTotal   = 5
)

// Account is one configured IMAP mailbox.
type Account struct {
	Label    string `mapstructure:"label" json:"label"`
	Email    string `mapstructure:"email" json:"email" validate:"omitempty,email"`
	Password string `mapstructure:"app_password" json:"appPassword"`
	IMAPHost string `mapstructure:"imap_host" json:"imapHost"`
	IMAPPort int    `mapstructure:"imap_port" json:"imapPort"`
}

func (a Account) host() string {
	if a.IMAPHost != "" {
		return a.IMAPHost
	}
	return "imap.gmail.com"
}

func (a Account) port() int {
	if a.IMAPPort != 0 {
		return a.IMAPPort
	}
	return 993
}

func (a Account) label() string {
	if a.Label != "" {
		return a.Label
	}
	if a.Email != "" {
		return a.Email
	}
	return "Mail"
}

// Fetcher reads unread previews from every configured account.
type Fetcher struct {
	accounts []Account
}

func NewFetcher(accounts []Account) *Fetcher {
	return &Fetcher{accounts: accounts}
}

// UnreadPreviews collects unread previews across accounts, newest first per
// account, capped at maxTotal overall. A failing account is skipped.
func (f *Fetcher) UnreadPreviews() []model.EmailPreview {
	previews := make([]model.EmailPreview, 0, maxTotal)

	for _, acc := range f.accounts {
		if acc.Email == "" || acc.Password == "" {
			continue
		}

		items, err := unreadForAccount(acc, perAccount)
		if err != nil {
			zlog.Logger.Debug().Err(err).Str("account", acc.label()).Msg("imap fetch failed")
			continue
		}

		previews = append(previews, items...)
		if len(previews) >= maxTotal {
			previews = previews[:maxTotal]
			break
		}
	}

	return previews
}

func unreadForAccount(acc Account, limit int) ([]model.EmailPreview, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", acc.host(), acc.port()), nil)
	if err != nil {
		return nil, fmt.Errorf("dial imap: %w", err)
	}
	defer c.Logout()

	if err := c.Login(acc.Email, acc.Password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select("INBOX", true); err != nil {
		return nil, fmt.Errorf("select inbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}

	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("search unseen: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	messages := make(chan *imap.Message, limit)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, []imap.FetchItem{imap.FetchEnvelope}, messages)
	}()

	var previews []model.EmailPreview
	for msg := range messages {
		env := msg.Envelope
		if env == nil {
			continue
		}

		sender := ""
		if len(env.From) > 0 {
			sender = formatAddress(env.From[0])
		}

		timestamp := ""
		if !env.Date.IsZero() {
			timestamp = env.Date.Format(time.RFC3339)
		}

		previews = append(previews, model.EmailPreview{
			Account:   acc.label(),
			Sender:    sender,
			Subject:   env.Subject,
			Timestamp: timestamp,
		})
	}

	if err := <-done; err != nil {
		return nil, fmt.Errorf("fetch envelopes: %w", err)
	}

	// Newest first.
	for i, j := 0, len(previews)-1; i < j; i, j = i+1, j-1 {
		previews[i], previews[j] = previews[j], previews[i]
	}

	return previews, nil
}

func formatAddress(addr *imap.Address) string {
	if addr == nil {
		return ""
	}
	if addr.PersonalName != "" {
		return strings.TrimSpace(addr.PersonalName)
	}

	return addr.Address()
}
