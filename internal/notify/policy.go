// Package notify decides which briefing events are eligible for a one-time
// notification and publishes the eligible ones to the notice queue.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/morningbutler/butler/internal/model"
	"github.com/morningbutler/butler/internal/normalize"
	"github.com/morningbutler/butler/internal/rabbitmq/queue"
	"github.com/morningbutler/butler/internal/timeutil"
)

const dedupKey = "notifications:sent"

// Permission mirrors the tri-state notification permission of the
// dashboard: granted, denied, or not decided yet.
type Permission string

const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Prompter asks the user for notification permission. It is only invoked
// when the permission is still undecided, and that pass sends nothing.
type Prompter interface {
	Request(ctx context.Context)
}

// KV is the persistent storage capability backing the dedup ledger.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type noticePublisher interface {
	Publish(msg queue.NoticeMessage, strategy retry.Strategy) error
}

// Policy runs the notification-eligibility pass.
type Policy struct {
	kv         KV
	queue      noticePublisher
	prompter   Prompter
	permission Permission
}

// NewPolicy creates a notification policy.
func NewPolicy(kv KV, q noticePublisher, prompter Prompter, permission Permission) *Policy {
	return &Policy{kv: kv, queue: q, prompter: prompter, permission: permission}
}

// Run executes one policy pass over the normalized assignment set. When
// permission is undecided the only action is to request it; when denied the
// pass is a no-op.
func (p *Policy) Run(ctx context.Context, strategy retry.Strategy, assignments []model.AssignmentView, tokenExpiration string, now time.Time) {
	switch p.permission {
	case PermissionGranted:
	case PermissionDenied:
		return
	default:
		if p.prompter != nil {
			p.prompter.Request(ctx)
		}
		return
	}

	p.urgentAssignments(assignments, strategy, now)
	p.tokenExpiry(ctx, strategy, tokenExpiration, now)
}

// urgentAssignments emits one notice covering every unsubmitted assignment
// due before tomorrow's start. There is no persistent dedup here: the
// notice re-fires on every pass as a standing reminder.
func (p *Policy) urgentAssignments(assignments []model.AssignmentView, strategy retry.Strategy, now time.Time) {
	deadline := timeutil.StartOfDay(now).AddDate(0, 0, 1)

	var selected []model.AssignmentView
	for _, a := range assignments {
		if !a.HasDueDate || a.Status != normalize.StatusNotSubmitted {
			continue
		}

		due, ok := timeutil.Parse(a.DueDate)
		if !ok || due.After(deadline) {
			continue
		}

		selected = append(selected, a)
	}

	if len(selected) == 0 {
		return
	}

	title := fmt.Sprintf("%d assignments due soon", len(selected))
	if len(selected) == 1 {
		title = "1 assignment due soon"
	}

	body := selected[0].Course + ": " + selected[0].ShortName
	if len(selected) > 1 {
		body += ", " + selected[1].Course + ": " + selected[1].ShortName
	}

	p.publish(queue.NoticeMessage{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		Tag:       "assignments-due",
		EmittedAt: now,
	}, strategy)
}

// tokenExpiry emits one notice when the credential expiration date is at
// most seven whole days out. The dedup key embeds the configured date, so a
// changed expiration naturally becomes eligible again.
func (p *Policy) tokenExpiry(ctx context.Context, strategy retry.Strategy, expiration string, now time.Time) {
	expiresAt, ok := timeutil.Parse(expiration)
	if !ok {
		return
	}

	days := int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
	if days < 0 || days > 7 {
		return
	}

	tag := "token-expiry:" + expiration

	ledger := p.sentLedger(ctx)
	if ledger[tag] {
		return
	}

	body := fmt.Sprintf("Your Canvas token expires in %d days. Generate a new one to keep assignments updating.", days)
	if days == 0 {
		body = "Your Canvas token expires today. Generate a new one to keep assignments updating."
	} else if days == 1 {
		body = "Your Canvas token expires in 1 day. Generate a new one to keep assignments updating."
	}

	p.publish(queue.NoticeMessage{
		ID:        uuid.New(),
		Title:     "Canvas token expiring",
		Body:      body,
		Tag:       tag,
		EmittedAt: now,
	}, strategy)

	ledger[tag] = true
	p.saveSentLedger(ctx, ledger)
}

func (p *Policy) publish(msg queue.NoticeMessage, strategy retry.Strategy) {
	if err := p.queue.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("tag", msg.Tag).Msg("failed to publish notice")
	}
}

// sentLedger reads the dedup ledger, treating missing or corrupted state as
// empty.
func (p *Policy) sentLedger(ctx context.Context) map[string]bool {
	raw, err := p.kv.Get(ctx, dedupKey)
	if err != nil {
		return map[string]bool{}
	}

	var ledger map[string]bool
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		zlog.Logger.Warn().Err(err).Msg("notification dedup ledger corrupted, starting empty")
		return map[string]bool{}
	}
	if ledger == nil {
		ledger = map[string]bool{}
	}

	return ledger
}

func (p *Policy) saveSentLedger(ctx context.Context, ledger map[string]bool) {
	raw, err := json.Marshal(ledger)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to marshal dedup ledger")
		return
	}

	if err := p.kv.Set(ctx, dedupKey, string(raw)); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to persist dedup ledger")
	}
}
