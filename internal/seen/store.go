// Package seen tracks which announcements the user has already opened.
// The ledger is one JSON document in the durable key-value store; a
// corrupted or missing document is treated as an empty ledger.
package seen

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"
)

const ledgerKey = "announcements:seen"

// KV is the persistent storage capability the store writes through.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Ledger maps announcement id to the posted-at value recorded when the
// announcement was opened.
type Ledger map[string]string

// IsSeen reports whether id is present in the ledger.
func (l Ledger) IsSeen(id string) bool {
	_, ok := l[id]
	return ok
}

// Store persists the seen ledger.
type Store struct {
	kv KV
}

// NewStore creates a seen-state store over the given storage capability.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// All returns the current ledger. Missing or unparseable stored state
// yields an empty ledger rather than an error.
func (s *Store) All(ctx context.Context) Ledger {
	raw, err := s.kv.Get(ctx, ledgerKey)
	if err != nil {
		return Ledger{}
	}

	var ledger Ledger
	if err := json.Unmarshal([]byte(raw), &ledger); err != nil {
		zlog.Logger.Warn().Err(err).Msg("seen ledger corrupted, starting empty")
		return Ledger{}
	}
	if ledger == nil {
		ledger = Ledger{}
	}

	return ledger
}

// MarkSeen records that the announcement with the given id was opened.
// The upsert is idempotent and overwrites any prior value for id.
func (s *Store) MarkSeen(ctx context.Context, id, postedAt string) error {
	ledger := s.All(ctx)
	ledger[id] = postedAt

	raw, err := json.Marshal(ledger)
	if err != nil {
		return err
	}

	return s.kv.Set(ctx, ledgerKey, string(raw))
}

// IsSeen reports whether the announcement with the given id was opened
// before.
func (s *Store) IsSeen(ctx context.Context, id string) bool {
	return s.All(ctx).IsSeen(id)
}
