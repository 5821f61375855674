package store

import (
	"context"
	"errors"

	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrCorruptRecord marks a persisted session that fails to parse.
	// Callers recover locally: a bad record is skipped, never fatal.
	ErrCorruptRecord = errors.New("corrupt session record")
)

// sessionKeyPrefix matches the original client's storage layout:
// one entry per session under "session-<id>".
const sessionKeyPrefix = "session-"

// Record is a raw persisted entry. The analytics aggregator consumes
// records directly so that one undecodable entry cannot abort a scan.
type Record struct {
	Key  string
	Data []byte
}

// SessionStore is the persistence port for sessions. Every mutation is
// written through before the in-memory copy is considered authoritative;
// a reload after SaveSession must return a deep-equal session.
type SessionStore interface {
	SaveSession(ctx context.Context, s *practicesession.Session) error
	GetSession(ctx context.Context, id string) (*practicesession.Session, error)
	ListRecords(ctx context.Context) ([]Record, error)
	DeleteSession(ctx context.Context, id string) error
	Close() error
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
