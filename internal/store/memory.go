package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	practicesession "github.com/Richpong212/Cert-Prep/internal/domain/practice_session"
)

// MemoryStore is an in-memory SessionStore. It round-trips sessions through
// JSON just like the durable backends, so tests using it exercise the same
// persistence semantics, including corrupt-record handling via PutRaw.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, sess *practicesession.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.ID, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionKey(sess.ID)] = data
	return nil
}

func (s *MemoryStore) GetSession(ctx context.Context, id string) (*practicesession.Session, error) {
	s.mu.RLock()
	data, ok := s.records[sessionKey(id)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var sess practicesession.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, sessionKey(id), err)
	}
	return &sess, nil
}

func (s *MemoryStore) ListRecords(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, 0, len(s.records))
	for key, data := range s.records {
		records = append(records, Record{Key: key, Data: append([]byte(nil), data...)})
	}
	return records, nil
}

func (s *MemoryStore) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[sessionKey(id)]; !ok {
		return ErrNotFound
	}
	delete(s.records, sessionKey(id))
	return nil
}

// PutRaw stores arbitrary bytes under "session-<id>". Tests use it to plant
// corrupt records.
func (s *MemoryStore) PutRaw(id string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionKey(id)] = data
}
