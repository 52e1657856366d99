// Package plan implements the persisted bookmark collection. Records are an
// ordered sequence (insertion order, preserved across removals) serialized
// as one JSON blob under a single durable key.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wanderdash/backend/internal/domain"
	"github.com/wanderdash/backend/internal/storage"
)

// storageKey is the single durable key the whole sequence lives under.
const storageKey = "plans"

// Store is the plan collection. It reads durable storage once at
// construction and writes the full sequence back on every mutation
// (read-modify-write, not append-only). It is non-authoritative about
// duplicates: Save appends unconditionally, callers check IndexOf first.
// Mutations on one Store are serialized by a mutex, but the durable write is
// a full read-modify-write of the shared key; two independently constructed
// stores racing on the same backend are best-effort sequential, not
// transactional.
type Store struct {
	mu      sync.Mutex
	kv      storage.KV
	records []domain.PlanRecord

	// now is the SavedAt source, swappable in tests.
	now func() time.Time
}

// NewStore constructs a Store backed by kv, loading the persisted sequence.
// Callers that need cross-process freshness must construct a new Store.
func NewStore(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{kv: kv, now: time.Now}

	blob, ok, err := kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("plan.NewStore: %w", err)
	}
	if ok && blob != "" {
		if err := json.Unmarshal([]byte(blob), &s.records); err != nil {
			return nil, fmt.Errorf("plan.NewStore: decode stored plans: %w", err)
		}
	}
	return s, nil
}

// List returns the full ordered sequence. The slice is a copy; mutating it
// does not affect the store.
func (s *Store) List() []domain.PlanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// snapshot copies the sequence. Callers must hold mu.
func (s *Store) snapshot() []domain.PlanRecord {
	out := make([]domain.PlanRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Save appends a record for the payload and persists the whole sequence.
// No duplicate check; pre-check with IndexOf. On a failed write the
// in-memory sequence is left as it was.
func (s *Store) Save(ctx context.Context, typ domain.PlanType, data json.RawMessage) (domain.PlanRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := domain.PlanRecord{
		ID:      uuid.New(),
		Type:    typ,
		Data:    data,
		SavedAt: s.now().UTC(),
	}

	next := append(s.snapshot(), rec)
	if err := s.persist(ctx, next); err != nil {
		return domain.PlanRecord{}, fmt.Errorf("plan.Store.Save: %w", err)
	}
	s.records = next
	return rec, nil
}

// IndexOf scans for the first record of the given type whose payload matches
// data under that type's equality rule. Fields outside the rule's key are
// ignored.
func (s *Store) IndexOf(typ domain.PlanType, data json.RawMessage) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.Type != typ {
			continue
		}
		if domain.PlanDataMatches(typ, rec.Data, data) {
			return i, true
		}
	}
	return 0, false
}

// RemoveAt removes the record at index and persists the result. Purely
// positional; no equality check. Returns ErrIndexOutOfRange for an invalid
// index, leaving the stored sequence unchanged.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return fmt.Errorf("plan.Store.RemoveAt: index %d with %d records: %w",
			index, len(s.records), domain.ErrIndexOutOfRange)
	}

	next := make([]domain.PlanRecord, 0, len(s.records)-1)
	next = append(next, s.records[:index]...)
	next = append(next, s.records[index+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return fmt.Errorf("plan.Store.RemoveAt: %w", err)
	}
	s.records = next
	return nil
}

// ClearAll persists an empty sequence.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, []domain.PlanRecord{}); err != nil {
		return fmt.Errorf("plan.Store.ClearAll: %w", err)
	}
	s.records = nil
	return nil
}

// persist writes the given sequence to durable storage under the plans key.
// Failures surface as ErrPersistence; there is no retry.
func (s *Store) persist(ctx context.Context, records []domain.PlanRecord) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", domain.ErrPersistence, err)
	}
	if err := s.kv.Set(ctx, storageKey, string(blob)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
