package session

import (
	"context"
	"sync"

	"github.com/wanderdash/backend/internal/domain"
)

// Manager owns the single live destination session and its clock. All
// components reach the current session through the manager instead of a
// global, and every session replacement or clear stops the clock so no
// timer outlives the session it ticks for.
type Manager struct {
	mu      sync.Mutex
	current *Session
	clock   *Clock
}

// NewManager returns a manager with no selection and a stopped clock.
func NewManager() *Manager {
	return &Manager{clock: NewClock()}
}

// Select makes sess the live session, discarding the previous one. The old
// session's in-memory state is dropped (persisted plans are unaffected) and
// the clock is stopped so it cannot tick against the replaced session.
func (m *Manager) Select(sess *Session) {
	m.clock.Stop()
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
}

// Current returns the live session, if any.
func (m *Manager) Current() (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current, m.current != nil
}

// IsCurrent reports whether sess is still the live session. Callers use it
// to discard results that arrive after the selection changed.
func (m *Manager) IsCurrent(sess *Session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil && m.current == sess
}

// Clear stops the clock, clears the live session, and drops the reference.
// A new session must be selected to resume.
func (m *Manager) Clear() bool {
	m.clock.Stop()
	m.mu.Lock()
	sess := m.current
	m.current = nil
	m.mu.Unlock()

	if sess == nil {
		return false
	}
	sess.Clear()
	return true
}

// Clock exposes the manager-owned clock for streaming consumers. Start and
// Stop still run through the manager's lifecycle rules: Select and Clear
// stop it.
func (m *Manager) Clock() *Clock {
	return m.clock
}

// FetchSection resolves the live session and runs the cache-or-fetch path
// for one section. If the selection changes while the fetch is in flight,
// the late result is not served: it lands only in the superseded session's
// cache, which dies with it, and the caller gets ErrSessionReplaced.
func (m *Manager) FetchSection(ctx context.Context, section domain.Section, fetch SectionProvider) (any, error) {
	sess, ok := m.Current()
	if !ok {
		return nil, domain.ErrNotFound
	}

	v, err := sess.FetchSection(ctx, section, fetch)
	if err != nil {
		return nil, err
	}
	if !m.IsCurrent(sess) {
		return nil, domain.ErrSessionReplaced
	}
	return v, nil
}
