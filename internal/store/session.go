// internal/store/session.go
package store

import "sync"

// Session is the single administrative role flag. It carries no
// identity and resets to false with the process.
type Session struct {
	mu    sync.RWMutex
	admin bool
}

func NewSession() *Session {
	return &Session{}
}

// MarkAuthenticated sets the flag true.
func (s *Session) MarkAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = true
}

// Reset sets the flag false unconditionally.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = false
}

// IsAuthenticated is a pure read of the flag.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}
