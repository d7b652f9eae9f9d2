package core

import (
	"sync"
	"time"
)

// SessionState enumerates the lifecycle states of a Session.
type SessionState int

const (
	// SessionUnauthenticated is the initial (and post-logout) state.
	SessionUnauthenticated SessionState = iota
	// SessionAuthenticated indicates a live token accepted by the endpoint.
	SessionAuthenticated
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session represents an authenticated context permitting remote service calls
// against one endpoint. It is safe for concurrent access.
//
// Contract:
//   - Token returns ErrSessionInvalid unless the state is Authenticated
//   - After login the session is read-only for the duration of in-flight
//     invocations; only Authenticate and Invalidate mutate it
//   - Multiple simultaneous invocations may share one Session.
type Session struct {
	mu            sync.RWMutex
	endpoint      string
	token         string
	state         SessionState
	persistent    bool
	created       time.Time
	authenticated time.Time
}

// NewSession creates an unauthenticated session bound to the given endpoint.
func NewSession(endpoint string) *Session {
	return &Session{endpoint: endpoint, state: SessionUnauthenticated, created: time.Now()}
}

// Endpoint returns the endpoint URL this session is bound to.
func (s *Session) Endpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.endpoint
}

// State returns the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Valid reports whether the session is currently authenticated.
func (s *Session) Valid() bool { return s.State() == SessionAuthenticated }

// Token returns the live auth token or ErrSessionInvalid. No network I/O is
// performed; expiry is only observed as a remote rejection on the next call.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != SessionAuthenticated {
		return "", ErrSessionInvalid
	}
	return s.token, nil
}

// AuthenticatedAt returns the time of the most recent successful login; the
// zero time when the session was never authenticated.
func (s *Session) AuthenticatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Persistent reports whether the login requested server-side persistence.
func (s *Session) Persistent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistent
}

// Authenticate transitions the session to Authenticated with the given token.
func (s *Session) Authenticate(token string, persistent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.persistent = persistent
	s.state = SessionAuthenticated
	s.authenticated = time.Now()
}

// Invalidate transitions the session back to Unauthenticated discarding the token.
func (s *Session) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.state = SessionUnauthenticated
}
