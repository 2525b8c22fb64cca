// Package session holds the client's authentication token and whether the
// remote API is in use. One Session is shared by the store, the remote
// client, and the persist tasks.
package session

import "sync"

// Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
	cloud bool
}

// New returns a logged-out, local-only session.
func New() *Session {
	return &Session{}
}

// Token returns the current auth token, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken stores the token returned by a login or password change.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear logs out.
func (s *Session) Clear() {
	s.SetToken("")
}

// LoggedIn reports whether a token is held.
func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Cloud reports whether the remote API answered the last load.
func (s *Session) Cloud() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloud
}

// SetCloud records the remote reachability decided at load time.
func (s *Session) SetCloud(cloud bool) {
	s.mu.Lock()
	s.cloud = cloud
	s.mu.Unlock()
}

// CanSync reports whether writes should go to the remote API.
func (s *Session) CanSync() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloud && s.token != ""
}
