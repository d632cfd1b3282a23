package session

import (
	"context"
	"sync"
)

/*
====================================
NAVIGATOR
====================================
*/

// Navigator abstracts the host's notion of "where the user is" so logout can
// redirect without binding this package to any UI or HTTP framework.
type Navigator interface {
	// Location returns the current navigation path.
	Location() string
	// Navigate moves the host to path, replacing the current location.
	Navigate(path string)
}

// NoopNavigator is a [Navigator] for headless hosts. Navigate is a no-op and
// Location always reports the root path.
type NoopNavigator struct{}

// Location describes the location operation and its observable behavior.
func (NoopNavigator) Location() string { return "/" }

// Navigate describes the navigate operation and its observable behavior.
func (NoopNavigator) Navigate(string) {}

/*
====================================
MANAGER
====================================
*/

// Manager defines a public type used by bullsbears APIs.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Manager keeps the authoritative in-memory copy of the session and writes
// through to the configured [Store]. Reads never touch the store after
// Restore, so hot-path token lookups stay allocation-free.
type Manager struct {
	store     Store
	nav       Navigator
	loginPath string

	mu      sync.RWMutex
	current Session
}

// NewManager creates a [Manager] over store. A nil navigator defaults to
// [NoopNavigator]; loginPath defaults to "/login" when empty.
func NewManager(store Store, nav Navigator, loginPath string) *Manager {
	if nav == nil {
		nav = NoopNavigator{}
	}
	if loginPath == "" {
		loginPath = "/login"
	}
	return &Manager{store: store, nav: nav, loginPath: loginPath}
}

// Restore loads the persisted record into memory. Call it once at startup,
// before the first token lookup.
//
// Restore may return an error when input validation, dependency calls, or security checks fail.
func (m *Manager) Restore(ctx context.Context) error {
	sess, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
	return nil
}

// Current returns a copy of the in-memory session record.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Token returns the stored bearer token, or "" when signed out.
func (m *Manager) Token() string {
	return m.Current().Token
}

// Role returns the stored role, or "" when signed out or unknown.
func (m *Manager) Role() string {
	return m.Current().Role
}

// Authenticated reports whether a token is currently held.
func (m *Manager) Authenticated() bool {
	return m.Current().Authenticated()
}

// SetSession describes the set session operation and its observable behavior.
//
// SetSession may return an error when input validation, dependency calls, or security checks fail.
// SetSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) SetSession(ctx context.Context, sess Session) error {
	if err := m.store.Save(ctx, sess); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
	return nil
}

// SetRole updates the role of the current record without touching the token.
// It is used when the role is recovered from a token after a restart.
func (m *Manager) SetRole(ctx context.Context, role string) error {
	m.mu.RLock()
	sess := m.current
	m.mu.RUnlock()
	sess.Role = role
	return m.SetSession(ctx, sess)
}

// Clear discards the session record from memory and the store. Clearing an
// already-empty session is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.current = Session{}
	m.mu.Unlock()
	return nil
}

// Logout clears the session and redirects to the login path. The redirect is
// skipped when the host is already there, so repeated logouts cannot loop.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.Clear(ctx); err != nil {
		return err
	}
	if m.nav.Location() != m.loginPath {
		m.nav.Navigate(m.loginPath)
	}
	return nil
}

// LoginPath returns the configured unauthenticated entry point.
func (m *Manager) LoginPath() string {
	return m.loginPath
}
