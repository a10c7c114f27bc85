// Package credentials owns the persisted parent session. It prefers an
// encrypted settings backend, falls back to the legacy plain backend when
// the encrypted one cannot be opened, and migrates legacy data forward
// opportunistically. Callers never learn which backend is active.
package credentials

import (
	"fmt"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/qoocca/parent-pay/internal/adapters/settings/encrypted"
	"github.com/qoocca/parent-pay/internal/adapters/settings/plain"
	"github.com/qoocca/parent-pay/internal/domain"
	"github.com/qoocca/parent-pay/internal/ports"
)

const (
	keyParentID    = "parentId"
	keyAccessToken = "accessToken"

	legacyFileName = "auth.toml"
)

type Manager struct {
	mu       sync.Mutex
	active   ports.SettingsStore
	legacy   ports.SettingsStore
	secure   bool
	migrated bool
}

// NewManager opens the credential store rooted at dir. Encrypted-backend
// initialization failure is downgraded to the legacy backend so startup
// never fails on a broken keystore; the condition is logged, not returned.
func NewManager(dir string) *Manager {
	legacy := plain.NewStore(filepath.Join(dir, legacyFileName))

	secure, err := encrypted.NewStore(filepath.Join(dir, "secure"))
	if err != nil {
		log.Warn().Err(err).Msg("encrypted settings store unavailable, using legacy store")
		return &Manager{active: legacy, legacy: legacy}
	}

	return &Manager{active: secure, legacy: legacy, secure: true}
}

// NewManagerWithStores wires explicit backends; tests use it to exercise
// fallback and migration without touching real key material.
func NewManagerWithStores(active, legacy ports.SettingsStore, secure bool) *Manager {
	return &Manager{active: active, legacy: legacy, secure: secure}
}

// SecureActive reports whether the encrypted backend is in use.
func (m *Manager) SecureActive() bool {
	return m.secure
}

// MigrateLegacyIfNeeded copies a valid legacy session into the encrypted
// store and clears the legacy copy. It runs at most once per manager and is
// idempotent: once the encrypted store holds a session, later calls are
// no-ops.
func (m *Manager) MigrateLegacyIfNeeded() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.migrated || !m.secure {
		return nil
	}
	m.migrated = true

	if current, err := readSession(m.active); err != nil {
		return fmt.Errorf("inspect secure session: %w", err)
	} else if current.Valid() {
		return nil
	}

	legacySession, err := readSession(m.legacy)
	if err != nil {
		return fmt.Errorf("inspect legacy session: %w", err)
	}
	if !legacySession.Valid() {
		return nil
	}

	if err := writeSession(m.active, legacySession); err != nil {
		return fmt.Errorf("migrate legacy session: %w", err)
	}
	if err := m.legacy.Clear(); err != nil {
		return fmt.Errorf("clear legacy session after migration: %w", err)
	}

	log.Info().Msg("migrated legacy session into encrypted store")
	return nil
}

// SaveSession persists both session fields in one write; readers see the
// previous session or the new one, never a mix.
func (m *Manager) SaveSession(parentID int64, accessToken string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return writeSession(m.active, domain.Session{ParentID: parentID, AccessToken: accessToken})
}

// Session returns the persisted session, or nil when either field is
// absent or holds its sentinel.
func (m *Manager) Session() (*domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := readSession(m.active)
	if err != nil {
		return nil, err
	}
	if !session.Valid() {
		return nil, nil
	}

	return &session, nil
}

func (m *Manager) IsLoggedIn() bool {
	session, err := m.Session()
	if err != nil {
		log.Warn().Err(err).Msg("session read failed, treating as logged out")
		return false
	}

	return session != nil
}

// Logout clears both backends unconditionally so a stale legacy copy can
// never resurrect a cleared session on a later migration pass.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	activeErr := m.active.Clear()
	legacyErr := m.legacy.Clear()
	if activeErr != nil || legacyErr != nil {
		return fmt.Errorf("clear session: active store: %v; legacy store: %v", activeErr, legacyErr)
	}

	return nil
}

func readSession(store ports.SettingsStore) (domain.Session, error) {
	session := domain.Session{ParentID: domain.SentinelParentID}

	rawID, ok, err := store.Get(keyParentID)
	if err != nil {
		return session, err
	}
	if ok {
		parentID, parseErr := strconv.ParseInt(rawID, 10, 64)
		if parseErr == nil {
			session.ParentID = parentID
		}
	}

	token, ok, err := store.Get(keyAccessToken)
	if err != nil {
		return session, err
	}
	if ok {
		session.AccessToken = token
	}

	return session, nil
}

func writeSession(store ports.SettingsStore, session domain.Session) error {
	return store.Put(map[string]string{
		keyParentID:    strconv.FormatInt(session.ParentID, 10),
		keyAccessToken: session.AccessToken,
	})
}
