package memory

import (
	"context"
	"sync"

	"github.com/ahmetyanpar/orbitrates/storage"
)

// Store is the in-memory preference store, used when no database is
// configured. Contents live for the process lifetime only.
type Store struct {
	lock   sync.RWMutex      // rw lock guards themes
	themes map[string]string // userID -> theme
}

func New() storage.Preferences {
	return &Store{
		themes: make(map[string]string),
	}
}

// Theme implements storage.Preferences.
func (m *Store) Theme(_ context.Context, userID, fallback string) (string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if theme, ok := m.themes[userID]; ok {
		return theme, nil
	}

	return fallback, nil
}

// SetTheme implements storage.Preferences.
func (m *Store) SetTheme(_ context.Context, userID, theme string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.themes[userID] = theme
	return nil
}
