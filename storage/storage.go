package storage

import "context"

// Preferences interface describes storage for
// the per-user display preferences (currently just
// the light/dark theme flag)
type Preferences interface {
	// Theme retrieves the stored theme for given user,
	// returning fallback when nothing is stored
	Theme(ctx context.Context, userID, fallback string) (string, error)

	// SetTheme stores the theme for given user
	SetTheme(ctx context.Context, userID, theme string) error
}
