package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ahmetyanpar/orbitrates/storage"
)

type Persistence struct {
	dbConn *sql.DB
}

func New(dbConn *sql.DB) storage.Preferences {
	return &Persistence{
		dbConn: dbConn,
	}
}

// Theme implements storage.Preferences.
func (p *Persistence) Theme(ctx context.Context, userID, fallback string) (string, error) {
	query := `SELECT theme
			 FROM preference
			 WHERE user_id=$1`

	var theme string

	err := p.dbConn.QueryRowContext(ctx, query, userID).Scan(&theme)
	if errors.Is(err, sql.ErrNoRows) {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}

	return theme, nil
}

// SetTheme implements storage.Preferences.
func (p *Persistence) SetTheme(ctx context.Context, userID, theme string) error {
	query := `INSERT INTO preference (user_id, theme)
			 VALUES ($1, $2)
			 ON CONFLICT (user_id) DO UPDATE SET theme=EXCLUDED.theme`

	_, err := p.dbConn.ExecContext(ctx, query, userID, theme)
	return err
}
