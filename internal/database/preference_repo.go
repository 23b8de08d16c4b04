package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mixelka/orderbot/pkg/models"
)

// GetPreference returns the stored value of a preference
func (db *DB) GetPreference(ctx context.Context, key string) (string, error) {
	var pref models.Preference
	query := `SELECT * FROM preferences WHERE key = ?`
	err := db.GetContext(ctx, &pref, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return pref.Value, nil
}

// SetPreference creates or replaces a preference
func (db *DB) SetPreference(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := db.ExecContext(ctx, query, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}
