package database

import (
	"context"
	"fmt"
	"time"

	"github.com/mixelka/orderbot/pkg/models"
)

// RecordCallback appends a handled callback to the audit log
func (db *DB) RecordCallback(ctx context.Context, rec *models.CallbackRecord) error {
	query := `
		INSERT INTO callback_log (callback_id, action, chat_id, message_id, actor, outcome, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if rec.ProcessedAt.IsZero() {
		rec.ProcessedAt = time.Now()
	}
	result, err := db.ExecContext(ctx, query,
		rec.CallbackID,
		rec.Action,
		rec.ChatID,
		rec.MessageID,
		rec.Actor,
		rec.Outcome,
		rec.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record callback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	rec.ID = id
	return nil
}

// GetCallbacksByMessage returns the audit trail of a message, oldest first
func (db *DB) GetCallbacksByMessage(ctx context.Context, chatID int64, messageID int) ([]*models.CallbackRecord, error) {
	var records []*models.CallbackRecord
	query := `SELECT * FROM callback_log WHERE chat_id = ? AND message_id = ? ORDER BY id`
	err := db.SelectContext(ctx, &records, query, chatID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get callbacks: %w", err)
	}
	return records, nil
}
