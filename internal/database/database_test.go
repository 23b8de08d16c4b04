package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mixelka/orderbot/pkg/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestMigrateIsRepeatable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Migrate(context.Background()))
	require.NoError(t, db.Ping(context.Background()))
}

func TestCallbackLog(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	at := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	first := &models.CallbackRecord{
		CallbackID:  "cb-1",
		Action:      models.CallbackConfirmOrder,
		ChatID:      42,
		MessageID:   7,
		Actor:       "Jane",
		Outcome:     models.OutcomeProcessed,
		ProcessedAt: at,
	}
	require.NoError(t, db.RecordCallback(ctx, first))
	assert.NotZero(t, first.ID)

	// Replays are recorded again, nothing is deduplicated.
	second := *first
	second.ID = 0
	second.Outcome = models.OutcomeEditFailed
	require.NoError(t, db.RecordCallback(ctx, &second))

	other := &models.CallbackRecord{CallbackID: "cb-2", Action: models.CallbackWaiterSent, ChatID: 42, MessageID: 8, Outcome: models.OutcomeProcessed}
	require.NoError(t, db.RecordCallback(ctx, other))
	assert.False(t, other.ProcessedAt.IsZero())

	records, err := db.GetCallbacksByMessage(ctx, 42, 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Jane", records[0].Actor)
	assert.Equal(t, models.CallbackConfirmOrder, records[0].Action)
	assert.Equal(t, models.OutcomeProcessed, records[0].Outcome)
	assert.True(t, at.Equal(records[0].ProcessedAt))
	assert.Equal(t, models.OutcomeEditFailed, records[1].Outcome)
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	_, err := db.GetPreference(ctx, "language")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.SetPreference(ctx, "language", "de"))
	value, err := db.GetPreference(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "de", value)

	require.NoError(t, db.SetPreference(ctx, "language", "he"))
	value, err = db.GetPreference(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "he", value)
}
