package models

import "time"

// CallbackOutcome result of processing a callback
type CallbackOutcome string

const (
	OutcomeProcessed  CallbackOutcome = "processed"
	OutcomeEditFailed CallbackOutcome = "edit_failed"
)

// CallbackRecord is an audit row for a handled callback
type CallbackRecord struct {
	ID          int64           `db:"id"`
	CallbackID  string          `db:"callback_id"` // Telegram callback query ID
	Action      CallbackAction  `db:"action"`      // callback_data of the pressed button
	ChatID      int64           `db:"chat_id"`     // Chat of the edited message
	MessageID   int             `db:"message_id"`  // Edited message ID
	Actor       string          `db:"actor"`       // Staff member first name
	Outcome     CallbackOutcome `db:"outcome"`
	ProcessedAt time.Time       `db:"processed_at"`
}
