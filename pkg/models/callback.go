package models

// CallbackAction type of callback action (inline button callback_data)
type CallbackAction string

const (
	CallbackConfirmOrder CallbackAction = "confirm_order"
	CallbackRejectOrder  CallbackAction = "reject_order"
	CallbackWaiterSent   CallbackAction = "waiter_sent"
	CallbackWaiterIgnore CallbackAction = "waiter_ignore"

	// Kitchen buttons attached to the confirmed-order notification.
	// The router does not handle them yet, so a press is answered as an unknown action.
	CallbackMarkPreparing CallbackAction = "mark_preparing"
	CallbackMarkReady     CallbackAction = "mark_ready"
)

// Update is the subset of a Telegram webhook update the service reads
type Update struct {
	UpdateID      int            `json:"update_id"`
	CallbackQuery *CallbackQuery `json:"callback_query"`
}

// CallbackQuery is an inline button press
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Data    string   `json:"data"`
	Message *Message `json:"message"`
}

// User is the Telegram user who pressed the button
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
}

// Message is the message the button was attached to
type Message struct {
	MessageID int    `json:"message_id"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// Chat identifies the chat of a message
type Chat struct {
	ID int64 `json:"id"`
}
