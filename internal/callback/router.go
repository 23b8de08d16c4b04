// Package callback turns inline button presses on order and waiter messages
// into an edited message, a popup acknowledgment and an optional follow-up.
package callback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tgmodels "github.com/go-telegram/bot/models"
	"golang.org/x/sync/errgroup"

	"github.com/mixelka/orderbot/internal/formatter"
	"github.com/mixelka/orderbot/pkg/models"
)

var (
	// ErrUnknownAction is returned for action codes outside the known set
	ErrUnknownAction = errors.New("unknown action")
	// ErrMissingToken is returned when no bot credential is configured
	ErrMissingToken = errors.New("BOT_TOKEN environment variable not set")
	// ErrEditFailed is returned when the original message could not be edited
	ErrEditFailed = errors.New("failed to edit message")
)

// Messenger performs the outbound Bot API calls
type Messenger interface {
	EditMessage(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallback(ctx context.Context, callbackID, text string) error
	SendMessage(ctx context.Context, chatID int64, text string, keyboard *tgmodels.InlineKeyboardMarkup) error
}

// AuditLog records handled callbacks
type AuditLog interface {
	RecordCallback(ctx context.Context, rec *models.CallbackRecord) error
}

// Event is a single button press
type Event struct {
	Action       models.CallbackAction
	ChatID       int64
	MessageID    int
	OriginalText string
	ActorName    string
	CallbackID   string
}

// FollowUp is a notification sent after the edit
type FollowUp struct {
	ChatID   int64
	Text     string
	Keyboard *tgmodels.InlineKeyboardMarkup // nil sends plain text
}

// Response is the rendered outcome of an event
type Response struct {
	EditedText string
	AlertText  string
	FollowUp   *FollowUp
}

// Result is returned by Handle on success
type Result struct {
	Action      models.CallbackAction
	MessageID   int
	ProcessedAt time.Time
}

// Router handles callback events
type Router struct {
	messenger   Messenger
	audit       AuditLog
	formatter   *formatter.TelegramFormatter
	staffChatID int64
	now         func() time.Time
	logger      *slog.Logger
}

// RouterDeps dependencies for creating a router
type RouterDeps struct {
	Messenger   Messenger // nil when no bot token is configured
	Audit       AuditLog  // optional
	Formatter   *formatter.TelegramFormatter
	StaffChatID int64 // follow-up target, 0 = originating chat
	Now         func() time.Time
	Logger      *slog.Logger
}

// NewRouter creates a new callback router
func NewRouter(deps RouterDeps) *Router {
	r := &Router{
		messenger:   deps.Messenger,
		audit:       deps.Audit,
		formatter:   deps.Formatter,
		staffChatID: deps.StaffChatID,
		now:         deps.Now,
		logger:      deps.Logger,
	}
	if r.formatter == nil {
		r.formatter = formatter.NewTelegramFormatter(nil)
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "callback_router")
	return r
}

// Build renders the response for an event without side effects
func (r *Router) Build(ev Event, at time.Time) (Response, error) {
	tmpl, ok := templates[ev.Action]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}

	body := formatter.StripLeadingLines(ev.OriginalText, tmpl.skipLines)
	resp := Response{
		EditedText: r.formatter.FormatDecision(tmpl.banner, ev.ActorName, body, at),
		AlertText:  tmpl.alert,
	}

	if tmpl.kind != followUpNone {
		target := ev.ChatID
		if r.staffChatID != 0 {
			target = r.staffChatID
		}
		resp.FollowUp = &FollowUp{ChatID: target, Text: tmpl.followUp}
		if tmpl.keyboard != nil {
			resp.FollowUp.Keyboard = tmpl.keyboard()
		}
	}

	return resp, nil
}

// Handle renders the event, edits the message, then acknowledges the
// callback and sends the follow-up. Only the edit can fail the call.
func (r *Router) Handle(ctx context.Context, ev Event) (Result, error) {
	at := r.now()
	logger := r.logger.With("action", ev.Action, "chat_id", ev.ChatID, "message_id", ev.MessageID)
	logger.Info("processing callback")

	resp, err := r.Build(ev, at)
	if err != nil {
		logger.Warn("rejected callback", "error", err)
		return Result{}, err
	}

	if r.messenger == nil {
		logger.Error("cannot process callback", "error", ErrMissingToken)
		return Result{}, ErrMissingToken
	}

	if err := r.messenger.EditMessage(ctx, ev.ChatID, ev.MessageID, resp.EditedText); err != nil {
		logger.Error("failed to edit message", "error", err)
		r.record(ctx, ev, models.OutcomeEditFailed, at)
		return Result{}, fmt.Errorf("%w: %w", ErrEditFailed, err)
	}

	// Acknowledgment and follow-up are independent; failures are logged only
	var g errgroup.Group
	g.Go(func() error {
		if err := r.messenger.AnswerCallback(ctx, ev.CallbackID, resp.AlertText); err != nil {
			logger.Error("failed to answer callback", "error", err)
		}
		return nil
	})
	if resp.FollowUp != nil {
		g.Go(func() error {
			if err := r.messenger.SendMessage(ctx, resp.FollowUp.ChatID, resp.FollowUp.Text, resp.FollowUp.Keyboard); err != nil {
				logger.Error("failed to send follow-up", "error", err, "target_chat_id", resp.FollowUp.ChatID)
			}
			return nil
		})
	}
	_ = g.Wait()

	r.record(ctx, ev, models.OutcomeProcessed, at)
	logger.Info("callback processed")

	return Result{Action: ev.Action, MessageID: ev.MessageID, ProcessedAt: at}, nil
}

// record writes the audit row; failures never affect the callback outcome
func (r *Router) record(ctx context.Context, ev Event, outcome models.CallbackOutcome, at time.Time) {
	if r.audit == nil {
		return
	}
	rec := &models.CallbackRecord{
		CallbackID:  ev.CallbackID,
		Action:      ev.Action,
		ChatID:      ev.ChatID,
		MessageID:   ev.MessageID,
		Actor:       ev.ActorName,
		Outcome:     outcome,
		ProcessedAt: at,
	}
	if err := r.audit.RecordCallback(ctx, rec); err != nil {
		r.logger.Warn("failed to record callback", "error", err, "callback_id", ev.CallbackID)
	}
}

// EventFromQuery converts an inbound callback query into an event
func EventFromQuery(q *models.CallbackQuery) (Event, bool) {
	if q == nil || q.Message == nil {
		return Event{}, false
	}
	return Event{
		Action:       models.CallbackAction(q.Data),
		ChatID:       q.Message.Chat.ID,
		MessageID:    q.Message.MessageID,
		OriginalText: q.Message.Text,
		ActorName:    q.From.FirstName,
		CallbackID:   q.ID,
	}, true
}
