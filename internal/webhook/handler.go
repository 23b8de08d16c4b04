package webhook

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/mixelka/orderbot/internal/callback"
	"github.com/mixelka/orderbot/pkg/models"
)

// handleCallback handles a POSTed Telegram update
func (h *handler) handleCallback(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("request_id", middleware.GetReqID(r.Context()))

	if h.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(secretHeader)), []byte(h.secret)) != 1 {
		logger.Warn("rejected update with invalid secret token")
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
		return
	}

	var update models.Update
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&update); err != nil {
		logger.Warn("failed to decode update", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	if update.CallbackQuery == nil {
		writeJSON(w, http.StatusOK, statusResponse{OK: true, Message: "No callback query"})
		return
	}

	ev, ok := callback.EventFromQuery(update.CallbackQuery)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Message: "callback query has no message"})
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.router.Handle(ctx, ev)
	switch {
	case errors.Is(err, callback.ErrUnknownAction):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Unknown action", Message: string(ev.Action)})
		return
	case err != nil:
		logger.Error("webhook error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error", Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{
		OK:        true,
		Action:    string(res.Action),
		MessageID: res.MessageID,
		Timestamp: res.ProcessedAt.UTC().Format(time.RFC3339),
	})
}

// handleLiveness reports that the service is up
func (h *handler) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		OK:        true,
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}
