// Package webhook exposes the callback router over HTTP.
package webhook

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mixelka/orderbot/internal/callback"
)

// secretHeader carries the secret token registered with setWebhook
const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

// maxBodySize limits inbound update payloads
const maxBodySize = 1 << 20

// HandlerDeps dependencies for the HTTP handler
type HandlerDeps struct {
	Router  *callback.Router
	Path    string        // webhook route, e.g. /api/telegram-webhook
	Secret  string        // optional, compared against X-Telegram-Bot-Api-Secret-Token
	Timeout time.Duration // budget for outbound Bot API calls per request
	I18nDir string        // optional directory served under /i18n/
	Logger  *slog.Logger
}

type handler struct {
	router  *callback.Router
	secret  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewHandler builds the HTTP routes of the service
func NewHandler(deps HandlerDeps) http.Handler {
	h := &handler{
		router:  deps.Router,
		secret:  deps.Secret,
		timeout: deps.Timeout,
		logger:  deps.Logger.With("component", "webhook"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.MethodNotAllowed(h.methodNotAllowed)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	})

	r.Get("/healthz", h.handleLiveness)

	r.Post(deps.Path, h.handleCallback)
	r.Get(deps.Path, h.handleLiveness)
	r.Options(deps.Path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if deps.I18nDir != "" {
		r.Handle("/i18n/*", http.StripPrefix("/i18n/", http.FileServer(http.Dir(deps.I18nDir))))
	}

	return r
}

// cors sets permissive CORS headers on every response
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+secretHeader)
		next.ServeHTTP(w, r)
	})
}

type statusResponse struct {
	OK        bool   `json:"ok"`
	Action    string `json:"action,omitempty"`
	MessageID int    `json:"messageId,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
