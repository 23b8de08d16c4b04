// Package i18n swaps page text between a fixed set of languages using
// static nested key/value translation tables.
//
// A Resolver is constructed explicitly and passed to whatever renders text;
// there is no package-level instance. Lookups go through an immutable
// Snapshot, so a concurrent Switch is observed either entirely or not at all.
//
// Basic usage:
//
//	r := i18n.New(i18n.Options{Fetcher: i18n.NewHTTPFetcher(baseURL), Store: store})
//	if err := r.Init(ctx, acceptLanguage); err != nil {
//		return err
//	}
//	title := r.T("app.title", "Meal Selection")
//	err := r.Switch(ctx, "he") // r.Dir() == "rtl"
package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
)

// DefaultLanguage is used when neither a stored preference nor the locale matches
const DefaultLanguage = "en"

var (
	defaultSupported = []string{"en", "de", "fr", "sr", "uk", "ru", "he"}
	defaultRTL       = []string{"he"}
)

// RetryPolicy controls how often a failed load is retried
type RetryPolicy struct {
	MaxRetries uint64        // retries after the first attempt
	BaseDelay  time.Duration // first backoff, doubled on every retry
}

// DefaultRetryPolicy retries twice, starting at 200ms
var DefaultRetryPolicy = RetryPolicy{MaxRetries: 2, BaseDelay: 200 * time.Millisecond}

// Options configures a Resolver
type Options struct {
	Fetcher   Fetcher
	Store     PreferenceStore // optional
	Supported []string
	RTL       []string
	Default   string
	Retry     *RetryPolicy
	// LanguageRetry overrides Retry for individual languages.
	LanguageRetry map[string]RetryPolicy
	Logger        *slog.Logger
}

// Resolver holds the current language and translation table
type Resolver struct {
	fetcher       Fetcher
	store         PreferenceStore
	supported     []string
	rtl           []string
	def           string
	retry         RetryPolicy
	languageRetry map[string]RetryPolicy
	logger        *slog.Logger

	// switchMu serializes Init and Switch; mu guards the state below
	switchMu sync.Mutex
	mu       sync.RWMutex
	lang     string
	table    Table
	pages    []*Page
}

// New creates a Resolver. Call Init before use; until then lookups return keys.
func New(opts Options) *Resolver {
	r := &Resolver{
		fetcher:       opts.Fetcher,
		store:         opts.Store,
		supported:     opts.Supported,
		rtl:           opts.RTL,
		def:           opts.Default,
		retry:         DefaultRetryPolicy,
		languageRetry: opts.LanguageRetry,
		logger:        opts.Logger,
	}
	if len(r.supported) == 0 {
		r.supported = defaultSupported
	}
	if r.rtl == nil {
		r.rtl = defaultRTL
	}
	if r.def == "" {
		r.def = DefaultLanguage
	}
	if !slices.Contains(r.supported, r.def) {
		r.supported = append(slices.Clone(r.supported), r.def)
	}
	if opts.Retry != nil {
		r.retry = *opts.Retry
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r.logger = r.logger.With("component", "i18n")
	r.lang = r.def
	return r
}

// Init detects the language, loads its table and renders attached pages.
// If the detected language fails to load, the default language is tried once.
func (r *Resolver) Init(ctx context.Context, locale string) error {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	lang := r.Detect(ctx, locale)
	table, err := r.Load(ctx, lang)
	if err != nil {
		if lang == r.def {
			r.logger.Error("failed to initialize", "language", lang, "error", err)
			return err
		}
		r.logger.Warn("falling back to default language", "language", lang, "default", r.def, "error", err)
		lang = r.def
		if table, err = r.Load(ctx, lang); err != nil {
			r.logger.Error("failed to initialize", "language", lang, "error", err)
			return err
		}
	}

	r.commit(lang, table)
	r.logger.Info("initialized", "language", lang)
	return nil
}

// Switch loads lang and makes it current, persists the choice and re-renders
// attached pages. On any error the previous language and table stay active.
func (r *Resolver) Switch(ctx context.Context, lang string) error {
	if !r.IsSupported(lang) {
		r.logger.Error("language is not supported", "language", lang)
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	table, err := r.Load(ctx, lang)
	if err != nil {
		r.logger.Error("failed to switch language", "language", lang, "error", err)
		return err
	}

	r.commit(lang, table)

	if r.store != nil {
		if err := r.store.SetPreference(ctx, PreferenceKey, lang); err != nil {
			r.logger.Warn("failed to persist language", "language", lang, "error", err)
		}
	}

	r.logger.Info("switched language", "language", lang)
	return nil
}

// Load fetches the table for lang, retrying with exponential backoff
func (r *Resolver) Load(ctx context.Context, lang string) (Table, error) {
	if r.fetcher == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, lang, errNoFetcher)
	}

	policy := r.policyFor(lang)
	backoff := retry.WithMaxRetries(policy.MaxRetries, retry.NewExponential(policy.BaseDelay))

	var (
		table   Table
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		t, err := r.fetcher.Fetch(ctx, lang, attempt)
		attempt++
		if err != nil {
			r.logger.Debug("translation fetch failed", "language", lang, "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		table = t
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, lang, err)
	}
	if table == nil {
		table = Table{}
	}
	return table, nil
}

func (r *Resolver) policyFor(lang string) RetryPolicy {
	p, ok := r.languageRetry[lang]
	if !ok {
		p = r.retry
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = time.Millisecond
	}
	return p
}

// commit replaces language and table together, then re-renders attached pages
func (r *Resolver) commit(lang string, table Table) {
	r.mu.Lock()
	r.lang = lang
	r.table = table
	pages := slices.Clone(r.pages)
	r.mu.Unlock()

	snap := r.Snapshot()
	for _, p := range pages {
		p.Render(snap)
	}
}

// Attach registers a page that is re-rendered on every switch.
// It waits for an in-flight switch, so the page never ends up on an older language.
// The page is rendered immediately with the current state.
func (r *Resolver) Attach(p *Page) {
	r.switchMu.Lock()
	defer r.switchMu.Unlock()

	r.mu.Lock()
	r.pages = append(r.pages, p)
	r.mu.Unlock()

	p.Render(r.Snapshot())
}

// Snapshot returns the current language and table
func (r *Resolver) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang := r.lang
	return Snapshot{
		Lang:  lang,
		Dir:   r.dirOf(lang),
		table: r.table,
		miss: func(keyPath string) {
			r.logger.Debug("translation key not found", "key", keyPath, "language", lang)
		},
	}
}

// T resolves keyPath in the current language, see Snapshot.T
func (r *Resolver) T(keyPath string, fallback ...string) string {
	return r.Snapshot().T(keyPath, fallback...)
}

// Format resolves keyPath and substitutes {name} placeholders
func (r *Resolver) Format(keyPath string, vars map[string]string) string {
	return r.Snapshot().Format(keyPath, vars)
}

// Current returns the current language code
func (r *Resolver) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lang
}

// Dir returns "rtl" or "ltr" for the current language
func (r *Resolver) Dir() string {
	return r.dirOf(r.Current())
}

// Supported returns the supported language codes
func (r *Resolver) Supported() []string {
	return slices.Clone(r.supported)
}

// IsSupported reports whether lang is one of the supported codes
func (r *Resolver) IsSupported(lang string) bool {
	return slices.Contains(r.supported, lang)
}

// IsRTL reports whether lang is written right-to-left
func (r *Resolver) IsRTL(lang string) bool {
	return slices.Contains(r.rtl, lang)
}

func (r *Resolver) dirOf(lang string) string {
	if r.IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}
