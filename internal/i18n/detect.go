package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
)

// Detect picks the stored preference, then the best supported language of
// locale (an Accept-Language value or a single BCP 47 tag), then the default.
func (r *Resolver) Detect(ctx context.Context, locale string) string {
	if r.store != nil {
		saved, err := r.store.GetPreference(ctx, PreferenceKey)
		switch {
		case err != nil:
			r.logger.Debug("no stored language", "error", err)
		case r.IsSupported(saved):
			return saved
		default:
			r.logger.Warn("ignoring unsupported stored language", "language", saved)
		}
	}

	if lang, ok := r.matchLocale(locale); ok {
		return lang
	}

	return r.def
}

// matchLocale returns the first supported base language of locale in preference order
func (r *Resolver) matchLocale(locale string) (string, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil {
		r.logger.Debug("failed to parse locale", "locale", locale, "error", err)
		return "", false
	}

	for _, tag := range tags {
		base, _ := tag.Base()
		if code := base.String(); r.IsSupported(code) {
			return code, true
		}
	}
	return "", false
}
