package i18n

import "errors"

var (
	// ErrUnsupportedLanguage is returned when switching to a language outside the supported set
	ErrUnsupportedLanguage = errors.New("i18n: language is not supported")
	// ErrLoad is returned when a translation table cannot be fetched or parsed
	ErrLoad = errors.New("i18n: failed to load translations")
)

var (
	errNoPreference = errors.New("i18n: no stored preference")
	errNoFetcher    = errors.New("i18n: no translation source configured")
)
