package models

import "time"

// Preference is a persisted key/value setting (e.g. the selected UI language)
type Preference struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}
