package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotT(t *testing.T) {
	s := Snapshot{Lang: "en", Dir: "ltr", table: Table{
		"app": map[string]any{
			"title": "Meal Selection",
			"menu":  map[string]any{"soup": "Soup"},
			"empty": "",
			"count": 3,
		},
	}}

	tests := []struct {
		name     string
		key      string
		fallback []string
		want     string
	}{
		{"leaf", "app.title", nil, "Meal Selection"},
		{"nested leaf", "app.menu.soup", nil, "Soup"},
		{"missing key returns path", "a.b.c", nil, "a.b.c"},
		{"missing key returns fallback", "a.b.c", []string{"X"}, "X"},
		{"empty fallback is skipped", "a.b.c", []string{"", "Y"}, "Y"},
		{"sub-table is a miss", "app.menu", []string{"X"}, "X"},
		{"empty leaf is a miss", "app.empty", nil, "app.empty"},
		{"non-string leaf is a miss", "app.count", nil, "app.count"},
		{"path through leaf", "app.title.more", nil, "app.title.more"},
		{"empty key", "", []string{"X"}, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.T(tt.key, tt.fallback...))
		})
	}
}

func TestSnapshotTEmptyTable(t *testing.T) {
	var s Snapshot
	assert.Equal(t, "a.b.c", s.T("a.b.c"))
	assert.Equal(t, "X", s.T("a.b.c", "X"))
}

func TestSnapshotTReportsMisses(t *testing.T) {
	var missed []string
	s := Snapshot{
		table: Table{"a": "A"},
		miss:  func(k string) { missed = append(missed, k) },
	}

	s.T("a")
	s.T("b")
	s.T("c", "C")

	assert.Equal(t, []string{"b", "c"}, missed)
}

func TestSnapshotFormat(t *testing.T) {
	s := Snapshot{table: Table{
		"order": map[string]any{"ready": "Order {id} is ready, {name}!"},
	}}

	assert.Equal(t, "Order 42 is ready, Ann!",
		s.Format("order.ready", map[string]string{"id": "42", "name": "Ann"}))
	assert.Equal(t, "Order 42 is ready, {name}!",
		s.Format("order.ready", map[string]string{"id": "42"}))
	assert.Equal(t, "Order {id} is ready, {name}!", s.Format("order.ready", nil))
	assert.Equal(t, "missing.key", s.Format("missing.key", map[string]string{"id": "1"}))
}
