package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.GetPreference(ctx, PreferenceKey)
	require.Error(t, err)

	require.NoError(t, s.SetPreference(ctx, PreferenceKey, "fr"))
	got, err := s.GetPreference(ctx, PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "fr", got)

	require.NoError(t, s.SetPreference(ctx, PreferenceKey, "he"))
	got, err = s.GetPreference(ctx, PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "he", got)
}
