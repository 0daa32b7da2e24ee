package overlay_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padbind/padbind/button"
	"github.com/padbind/padbind/overlay"
)

func TestGenerateToken(t *testing.T) {
	tok, err := overlay.GenerateToken()
	require.NoError(t, err)
	assert.Len(t, tok, 16)

	other, err := overlay.GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, tok, other)
}

func TestLoadOrCreateToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "overlay.token.txt")

	tok, created, err := overlay.LoadOrCreateToken(path)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, tok)

	again, created, err := overlay.LoadOrCreateToken(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, tok, again)
}

func TestLoadTokenTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.token.txt")
	require.NoError(t, os.WriteFile(path, []byte("  sekrit \n"), 0o600))

	tok, created, err := overlay.LoadOrCreateToken(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "sekrit", tok)
}

func TestEventEncoding(t *testing.T) {
	g := uint32(111)
	ev := overlay.NewEvent("down", button.A, &g)

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "down", decoded["event"])
	assert.Equal(t, "A", decoded["button"])
	assert.Equal(t, float64(111), decoded["group"])
	assert.Contains(t, decoded, "t")

	// Ungrouped events omit the group field entirely.
	data, err = json.Marshal(overlay.NewEvent("up", button.Start, nil))
	require.NoError(t, err)
	var plain map[string]any
	require.NoError(t, json.Unmarshal(data, &plain))
	assert.NotContains(t, plain, "group")
}
