package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.log")
	l := NewIsolatedLogger(path)

	l.Info("SHEET", "Logged to Google Sheet", map[string]interface{}{"name": "An"})
	l.Error("SHEET", "Failed to log", map[string]interface{}{"error": "timeout"})
	l.Debug("SHEET", "below file level", nil)
	_ = l.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Logged to Google Sheet", entry["message"])
	assert.Equal(t, "SHEET", entry["module"])
	assert.Contains(t, entry, "timestamp")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "timeout", entry["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Warn("X", "nothing", nil)
	assert.NoError(t, l.Sync())
}
