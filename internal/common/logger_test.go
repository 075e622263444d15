package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", level: "debug", want: slog.LevelDebug},
		{name: "upper case", level: "WARN", want: slog.LevelWarn},
		{name: "empty is info", level: "", want: slog.LevelInfo},
		{name: "error", level: "error", want: slog.LevelError},
		{name: "unknown", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLogger(&buf, slog.LevelDebug, "json"))

	LogError(errors.New("boom"), "probe failed", Fields{"tool": "texassolver"})
	LogDebug("delegating", Fields{"kind": "wasm"})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, "ERROR", first["level"])
	assert.Equal(t, "boom", first["error"])
	assert.Equal(t, "texassolver", first["tool"])

	assert.ErrorIs(t, SetupLogger(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	err := NewUserError("invalid board", ErrInvalidBoard)
	assert.Equal(t, "invalid board: invalid board", err.Error())
	assert.ErrorIs(t, err, ErrInvalidBoard)
	assert.Equal(t, "just a message", NewUserError("just a message", nil).Error())
}
