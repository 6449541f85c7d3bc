package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastEvent(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var event map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	return event
}

func TestInfoCarriesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("preview", "server started", map[string]interface{}{
		"url": "http://127.0.0.1:3333",
	})

	event := lastEvent(t, &buf)
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "preview", event["component"])
	assert.Equal(t, "server started", event["message"])
	assert.Equal(t, "http://127.0.0.1:3333", event["url"])
	assert.Contains(t, event, "time")
}

func TestErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("file", errors.New("disk full"), map[string]interface{}{
		"path": "/tmp/doc.md",
	})

	event := lastEvent(t, &buf)
	assert.Equal(t, "error", event["level"])
	assert.Equal(t, "file", event["component"])
	assert.Equal(t, "disk full", event["error"])
	assert.Equal(t, "/tmp/doc.md", event["path"])
}

func TestLevelFiltersEvents(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("gui", "ignored", nil)
	log.Info("gui", "ignored", nil)
	assert.Zero(t, buf.Len(), "events below the level must be dropped")

	log.Warning("gui", "kept", nil)
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"info", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}
