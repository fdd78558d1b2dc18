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

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestJSONLoggerWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")

	log.Info("SyncController", "record saved", map[string]interface{}{"id": 7})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "SyncController", entry["component"])
	assert.Equal(t, "record saved", entry["message"])
	assert.EqualValues(t, 7, entry["id"])
}

func TestErrorIncludesErr(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Error("RecordStore", errors.New("disk full"), nil)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "disk full", entry["error"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug("SyncController", "transition", nil)
	assert.Zero(t, buf.Len())
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("x", "y", nil)
		log.Error("x", errors.New("z"), map[string]interface{}{"k": 1})
	})
}
