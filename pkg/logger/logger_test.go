package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("key", "value").Msg("test message")

	var output map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &output)
	require.NoError(t, err, "logger output should be valid JSON")

	assert.Equal(t, "test message", output["message"])
	assert.Equal(t, "value", output["key"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, "loyalty-rewards", output["service"])
	assert.Contains(t, output, "time", "should include timestamp")
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "slider")

	log.Info().Msg("released")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "slider", output["component"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		logDebug bool
		logInfo  bool
		logWarn  bool
	}{
		{"trace", true, true, true},
		{"debug", true, true, true},
		{" DEBUG ", true, true, true},
		{"info", false, true, true},
		{"warning", false, false, true},
		{"error", false, false, false},
		{"invalid", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.in, &buf)

			log.Debug().Msg("d")
			assert.Equal(t, tt.logDebug, buf.Len() > 0, "debug")
			buf.Reset()

			log.Info().Msg("i")
			assert.Equal(t, tt.logInfo, buf.Len() > 0, "info")
			buf.Reset()

			log.Warn().Msg("w")
			assert.Equal(t, tt.logWarn, buf.Len() > 0, "warn")
		})
	}
}

func TestNew_PrettyMode(t *testing.T) {
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
