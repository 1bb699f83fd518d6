package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "", want: zerolog.WarnLevel},
		{raw: "DEBUG", want: zerolog.DebugLevel},
		{raw: " info ", want: zerolog.InfoLevel},
		{raw: "warn", want: zerolog.WarnLevel},
		{raw: "warning", want: zerolog.WarnLevel},
		{raw: "error", want: zerolog.ErrorLevel},
		{raw: "trace", want: zerolog.TraceLevel},
		{raw: "disabled", want: zerolog.Disabled},
		{raw: "off", want: zerolog.Disabled},
		{raw: "none", want: zerolog.Disabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, Output: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Str("plan", "p-1").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "p-1", entry["plan"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Pretty: true, Output: &buf})

	logger.Debug().Msg("placing course")

	assert.Contains(t, buf.String(), "placing course")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestDisabledLevelDropsEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.Disabled, Output: &buf})

	logger.Error().Msg("nope")

	assert.Empty(t, buf.String())
}

func TestNewDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.NoLevel, Output: &buf})

	logger.Info().Msg("hidden")

	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
