package util

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"trace", TraceLevel, true},
		{" Debug ", DebugLevel, true},
		{"info", InfoLevel, true},
		{"warning", WarnLevel, true},
		{"ERROR", ErrorLevel, true},
		{"loud", InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.TraceLevel, ZerologLevel(TraceLevel))
	assert.Equal(t, zerolog.ErrorLevel, ZerologLevel(ErrorLevel))
	assert.Equal(t, zerolog.InfoLevel, ZerologLevel(42))
}

// Not parallel: swaps the global logger.
func TestLoggerRouting(t *testing.T) {
	var buf bytes.Buffer
	InitializeLoggerTo(&buf, WarnLevel)
	defer InitializeLogger(InfoLevel)

	logger := GetLogger("scanner")

	logger.Info().Msg("hidden message")
	logger.Warn().Msg("shown message")
	NewLogLogger("bridge", ErrorLevel).Print("from stdlog\n")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "shown message")
	assert.Contains(t, out, "scanner")
	assert.Contains(t, out, "from stdlog")
	assert.Contains(t, out, "bridge")
}
