package internal

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"error":  LogLevelError,
		"WARN":   LogLevelWarn,
		" info ": LogLevelInfo,
		"debug":  LogLevelDebug,
		"":       LogLevelInfo,
		"trace":  LogLevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetFlags(0)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	}()

	t.Setenv("LOG_LEVEL", "WARN")
	l := NewLogger("Test")
	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	assert.Equal(t, "[Test] WARN shown 3\n[Test] ERROR shown 4\n", buf.String())
}
