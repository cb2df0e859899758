package tracego

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.WithComponent("engine").Info("ready")

	out := buf.String()
	assert.Contains(t, out, "component=engine")
	assert.Contains(t, out, "ready")
}

func TestLoggerWithVolume(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil))

	l.WithVolume(512, 512, 60).Info("volume loaded")

	out := buf.String()
	assert.Contains(t, out, "width=512")
	assert.Contains(t, out, "height=512")
	assert.Contains(t, out, "depth=60")
}

func TestNoopLoggerDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		NoopLogger().WithComponent("engine").Info("dropped")
	})
}
