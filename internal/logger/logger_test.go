package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"xvm/internal/logger"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer

	logger.Setup(&buf, false, true)
	log.Debug("hidden step")
	log.Warn("shown warning")

	if strings.Contains(buf.String(), "hidden step") {
		t.Errorf("debug output without verbose: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "XVM") || !strings.Contains(buf.String(), "shown warning") {
		t.Errorf("expected prefixed warning, got %q", buf.String())
	}

	buf.Reset()
	logger.Setup(&buf, true, true)
	log.Debug("step", "pc", 3)
	if !strings.Contains(buf.String(), "pc=3") {
		t.Errorf("expected debug output, got %q", buf.String())
	}

	logger.Setup(&bytes.Buffer{}, false, true)
}
