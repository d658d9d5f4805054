package logging

import (
	"bytes"
	"strings"
	"testing"
)

// TestNilLoggerSafety tests that a nil logger absorbs every call.
func TestNilLoggerSafety(t *testing.T) {
	var logger *Logger
	logger.Error("ignored")
	logger.Warnf("ignored %d", 1)
	logger.Debug("ignored")
	if logger.Sublogger("child") != nil {
		t.Error("nil logger produced a non-nil sublogger")
	}
	if logger.Level() != LevelDisabled {
		t.Error("nil logger reports a level")
	}
}

// TestLevelFiltering tests that messages above the configured level are
// dropped.
func TestLevelFiltering(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelWarn, buffer)
	logger.Error("visible error")
	logger.Warn("visible warning")
	logger.Info("hidden info")
	logger.Debug("hidden debug")
	output := buffer.String()
	if !strings.Contains(output, "visible error") || !strings.Contains(output, "visible warning") {
		t.Error("expected messages missing:", output)
	}
	if strings.Contains(output, "hidden") {
		t.Error("filtered messages leaked:", output)
	}
}

// TestSubloggerPrefix tests dotted prefix composition.
func TestSubloggerPrefix(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(LevelInfo, buffer).Sublogger("scene").Sublogger("edit")
	logger.Info("message")
	if !strings.Contains(buffer.String(), "[scene.edit] message") {
		t.Error("prefix composition mismatch:", buffer.String())
	}
}

// TestNameToLevel tests level-name conversion.
func TestNameToLevel(t *testing.T) {
	if level, ok := NameToLevel("debug"); !ok || level != LevelDebug {
		t.Error("debug conversion mismatch")
	}
	if _, ok := NameToLevel("verbose"); ok {
		t.Error("invalid level name accepted")
	}
	if LevelTrace.String() != "trace" {
		t.Error("level stringification mismatch")
	}
}
