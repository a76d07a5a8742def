package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "deck.log")
	logger, err := New(Options{Level: "debug", File: file})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("questions loaded")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "questions loaded") || !strings.Contains(got, `"timestamp"`) {
		t.Fatalf("unexpected log output %q", got)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
