package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DECK_CONFIG_PATH", "")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Backend() != "diskv" || cfg.SlotKey() != "questions" || cfg.Language != "java" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if strings.HasPrefix(cfg.BasePath(), "~") {
		t.Fatalf("expected expanded path, got %q", cfg.BasePath())
	}
	if !strings.HasSuffix(cfg.BasePath(), ".deck.db") {
		t.Fatalf("unexpected default path %q", cfg.BasePath())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := "path: " + filepath.Join(dir, "cards") + "\nbackend: sqlite\nlanguage: go\ncode_style: dracula\n"
	if err := os.WriteFile(filepath.Join(dir, ".deck.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BasePath() != filepath.Join(dir, "cards") {
		t.Fatalf("path not read from file: %q", cfg.BasePath())
	}
	if cfg.Backend() != "sqlite" || cfg.Language != "go" || cfg.CodeStyle != "dracula" {
		t.Fatalf("unexpected config %#v", cfg)
	}
}

func TestEmptyLogFileMeansStderr(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".deck.yaml"), []byte("log_file: \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DECK_LOG_FILE", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogFile != "" {
		t.Fatalf("expected empty log file, got %q", cfg.LogFile)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".deck.yaml"), []byte("slot: from-file\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DECK_SLOT", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SlotKey() != "from-env" {
		t.Fatalf("expected env override, got %q", cfg.SlotKey())
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".deck.yaml"), []byte("path: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
