package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not be an error: %v", err)
	}
	if cfg.Reader.Speed != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[reader]
speed = 1.4
base-wpm = 244
char-delay-ms = 18
sentence-bonus-ms = 280
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Reader.Speed == nil || *cfg.Reader.Speed != 1.4 {
		t.Fatalf("unexpected speed: %+v", cfg.Reader.Speed)
	}
	if cfg.Reader.BaseWPM == nil || *cfg.Reader.BaseWPM != 244 {
		t.Fatalf("unexpected base-wpm: %+v", cfg.Reader.BaseWPM)
	}
	if cfg.Reader.CharDelayMs == nil || *cfg.Reader.CharDelayMs != 18 {
		t.Fatalf("unexpected char-delay-ms: %+v", cfg.Reader.CharDelayMs)
	}
	if cfg.Reader.SentenceBonusMs == nil || *cfg.Reader.SentenceBonusMs != 280 {
		t.Fatalf("unexpected sentence-bonus-ms: %+v", cfg.Reader.SentenceBonusMs)
	}
	if cfg.Reader.WordDelayMs != nil {
		t.Fatalf("word-delay-ms should be unset")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
