// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reader ReaderConfig `toml:"reader"`
}

// ReaderConfig maps reader-related settings. Delays are in milliseconds.
type ReaderConfig struct {
	Speed            *float64 `toml:"speed"`
	BaseWPM          *int     `toml:"base-wpm"`
	CharDelayMs      *int     `toml:"char-delay-ms"`
	WordDelayMs      *int     `toml:"word-delay-ms"`
	SentenceBonusMs  *int     `toml:"sentence-bonus-ms"`
	ClauseBonusMs    *int     `toml:"clause-bonus-ms"`
	FirstWordDelayMs *int     `toml:"first-word-delay-ms"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
