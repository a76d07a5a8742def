// Package config loads deck settings from a .deck file, DECK_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath          = "~/.deck.db"
	defaultBackend       = "diskv"
	defaultSlot          = "questions"
	defaultLanguage      = "java"
	defaultCodeStyle     = "monokai"
	defaultMarkdownStyle = "auto"
	defaultLogFile       = "~/.deck.log"
	defaultLogLevel      = "info"
)

// Config holds resolved settings. It satisfies store.Config.
type Config struct {
	Path          string `mapstructure:"path"`
	StoreBackend  string `mapstructure:"backend"`
	Slot          string `mapstructure:"slot"`
	Language      string `mapstructure:"language"`
	CodeStyle     string `mapstructure:"code_style"`
	MarkdownStyle string `mapstructure:"markdown_style"`
	LogFile       string `mapstructure:"log_file"`
	LogLevel      string `mapstructure:"log_level"`
}

func (c *Config) BasePath() string { return c.Path }
func (c *Config) Backend() string  { return c.StoreBackend }
func (c *Config) SlotKey() string  { return c.Slot }

// Load reads the .deck config file from dir (when set), $DECK_CONFIG_PATH,
// the working directory and the home directory, in that order. A missing
// file is fine; a malformed one is an error.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load() // .env

	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("backend", defaultBackend)
	v.SetDefault("slot", defaultSlot)
	v.SetDefault("language", defaultLanguage)
	v.SetDefault("code_style", defaultCodeStyle)
	v.SetDefault("markdown_style", defaultMarkdownStyle)
	v.SetDefault("log_file", defaultLogFile)
	v.SetDefault("log_level", defaultLogLevel)

	v.SetConfigName(".deck") // .yaml is implicit
	v.SetEnvPrefix("DECK")
	v.AutomaticEnv()

	if strings.TrimSpace(dir) != "" {
		v.AddConfigPath(dir)
	}
	if override := os.Getenv("DECK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{
		Path:          v.GetString("path"),
		StoreBackend:  v.GetString("backend"),
		Slot:          v.GetString("slot"),
		Language:      v.GetString("language"),
		CodeStyle:     v.GetString("code_style"),
		MarkdownStyle: v.GetString("markdown_style"),
		LogFile:       v.GetString("log_file"),
		LogLevel:      v.GetString("log_level"),
	}

	var err error
	if cfg.Path, err = expand(cfg.Path, defaultPath); err != nil {
		return nil, err
	}
	// An explicitly empty log_file logs to stderr.
	if cfg.LogFile, err = expand(cfg.LogFile, ""); err != nil {
		return nil, err
	}
	return cfg, nil
}

func expand(path, fallback string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = fallback
	}
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(strings.TrimSpace(path))
	if err != nil {
		return "", fmt.Errorf("config: expand %q: %w", path, err)
	}
	return expanded, nil
}
