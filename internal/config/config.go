package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds drinkmenu settings stored at ~/.drinkmenu/config.
type Config struct {
	MenuPath string `yaml:"menu_path,omitempty"`
	Language string `yaml:"language,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".drinkmenu", "config")
}

// Load reads and parses the config file. A missing file yields an error
// wrapping os.ErrNotExist so callers can fall back to defaults.
func Load() (*Config, error) {
	path := Path()

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config not found: %w", err)
	}

	perm := info.Mode().Perm()
	if perm&0o022 != 0 {
		return nil, fmt.Errorf("config permissions too open: %04o (must not be group or world writable)", perm)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, err := cfg.LanguageTag(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LanguageTag parses the configured collation language. Empty means the
// root collation order.
func (c *Config) LanguageTag() (language.Tag, error) {
	if c == nil || strings.TrimSpace(c.Language) == "" {
		return language.Und, nil
	}
	return ParseLanguage(c.Language)
}

// ParseLanguage parses a BCP 47 tag such as "en", "de-DE" or "sv".
func ParseLanguage(s string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return language.Und, fmt.Errorf("config language %q: %w", s, err)
	}
	return tag, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
