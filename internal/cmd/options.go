package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/gravitrone/drinkmenu/internal/config"
	"github.com/gravitrone/drinkmenu/internal/menu"
)

// Options are the flags shared by the root command and its subcommands.
type Options struct {
	MenuPath string
	Language string
	LogFile  string
}

// Bind registers the shared flags as persistent flags.
func (o *Options) Bind(flags *pflag.FlagSet) {
	flags.StringVar(&o.MenuPath, "menu", "", "menu file (YAML or JSON); defaults to config menu_path, then the built-in menu")
	flags.StringVar(&o.Language, "lang", "", "collation language for sorting names, e.g. en, de, sv")
	flags.StringVar(&o.LogFile, "log-file", "", "write debug logs to this file")
}

// Session is everything a command needs once flags and config are resolved.
type Session struct {
	Drinks []menu.Drink
	Source string
	Tag    language.Tag
	Logger *slog.Logger
	close  func() error
}

// Close releases the log file, if any.
func (s *Session) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open resolves config, the menu source, the collation language and the
// logger. Flags win over config; a missing config file is not an error.
func (o *Options) Open() (*Session, error) {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &config.Config{}
	}

	tag, err := cfg.LanguageTag()
	if err != nil {
		return nil, err
	}
	if o.Language != "" {
		if tag, err = config.ParseLanguage(o.Language); err != nil {
			return nil, err
		}
	}

	logPath := cfg.LogFile
	if o.LogFile != "" {
		logPath = o.LogFile
	}
	logger, closeLog, err := NewLogger(logPath)
	if err != nil {
		return nil, err
	}

	drinks, source, err := loadDrinks(o.MenuPath, cfg.MenuPath)
	if err != nil {
		_ = closeLog()
		return nil, err
	}
	logger.Debug("menu loaded", "source", source, "drinks", len(drinks), "language", tag.String())

	return &Session{
		Drinks: drinks,
		Source: source,
		Tag:    tag,
		Logger: logger,
		close:  closeLog,
	}, nil
}

const builtinSource = "built-in"

func loadDrinks(flagPath, configPath string) ([]menu.Drink, string, error) {
	path := flagPath
	if path == "" {
		path = configPath
	}
	if path == "" {
		return menu.Sample(), builtinSource, nil
	}
	drinks, err := menu.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load menu: %w", err)
	}
	return drinks, path, nil
}

// NewLogger returns a debug-level text logger writing to path, or a
// discarding logger when path is empty.
func NewLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}
