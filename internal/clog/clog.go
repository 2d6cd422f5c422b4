// Package clog wraps log/slog for json5ctl, in the shape of the
// retrieved pack's own log/config.go wrapper: a Flags/Config pair that
// registers pflag flags and turns level/format strings into a
// slog.Handler. The core json5 package never imports this; logging is
// strictly an ambient CLI concern.
package clog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Format is the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	ErrUnknownLevel  = errors.New("unknown log level")
	ErrUnknownFormat = errors.New("unknown log format")
)

// Flags holds the CLI flag names for logging configuration.
type Flags struct {
	Level  string
	Format string
}

// Config holds CLI flag values for logging configuration.
type Config struct {
	Flags  Flags
	Level  string
	Format string
}

// NewConfig returns a Config with the default flag names registered by
// RegisterFlags.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{Level: "log-level", Format: "log-format"},
	}
}

// RegisterFlags adds logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info", "log level, one of: debug, info, warn, error")
	flags.StringVar(&c.Format, c.Flags.Format, "text", "log format, one of: text, json")
}

// RegisterCompletions registers shell completions for the logging flags.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions([]string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions([]string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}
	return nil
}

// NewHandler builds a slog.Handler writing to w per c's level/format.
func (c *Config) NewHandler(w io.Writer, color bool) (slog.Handler, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	format, err := parseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if color {
		// Bracket the level name so it stands out on a terminal without
		// pulling in a full ANSI styling dependency for one attribute.
		opts.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				a.Value = slog.StringValue("[" + a.Value.String() + "]")
			}
			return a
		}
	}

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	case FormatText:
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, ErrUnknownFormat
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

func parseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if f == FormatText || f == FormatJSON {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
