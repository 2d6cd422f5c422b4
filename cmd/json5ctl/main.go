// Package main provides the CLI entry point for json5ctl, a tool that
// parses JSON5 documents and can re-emit them as JSON5 or strict JSON.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-json5/json5"
	"github.com/go-json5/json5/internal/clog"
)

func main() {
	logCfg := clog.NewConfig()

	var configPath string
	var modeFlag string

	rootCmd := &cobra.Command{
		Use:           "json5ctl",
		Short:         "Parse and re-emit JSON5 documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".json5ctlrc.yaml", "path to the rc file")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "override the rc file's generation mode (json5 or json)")
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newParseCmd(logCfg, &configPath, &modeFlag),
		newFmtCmd(logCfg, &configPath, &modeFlag),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newLogger(logCfg *clog.Config) (*slog.Logger, error) {
	color := term.IsTerminal(int(os.Stderr.Fd()))
	handler, err := logCfg.NewHandler(os.Stderr, color)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func resolveMode(cfg *json5.CLIConfig, override string) (json5.Mode, error) {
	if override != "" {
		return json5.ModeFromString(override)
	}
	return json5.ModeFromString(cfg.Mode)
}

func readInput(arg string) ([]byte, error) {
	if arg == "" || arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(arg)
}

func newParseCmd(logCfg *clog.Config, configPath, modeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON5 document and print its structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(logCfg)
			if err != nil {
				return err
			}

			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			data, err := readInput(arg)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			logger.Debug("parsing", slog.String("source", displayName(arg)), slog.Int("bytes", len(data)))

			v, err := json5.ParseBytes(data)
			if err != nil {
				return err
			}
			fmt.Println(v.String())
			return nil
		},
	}
}

func newFmtCmd(logCfg *clog.Config, configPath, modeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file]",
		Short: "Parse a JSON5 document and re-emit it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger, err := newLogger(logCfg)
			if err != nil {
				return err
			}

			cfg, err := json5.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			mode, err := resolveMode(cfg, *modeFlag)
			if err != nil {
				return err
			}

			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			data, err := readInput(arg)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			v, err := json5.ParseBytes(data)
			if err != nil {
				return err
			}

			out, err := json5.Generate(v, mode)
			if err != nil {
				return err
			}
			out = json5.Reindent(out, cfg.Indent)

			logger.Debug("formatted", slog.String("source", displayName(arg)), slog.String("mode", *modeFlag))
			fmt.Println(out)
			return nil
		},
	}
}

func displayName(arg string) string {
	if arg == "" || arg == "-" {
		return "<stdin>"
	}
	return filepath.Base(arg)
}
