// Root command for the kotoba CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kotoba-dev/kotoba/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// userError marks failures caused by bad input rather than the system.
type userError struct{ err error }

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagLogLevel  string
)

// cfg holds the configuration loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var cfg *appConfig

// logger is the process-wide logging collaborator, handed to every
// component explicitly.
var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:     "kotoba",
	Short:   "Kotoba is a local vocabulary-learning tool",
	Version: version,
	Long: `Kotoba stores vocabulary lessons (words with kana, translation, romaji,
example sentences, and tags) in a local SQLite database and drives
interactive multiple-choice quiz sessions over them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err = loadConfig(configDir)
		if err != nil {
			return err
		}

		logger = newLogger(resolveLogLevel())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.kotoba-db)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(quizCmd)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > KOTOBA_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, cfg.DataDir)
}

// resolveLogLevel returns the log level following flag > config precedence.
func resolveLogLevel() string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.LogLevel
}

// newLogger builds the slog logger used by every component. Unknown levels
// fall back to warn so a typo never silences errors.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
