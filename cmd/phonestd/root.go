package main

import (
	"fmt"

	"phonestd/internal/config"
	"phonestd/internal/logger"
	"phonestd/internal/phone"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "phonestd",
		Short: "phonestd standardizes phone numbers in JSON documents",
		Long: `phonestd reads a JSON document holding a "people" array, rewrites every
phone number into canonical international form and reports the records it
could not parse.

Usage:
  phonestd process <file.json> [flags]
  phonestd normalize <number>...
  phonestd countries`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to YAML config file (default: built-in settings)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log_level", "", "Log level override: debug, info, warn, error")

	cmd.AddCommand(
		newProcessCmd(flags),
		newNormalizeCmd(flags),
		newCountriesCmd(),
	)

	return cmd
}

// loadConfig reads the config file when one is given and applies the
// log level override.
func (f *rootFlags) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}

	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.Logger {
	return logger.NewLoggerWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level)
}

func normalizerFor(cfg *config.Config) (*phone.Normalizer, error) {
	n, err := phone.DefaultRegistry().Normalizer(cfg.GetCallingCode())
	if err != nil {
		return nil, fmt.Errorf("country +%s: %w", cfg.GetCallingCode(), err)
	}

	return n, nil
}
