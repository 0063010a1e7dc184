package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/overlay/internal/config"
	"github.com/alexisbeaulieu97/overlay/internal/logger"
	overlayerrors "github.com/alexisbeaulieu97/overlay/pkg/errors"
)

type rootFlags struct {
	configPath string
	logFile    string
	logFormat  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "overlay",
		Short:         "A draggable panel that snaps between collapsed, half and expanded",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to an overlay.yaml configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (logs are discarded otherwise)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "json", "Log file format: json or console")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the configuration named by the flags.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		var parseErr *overlayerrors.ParseError
		if errors.As(err, &parseErr) && parseErr.NotFound() {
			return nil, fmt.Errorf("config file %s does not exist: %w", flags.configPath, err)
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the application logger. The returned closer releases
// the log file, if any.
func newLogger(flags *rootFlags, cfg *config.Config) (*logger.Logger, io.Closer, error) {
	if flags.logFile == "" {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	var human bool
	switch flags.logFormat {
	case "", "json":
	case "console":
		human = true
	default:
		return nil, nil, fmt.Errorf("unknown log format %q (want json or console)", flags.logFormat)
	}

	f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: f, Component: "overlay"})
	if err != nil {
		_ = f.Close()
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, f, nil
}
