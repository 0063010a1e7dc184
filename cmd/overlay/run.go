package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/overlay/internal/tui"
)

var errNotTerminal = errors.New("overlay needs an interactive terminal")

func runPanel(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	log, closer, err := newLogger(flags, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	log.WithFields(map[string]any{
		"config": flags.configPath,
		"theme":  cfg.ResolveTheme().Name,
	}).Info("starting panel")

	program := tea.NewProgram(
		tui.NewModel(*cfg, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := program.Run(); err != nil {
		log.Error(err, "panel exited with error")
		return fmt.Errorf("run panel: %w", err)
	}

	log.Info("panel closed")
	return nil
}
