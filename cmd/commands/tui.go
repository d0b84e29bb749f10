package commands

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"wordgym/internal/ui/terminal"
)

// NewTUICommand returns the terminal trainer command.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Run the trainer in the terminal",
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	// The terminal owns stdout and stderr; logs go to a file when debugging.
	configureLogging(io.Discard, false)
	if cmd.Bool("debug") {
		logFile, err := tea.LogToFile(appName+"-debug.log", appName)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logFile.Close()
		configureLogging(logFile, true)
	}

	rt := newRuntime(cmd)
	defer rt.session.Stop()

	events := rt.session.Subscribe(8)
	rt.session.Start()

	program := tea.NewProgram(terminal.New(rt.session, events), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
