package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

const appName = "wordgym"

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  appName,
		Usage: "Creativity training with random words and timed exercises",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to settings file",
			},
			&cli.StringFlag{
				Name:    "words",
				Aliases: []string{"w"},
				Usage:   "Path to a word file (.json or .yaml)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGUI(ctx, cmd)
		},
		Commands: []*cli.Command{
			NewGUICommand(),
			NewTUICommand(),
		},
	}
}
