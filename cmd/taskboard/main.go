package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/td0m/taskboard/internal/commands"
	"github.com/td0m/taskboard/internal/config"
	"github.com/td0m/taskboard/internal/logging"
)

// Populated at build-time via -ldflags flag.
var version = "dev"

func main() {
	ctx := context.Background()

	var logCloser func()

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "taskboard",
		Usage:     "Track people, their tasks and the subtasks of study tasks",
		UsageText: "taskboard [global options] command [command options]",
		Description: `Taskboard loads a board of people and tasks from a seed document and lets
you work through it: complete tasks, track subtask progress and reschedule.

Run 'taskboard' with no arguments to open the interactive board.
Nothing is saved on exit; use 'taskboard seed' to export the board.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TASKBOARD_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr, silent in the tui)",
				Sources:     cli.EnvVars("TASKBOARD_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TASKBOARD_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "seed",
				Usage:       "seed document to load instead of the demo data",
				Sources:     cli.EnvVars("TASKBOARD_SEED"),
				Destination: &flags.Seed,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// explicit flags win over the config file
			if !c.IsSet("log-level") {
				flags.LogLevel = cfg.LogLevel
			}
			if !c.IsSet("log-file") {
				flags.LogFile = cfg.LogFile
			}

			logger, closer, err := logging.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			return ctx, commands.Seed(flags)
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags)

	app = tuiCmd.Register(app)
	app = commands.NewPeopleCmd(flags).Register(app)
	app = commands.NewTasksCmd(flags).Register(app)
	app = commands.NewReportCmd(flags).Register(app)
	app = commands.NewSeedCmd(flags).Register(app)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'taskboard --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
