package commands

import (
	"context"

	"github.com/td0m/taskboard/pkg/seed"
	"github.com/urfave/cli/v3"
)

type SeedCmd struct {
	flags *Flags
}

func NewSeedCmd(flags *Flags) *SeedCmd {
	return &SeedCmd{flags: flags}
}

// Register adds the seed command to the application
func (cmd *SeedCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "seed",
		Usage:       "Print the loaded board as a seed document",
		UsageText:   "taskboard seed > board.yaml",
		Description: "The output can be edited and passed back with --seed.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *SeedCmd) run(ctx context.Context, c *cli.Command) error {
	return seed.Dump(c.Root().Writer, cmd.flags.Tracker)
}
