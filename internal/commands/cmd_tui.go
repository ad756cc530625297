package commands

import (
	"context"

	"github.com/td0m/taskboard/internal/logging"
	"github.com/td0m/taskboard/internal/tui"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/urfave/cli/v3"
)

type TuiCmd struct {
	flags *Flags
}

func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:   "tui",
		Usage:  "Open the interactive board (default)",
		Action: cmd.Run,
	})
	return app
}

func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	if cmd.flags.LogFile == "" {
		logging.Discard()
	}
	return tui.Run(cmd.flags.Tracker, date.Today())
}
