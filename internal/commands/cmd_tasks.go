package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type TasksCmd struct {
	flags *Flags

	// flags
	person    int
	completed bool
}

func NewTasksCmd(flags *Flags) *TasksCmd {
	return &TasksCmd{flags: flags}
}

// Register adds the tasks command to the application
func (cmd *TasksCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tasks",
		Usage:     "List the tasks of a person",
		UsageText: "taskboard tasks --person <id> [--completed]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "person",
				Aliases:     []string{"p"},
				Usage:       "person id",
				Required:    true,
				Destination: &cmd.person,
			},
			&cli.BoolFlag{
				Name:        "completed",
				Usage:       "list completed tasks instead of active ones",
				Destination: &cmd.completed,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *TasksCmd) run(ctx context.Context, c *cli.Command) error {
	p, err := cmd.flags.Tracker.Person(cmd.person)
	if err != nil {
		return err
	}
	l := p.Active
	if cmd.completed {
		l = p.Completed
	}
	out := c.Root().Writer
	_, _ = fmt.Fprintln(out, p.FullName())
	renderTasks(out, l.Items())
	return nil
}
