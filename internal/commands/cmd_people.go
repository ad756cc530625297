package commands

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

type PeopleCmd struct {
	flags *Flags
}

func NewPeopleCmd(flags *Flags) *PeopleCmd {
	return &PeopleCmd{flags: flags}
}

// Register adds the people and types commands to the application
func (cmd *PeopleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:   "people",
			Usage:  "List everyone on the board with their task counts",
			Action: cmd.people,
		},
		&cli.Command{
			Name:   "types",
			Usage:  "List the task types",
			Action: cmd.types,
		},
	)
	return app
}

func (cmd *PeopleCmd) people(ctx context.Context, c *cli.Command) error {
	renderPeople(c.Root().Writer, cmd.flags.Tracker.People.Items())
	return nil
}

func (cmd *PeopleCmd) types(ctx context.Context, c *cli.Command) error {
	study := cmd.flags.Tracker.StudyType()
	t := newTable(c.Root().Writer, "Type", "Description", "Subtasks")
	for _, typ := range cmd.flags.Tracker.Types.Items() {
		subtasks := ""
		if typ.Name == study {
			subtasks = "yes"
		}
		t.AppendRow(table.Row{typ.Name, typ.Description, subtasks})
	}
	t.Render()
	return nil
}
