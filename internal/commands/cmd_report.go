package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/td0m/taskboard/pkg/report"
	"github.com/td0m/taskboard/pkg/task"
	"github.com/td0m/taskboard/pkg/task/date"
	"github.com/urfave/cli/v3"
)

var (
	ErrUnknownReport = errors.New("unknown report")
	ErrMissingFlag   = errors.New("missing flag")
)

type ReportCmd struct {
	flags *Flags

	// flags
	date   string
	typ    string
	days   int
	person int
	task   int

	// now anchors relative dates, replaced in tests
	now func() date.Date
}

func NewReportCmd(flags *Flags) *ReportCmd {
	return &ReportCmd{flags: flags, now: date.Today, days: -1}
}

type reportFunc func(cmd *ReportCmd, w io.Writer, r *report.Reporter) error

type reportDef struct {
	usage string
	run   reportFunc
}

var reports = map[string]reportDef{
	"types":           {"task types", (*ReportCmd).types},
	"people":          {"everyone on the board", (*ReportCmd).people},
	"idle":            {"people without active tasks", (*ReportCmd).idle},
	"agenda":          {"active tasks of --person, earliest due first", (*ReportCmd).agenda},
	"due-soon":        {"active tasks due within --days of --date", (*ReportCmd).dueSoon},
	"subtasks":        {"subtasks of --task held by --person", (*ReportCmd).subtasks},
	"completed":       {"completed tasks of --person", (*ReportCmd).completed},
	"all-completed":   {"completed tasks of everyone", (*ReportCmd).allCompleted},
	"busiest":         {"person with most active tasks, of --type if given", (*ReportCmd).busiest},
	"most-overdue":    {"person with most --type tasks due before --date", (*ReportCmd).mostOverdue},
	"common-types":    {"most common type among active tasks", (*ReportCmd).commonTypes},
	"overdue-types":   {"most common type among tasks due before --date", (*ReportCmd).overdueTypes},
	"importances":     {"most common importance among active tasks", (*ReportCmd).importances},
	"medium-types":    {"most common type among active Medium tasks", (*ReportCmd).mediumTypes},
	"high-done-types": {"most common type among completed High tasks", (*ReportCmd).highDoneTypes},
}

func reportNames() []string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register adds the report command to the application
func (cmd *ReportCmd) Register(app *cli.Command) *cli.Command {
	var desc strings.Builder
	desc.WriteString("Available reports:\n\n")
	for _, name := range reportNames() {
		fmt.Fprintf(&desc, "  %-16s %s\n", name, reports[name].usage)
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:        "report",
		Usage:       "Run a read-only report over the board",
		UsageText:   "taskboard report <name> [--date dd-mm-yyyy] [--type name] [--days n] [--person id] [--task id]",
		Description: desc.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "date",
				Usage:       "reference date, dd-mm-yyyy or relative (today, in 3 days)",
				Value:       "today",
				Destination: &cmd.date,
			},
			&cli.StringFlag{
				Name:        "type",
				Aliases:     []string{"t"},
				Usage:       "task type name",
				Destination: &cmd.typ,
			},
			&cli.IntFlag{
				Name:        "days",
				Usage:       "look-ahead window of due-soon (defaults to due_soon_days from the config)",
				Value:       -1,
				Destination: &cmd.days,
			},
			&cli.IntFlag{
				Name:        "person",
				Aliases:     []string{"p"},
				Usage:       "person id",
				Destination: &cmd.person,
			},
			&cli.IntFlag{
				Name:        "task",
				Usage:       "task id",
				Destination: &cmd.task,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ReportCmd) run(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	def, ok := reports[name]
	if !ok {
		return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownReport, name, strings.Join(reportNames(), ", "))
	}
	return def.run(cmd, c.Root().Writer, report.New(cmd.flags.Tracker))
}

func (cmd *ReportCmd) refDate() (date.Date, error) {
	return date.ParseRelative(cmd.date, cmd.now())
}

func (cmd *ReportCmd) requireType() error {
	if cmd.typ == "" {
		return fmt.Errorf("%w: --type", ErrMissingFlag)
	}
	if _, ok := cmd.flags.Tracker.Types.Find(cmd.typ); !ok {
		return fmt.Errorf("unknown task type %q", cmd.typ)
	}
	return nil
}

func (cmd *ReportCmd) types(w io.Writer, r *report.Reporter) error {
	t := newTable(w, "Type", "Description")
	for _, typ := range r.Types() {
		t.AppendRow(table.Row{typ.Name, typ.Description})
	}
	t.Render()
	return nil
}

func (cmd *ReportCmd) people(w io.Writer, r *report.Reporter) error {
	renderPeople(w, r.People())
	return nil
}

func (cmd *ReportCmd) idle(w io.Writer, r *report.Reporter) error {
	idle := r.Idle()
	if len(idle) == 0 {
		_, _ = fmt.Fprintln(w, "Everyone has active tasks")
		return nil
	}
	renderPeople(w, idle)
	return nil
}

func (cmd *ReportCmd) agenda(w io.Writer, r *report.Reporter) error {
	ts, err := r.Agenda(cmd.person)
	if err != nil {
		return err
	}
	renderTasks(w, ts)
	return nil
}

func (cmd *ReportCmd) dueSoon(w io.Writer, r *report.Reporter) error {
	from, err := cmd.refDate()
	if err != nil {
		return err
	}
	days := cmd.days
	if days < 0 {
		days = cmd.flags.Config.DueSoonDays
	}
	renderAssignments(w, r.DueWithin(from, days))
	return nil
}

func (cmd *ReportCmd) subtasks(w io.Writer, r *report.Reporter) error {
	subs, err := r.Subtasks(cmd.person, cmd.task)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		_, _ = fmt.Fprintln(w, "No subtasks")
		return nil
	}
	t := newTable(w, "#", "Name", "Comments", "Progress", "Done")
	for i, s := range subs {
		done := ""
		if s.Completed() {
			done = "yes"
		}
		t.AppendRow(table.Row{i, s.Name, s.Comments, fmt.Sprintf("%g%%", s.Progress()), done})
	}
	t.Render()
	return nil
}

func (cmd *ReportCmd) completed(w io.Writer, r *report.Reporter) error {
	ts, err := r.Completed(cmd.person)
	if err != nil {
		return err
	}
	renderTasks(w, ts)
	return nil
}

func (cmd *ReportCmd) allCompleted(w io.Writer, r *report.Reporter) error {
	renderAssignments(w, r.AllCompleted())
	return nil
}

func (cmd *ReportCmd) busiest(w io.Writer, r *report.Reporter) error {
	if cmd.typ == "" {
		renderRanked(w, "active tasks", r.Busiest)
		return nil
	}
	if err := cmd.requireType(); err != nil {
		return err
	}
	renderRanked(w, "active "+cmd.typ+" tasks", func() (report.Ranked, bool) {
		return r.BusiestFor(cmd.typ)
	})
	return nil
}

func (cmd *ReportCmd) mostOverdue(w io.Writer, r *report.Reporter) error {
	if err := cmd.requireType(); err != nil {
		return err
	}
	before, err := cmd.refDate()
	if err != nil {
		return err
	}
	renderRanked(w, cmd.typ+" tasks overdue at "+before.String(), func() (report.Ranked, bool) {
		return r.MostOverdue(cmd.typ, before)
	})
	return nil
}

func (cmd *ReportCmd) commonTypes(w io.Writer, r *report.Reporter) error {
	renderTop(w, "active tasks", r.CommonTypes())
	return nil
}

func (cmd *ReportCmd) overdueTypes(w io.Writer, r *report.Reporter) error {
	before, err := cmd.refDate()
	if err != nil {
		return err
	}
	renderTop(w, "tasks overdue at "+before.String(), r.CommonOverdueTypes(before))
	return nil
}

func (cmd *ReportCmd) importances(w io.Writer, r *report.Reporter) error {
	renderTop(w, "active tasks", r.CommonImportances())
	return nil
}

func (cmd *ReportCmd) mediumTypes(w io.Writer, r *report.Reporter) error {
	renderTop(w, "active Medium tasks", r.CommonTypesFor(task.Medium))
	return nil
}

func (cmd *ReportCmd) highDoneTypes(w io.Writer, r *report.Reporter) error {
	renderTop(w, "completed High tasks", r.CommonCompletedTypesFor(task.High))
	return nil
}

func renderAssignments(w io.Writer, as []report.Assignment) {
	t := newTable(w, append([]string{"Person"}, taskHeaders...)...)
	for _, a := range as {
		t.AppendRow(append(table.Row{a.Person.FullName()}, taskRow(a.Task)...))
	}
	t.Render()
}

func renderRanked(w io.Writer, what string, rank func() (report.Ranked, bool)) {
	r, ok := rank()
	if !ok {
		_, _ = fmt.Fprintf(w, "Nobody has %s\n", what)
		return
	}
	_, _ = fmt.Fprintf(w, "Most %s: %s (%d)\n", what, r.Person, r.Count)
}

func renderTop[K comparable](w io.Writer, what string, top report.Top[K]) {
	if top.Empty() {
		_, _ = fmt.Fprintf(w, "No %s\n", what)
		return
	}
	keys := make([]string, len(top.Keys))
	for i, k := range top.Keys {
		keys[i] = fmt.Sprint(k)
	}
	_, _ = fmt.Fprintf(w, "Most common among %s (%d each): %s\n", what, top.Count, strings.Join(keys, ", "))
}
