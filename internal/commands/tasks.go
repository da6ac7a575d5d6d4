package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/output"
	"workable/internal/service"
	"workable/internal/tasks"
)

func init() {
	Register(&TasksCmd{})
}

// TasksCmd implements the tasks command.
// Handles both `workable` (no args) and `workable tasks`.
type TasksCmd struct {
	status string
	hide   string
}

// SetStatus sets the status filter (for testing).
func (c *TasksCmd) SetStatus(status string) {
	c.status = status
}

// SetHide sets the hidden-priority list (for testing).
func (c *TasksCmd) SetHide(hide string) {
	c.hide = hide
}

func (c *TasksCmd) Name() string      { return "tasks" }
func (c *TasksCmd) Aliases() []string { return []string{"list"} }
func (c *TasksCmd) Synopsis() string  { return "List tasks" }
func (c *TasksCmd) Usage() string {
	return "workable tasks [--status all|active|completed] [--hide <priorities>]"
}
func (c *TasksCmd) NeedsAuth() bool { return true }

func (c *TasksCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.status, "status", "all", "")
	fs.StringVar(&c.hide, "hide", "", "")
}

func (c *TasksCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	ctrl := tasks.New(svc, func() string { return ac.State().Token })

	statusFilter, ok := tasks.ParseStatusFilter(c.status)
	if !ok {
		fmt.Fprintf(errOut, "error: invalid status filter: %s\n", c.status)
		return exitcode.UserError
	}
	ctrl.SetStatusFilter(statusFilter)

	if c.hide != "" {
		for _, name := range strings.Split(c.hide, ",") {
			priority, ok := service.ParsePriority(strings.TrimSpace(name))
			if !ok {
				fmt.Fprintf(errOut, "error: invalid priority: %s\n", name)
				return exitcode.UserError
			}
			ctrl.SetPriorityIncluded(priority, false)
		}
	}

	if !ctrl.FetchAll(ctx) {
		fmt.Fprintf(errOut, "error: %s\n", ctrl.Err())
		return exitcode.BackendError
	}

	visible := ctrl.Visible()
	if len(visible) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for _, task := range visible {
		output.FormatTask(out, task)
	}
	return exitcode.Success
}
