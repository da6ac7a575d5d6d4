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
	"workable/internal/service"
	"workable/internal/tasks"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: a full replace of title and
// priority. When --priority is omitted the task's current priority is
// kept.
type EditCmd struct {
	priority string
}

// SetPriority sets the priority flag (for testing).
func (c *EditCmd) SetPriority(p string) {
	c.priority = p
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task's title and priority" }
func (c *EditCmd) Usage() string     { return "workable edit [--priority low|medium|high] <id> <title...>" }
func (c *EditCmd) NeedsAuth() bool   { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: task id and title required")
		return exitcode.UserError
	}
	id := args[0]
	title := strings.Join(args[1:], " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: task id and title required")
		return exitcode.UserError
	}

	ctrl := tasks.New(svc, func() string { return ac.State().Token })
	if !ctrl.FetchAll(ctx) {
		fmt.Fprintf(errOut, "error: %s\n", ctrl.Err())
		return exitcode.BackendError
	}

	priority, found := currentPriority(ctrl.Tasks(), id)
	if c.priority != "" {
		var ok bool
		priority, ok = service.ParsePriority(c.priority)
		if !ok {
			fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
			return exitcode.UserError
		}
	} else if !found {
		priority = service.PriorityMedium
	}

	if !ctrl.Update(ctx, id, title, priority) {
		fmt.Fprintf(errOut, "error: %s\n", ctrl.Err())
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func currentPriority(cache []service.Task, id string) (service.Priority, bool) {
	for _, t := range cache {
		if t.ID == id {
			return t.Priority, true
		}
	}
	return service.PriorityMedium, false
}
