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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
}

// SetPriority sets the priority flag (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "workable add [--priority low|medium|high] <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "medium", "")
	fs.StringVar(&c.priority, "p", "medium", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	priority, ok := service.ParsePriority(c.priority)
	if !ok {
		fmt.Fprintf(errOut, "error: invalid priority: %s\n", c.priority)
		return exitcode.UserError
	}

	ctrl := tasks.New(svc, func() string { return ac.State().Token })
	if _, ok := ctrl.Create(ctx, title, priority); !ok {
		fmt.Fprintf(errOut, "error: %s\n", ctrl.Err())
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
