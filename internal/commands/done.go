package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/service"
	"workable/internal/tasks"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles completion, so running
// it on an already-completed task reopens it.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string     { return "workable done <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	ctrl := tasks.New(svc, func() string { return ac.State().Token })
	if !ctrl.ToggleCompletion(ctx, args[0]) {
		fmt.Fprintf(errOut, "error: %s\n", ctrl.Err())
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
