package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/gate"
	"workable/internal/service"
)

func init() {
	Register(&EmailCmd{})
}

// EmailCmd changes the signed-in account's email. The backend retires the
// old identity and issues a fresh token; the new session overwrites the
// persisted one.
type EmailCmd struct{}

func (c *EmailCmd) Name() string      { return "email" }
func (c *EmailCmd) Aliases() []string { return nil }
func (c *EmailCmd) Synopsis() string  { return "Change the account email" }
func (c *EmailCmd) Usage() string     { return "workable email <new-email>" }
func (c *EmailCmd) NeedsAuth() bool   { return true }

func (c *EmailCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EmailCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: new email required")
		return exitcode.UserError
	}
	newEmail := args[0]

	if err := gate.ValidateEmail(newEmail); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	available, err := svc.CheckEmail(ctx, newEmail)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if !available {
		fmt.Fprintf(errOut, "error: email already in use: %s\n", newEmail)
		return exitcode.UserError
	}

	sess, err := svc.UpdateEmail(ctx, ac.State().Token, newEmail)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	ac.Adopt(sess)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
