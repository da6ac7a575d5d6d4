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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command. The email is validated locally
// before any network call; a login rejected by the backend silently
// registers the same email, matching the backend's demo auth flow.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Sign in (or register) with an email" }
func (c *LoginCmd) Usage() string     { return "workable login <email>" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	email := args[0]

	if ac.State().IsAuthenticated {
		if !cfg.Quiet {
			fmt.Fprintln(out, "already logged in")
		}
		return exitcode.Success
	}

	if err := gate.ValidateEmail(email); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	dialog := gate.NewLoginDialog(ac)
	dialog.SetEmail(email)
	if !dialog.Submit(ctx) {
		fmt.Fprintf(errOut, "error: %s\n", dialog.Err())
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
