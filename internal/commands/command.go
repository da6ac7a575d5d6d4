// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a signed-in session.
	// The dispatcher gates such commands behind the auth state; Run is
	// only reached when authenticated.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, API settings).
	// svc is the backend service; ac is the hydrated auth controller.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int
}
