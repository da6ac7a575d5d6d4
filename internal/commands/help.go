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
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "workable help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  workable                                           List tasks
  workable tasks [common flags] [--status all|active|completed] [--hide <priorities>]
  workable add [common flags] [--priority low|medium|high] <title...>
  workable done [common flags] <id>
  workable edit [common flags] [--priority low|medium|high] <id> <title...>
  workable rm [common flags] <id>
  workable login [common flags] <email>
  workable logout [common flags]
  workable whoami [common flags]
  workable email [common flags] <new-email>
  workable weather [common flags] <city> | --lat <lat> --lng <lng>
  workable news [common flags] [--page <n>] [--size <n>] [category]
  workable help
  workable version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
