package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/golang-jwt/jwt/v5"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/exitcode"
	"workable/internal/service"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd prints the signed-in identity. When the stored token parses
// as a JWT its registered claims are shown as well; the token is decoded
// for display only, never verified, and its expiry never changes auth
// state.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Print the signed-in identity" }
func (c *WhoamiCmd) Usage() string     { return "workable whoami" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, ac *auth.Controller, args []string, out, errOut io.Writer) int {
	st := ac.State()
	if st.Identity == nil {
		fmt.Fprintln(errOut, "error: no identity in session")
		return exitcode.AuthError
	}

	fmt.Fprintf(out, "email: %s\n", st.Identity.Email)
	fmt.Fprintf(out, "id:    %s\n", st.Identity.ID)
	if st.Identity.Name != "" {
		fmt.Fprintf(out, "name:  %s\n", st.Identity.Name)
	}

	printTokenClaims(out, st.Token)
	return exitcode.Success
}

func printTokenClaims(out io.Writer, token string) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return
	}
	if sub, err := parsed.Claims.GetSubject(); err == nil && sub != "" {
		fmt.Fprintf(out, "token subject: %s\n", sub)
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Fprintf(out, "token expires: %s\n", exp.UTC().Format("2006-01-02 15:04:05 MST"))
	}
}
