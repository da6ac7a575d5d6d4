// Package gate guards protected content on authentication state and owns
// the sign-in dialog that collects an email and drives login.
package gate

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"workable/internal/auth"
)

// emailShape requires a local part, an @, a domain, and a dot after the
// @ portion, with no whitespace anywhere.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks an email's syntactic shape. Returns a user-facing
// message when the address is rejected; no network call is ever involved.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email address required")
	}
	if !emailShape.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// Gate renders protected content only when authenticated. While the
// controller is hydrating it renders a waiting line and nothing else; once
// loaded, an unauthenticated state renders a sign-in prompt instead of the
// content. The prompt is printed at most once per Gate.
type Gate struct {
	ctrl     *auth.Controller
	prompted bool
}

// New creates a Gate over the controller.
func New(ctrl *auth.Controller) *Gate {
	return &Gate{ctrl: ctrl}
}

// Render evaluates auth state and either runs content or writes the
// appropriate placeholder to w. Returns true only when content ran.
func (g *Gate) Render(w io.Writer, content func()) bool {
	st := g.ctrl.State()
	if st.IsLoading {
		fmt.Fprintln(w, "loading session...")
		return false
	}
	if !st.IsAuthenticated {
		if !g.prompted {
			fmt.Fprintln(w, "error: not logged in (run: workable login <email>)")
			g.prompted = true
		}
		return false
	}
	content()
	return true
}

// LoginDialog collects an email and delegates to the auth controller.
// It validates locally before any network call, keeps the field populated
// for retry on failure, and refuses concurrent submissions. The dialog
// dismisses itself whenever authentication succeeds, including out of
// band, and is never auto-shown again.
type LoginDialog struct {
	ctrl *auth.Controller

	email    string
	errMsg   string
	open     bool
	inFlight bool
}

// NewLoginDialog creates an open dialog subscribed to auth changes.
func NewLoginDialog(ctrl *auth.Controller) *LoginDialog {
	d := &LoginDialog{ctrl: ctrl, open: true}
	ctrl.Subscribe(func(st auth.State) {
		if st.IsAuthenticated {
			d.open = false
		}
	})
	return d
}

// SetEmail sets the dialog's field state.
func (d *LoginDialog) SetEmail(email string) {
	d.email = email
}

// Email returns the current field state.
func (d *LoginDialog) Email() string { return d.email }

// Err returns the dialog's current validation or submission message.
func (d *LoginDialog) Err() string { return d.errMsg }

// Open reports whether the dialog is showing.
func (d *LoginDialog) Open() bool { return d.open }

// Submit validates the field and attempts login. On success it closes and
// clears its own state; on failure it records a message and leaves the
// field populated. Returns false without side effects while a prior
// submission is in flight.
func (d *LoginDialog) Submit(ctx context.Context) bool {
	if d.inFlight {
		return false
	}
	if err := ValidateEmail(d.email); err != nil {
		d.errMsg = err.Error()
		return false
	}

	d.inFlight = true
	ok := d.ctrl.Login(ctx, d.email)
	d.inFlight = false

	if !ok {
		d.errMsg = "failed to authenticate, try again"
		return false
	}
	d.email = ""
	d.errMsg = ""
	d.open = false
	return true
}
