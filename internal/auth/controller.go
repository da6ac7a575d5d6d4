// Package auth owns the session/authentication lifecycle: hydration from
// the persisted session, login with silent registration fallback, logout,
// and change notification for views that key off auth state.
package auth

import (
	"context"
	"errors"
	"sync"

	"workable/internal/service"
	"workable/internal/session"
)

// placeholderPassword is the fixed credential sent with every login and
// registration call. The backend treats email as the whole identity; the
// password field only exists to satisfy its request shape.
const placeholderPassword = "password123"

// State is a snapshot of authentication state.
// IsLoading is true only during the initial hydration window.
type State struct {
	Identity        *service.Identity
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Controller orchestrates login and registration against the backend and
// exposes auth state to the rest of the program. Construct with New, then
// call Initialize exactly once before reading state.
type Controller struct {
	svc   service.Service
	store *session.Store

	mu      sync.Mutex
	state   State
	subs    map[int]func(State)
	nextSub int
}

// New creates a Controller in the hydrating state.
func New(svc service.Service, store *session.Store) *Controller {
	return &Controller{
		svc:   svc,
		store: store,
		state: State{IsLoading: true},
		subs:  make(map[int]func(State)),
	}
}

// Initialize hydrates state from the persisted session and ends the
// loading window. This is the only transition out of IsLoading.
func (c *Controller) Initialize() {
	c.mu.Lock()
	sess, ok := c.store.Load()
	if ok {
		c.adoptLocked(sess)
	} else {
		c.state = State{}
	}
	st := c.state
	c.mu.Unlock()
	c.notify(st)
}

// State returns the current auth state snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called after every state change. The
// returned func cancels the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Login authenticates email against the backend. A non-OK response is
// interpreted as "unknown user" and falls back to Register with the same
// email. Transport or decode failures return false without touching state.
// Validation of the email's shape is the caller's responsibility.
func (c *Controller) Login(ctx context.Context, email string) bool {
	sess, err := c.svc.Login(ctx, email, placeholderPassword)
	if err != nil {
		var statusErr *service.StatusError
		if errors.As(err, &statusErr) {
			return c.Register(ctx, email)
		}
		return false
	}
	c.adopt(sess)
	return true
}

// Register provisions a new account. On success the returned session is
// adopted; on any failure state is left untouched.
func (c *Controller) Register(ctx context.Context, email string) bool {
	sess, err := c.svc.Register(ctx, email, placeholderPassword)
	if err != nil {
		return false
	}
	c.adopt(sess)
	return true
}

// Adopt replaces the current session with sess, persisting it. Used when
// the backend hands back a fresh session outside of login, e.g. after an
// email change retires the old identity.
func (c *Controller) Adopt(sess service.Session) {
	c.adopt(sess)
}

// Logout clears the persisted session and resets to unauthenticated.
// No remote call is made.
func (c *Controller) Logout() {
	c.mu.Lock()
	c.store.Clear()
	c.state = State{}
	st := c.state
	c.mu.Unlock()
	c.notify(st)
}

// CheckAuth re-runs the load-and-adopt logic and reports whether a valid
// session now exists.
func (c *Controller) CheckAuth() bool {
	c.mu.Lock()
	sess, ok := c.store.Load()
	if ok {
		c.adoptLocked(sess)
	} else {
		c.state = State{}
	}
	st := c.state
	c.mu.Unlock()
	c.notify(st)
	return ok
}

func (c *Controller) adopt(sess service.Session) {
	c.mu.Lock()
	c.store.Save(sess)
	c.adoptLocked(sess)
	st := c.state
	c.mu.Unlock()
	c.notify(st)
}

func (c *Controller) adoptLocked(sess service.Session) {
	identity := sess.Identity
	c.state = State{
		Identity:        &identity,
		Token:           sess.Token,
		IsAuthenticated: true,
	}
}

func (c *Controller) notify(st State) {
	c.mu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(st)
	}
}
