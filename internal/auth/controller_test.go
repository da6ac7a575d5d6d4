package auth_test

import (
	"context"
	"errors"
	"testing"

	"workable/internal/auth"
	"workable/internal/config"
	"workable/internal/session"
	"workable/internal/testutil"
)

func newController(t *testing.T, fake *testutil.FakeService) (*auth.Controller, *session.Store) {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir()}
	store := session.NewStore(cfg)
	return auth.New(fake, store), store
}

func TestController_StartsHydrating(t *testing.T) {
	ac, _ := newController(t, testutil.NewFakeService())

	st := ac.State()
	if !st.IsLoading {
		t.Error("expected IsLoading before Initialize")
	}
	if st.IsAuthenticated {
		t.Error("expected unauthenticated before Initialize")
	}
}

func TestController_InitializeWithoutSession(t *testing.T) {
	ac, _ := newController(t, testutil.NewFakeService())

	ac.Initialize()

	st := ac.State()
	if st.IsLoading {
		t.Error("expected loading to end after Initialize")
	}
	if st.IsAuthenticated {
		t.Error("expected unauthenticated with empty store")
	}
	if st.Identity != nil {
		t.Errorf("expected nil identity, got %+v", st.Identity)
	}
}

func TestController_InitializeAdoptsPersistedSession(t *testing.T) {
	fake := testutil.NewFakeService()
	ac, store := newController(t, fake)
	sess := fake.SeedUser("a@b.co")
	if err := store.Save(sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ac.Initialize()

	st := ac.State()
	if !st.IsAuthenticated {
		t.Fatal("expected authenticated after hydration")
	}
	if st.Token != sess.Token {
		t.Errorf("expected token %q, got %q", sess.Token, st.Token)
	}
	if st.Identity.Email != "a@b.co" {
		t.Errorf("expected email a@b.co, got %q", st.Identity.Email)
	}
	// Hydration reads the store; it never talks to the backend.
	if len(fake.Calls) != 0 {
		t.Errorf("expected no backend calls, got %v", fake.Calls)
	}
}

func TestController_LoginKnownUser(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.SeedUser("a@b.co")
	ac, store := newController(t, fake)
	ac.Initialize()

	if !ac.Login(context.Background(), "a@b.co") {
		t.Fatal("expected login to succeed")
	}

	st := ac.State()
	if !st.IsAuthenticated {
		t.Fatal("expected authenticated after login")
	}
	persisted, ok := store.Load()
	if !ok {
		t.Fatal("expected session to be persisted")
	}
	if persisted.Token != st.Token {
		t.Errorf("persisted token %q does not match state %q", persisted.Token, st.Token)
	}
	if fake.CallCount("Register") != 0 {
		t.Errorf("expected no Register call, got %v", fake.Calls)
	}
}

func TestController_LoginUnknownUserFallsBackToRegister(t *testing.T) {
	fake := testutil.NewFakeService()
	ac, _ := newController(t, fake)
	ac.Initialize()

	if !ac.Login(context.Background(), "new@b.co") {
		t.Fatal("expected login to succeed via registration")
	}

	if got := fake.CallCount("Login"); got != 1 {
		t.Errorf("expected 1 Login call, got %d", got)
	}
	if got := fake.CallCount("Register"); got != 1 {
		t.Errorf("expected 1 Register call, got %d", got)
	}
	st := ac.State()
	if !st.IsAuthenticated || st.Identity.Email != "new@b.co" {
		t.Errorf("expected session for new@b.co, got %+v", st)
	}
}

func TestController_LoginTransportErrorNoFallback(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.LoginErr = errors.New("connection refused")
	ac, store := newController(t, fake)
	ac.Initialize()

	if ac.Login(context.Background(), "a@b.co") {
		t.Fatal("expected login to fail on transport error")
	}

	// Only a non-OK status means "unknown user"; a transport failure
	// must not trigger registration.
	if got := fake.CallCount("Register"); got != 0 {
		t.Errorf("expected no Register call, got %d", got)
	}
	if ac.State().IsAuthenticated {
		t.Error("expected state untouched after failed login")
	}
	if _, ok := store.Load(); ok {
		t.Error("expected nothing persisted after failed login")
	}
}

func TestController_RegisterFailureLeavesState(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.RegisterErr = errors.New("connection refused")
	ac, _ := newController(t, fake)
	ac.Initialize()

	if ac.Register(context.Background(), "a@b.co") {
		t.Fatal("expected register to fail")
	}
	if ac.State().IsAuthenticated {
		t.Error("expected state untouched after failed register")
	}
}

func TestController_RepeatLoginReplacesToken(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.SeedUser("a@b.co")
	ac, store := newController(t, fake)
	ac.Initialize()

	ac.Login(context.Background(), "a@b.co")
	first := ac.State().Token
	ac.Login(context.Background(), "a@b.co")
	second := ac.State().Token

	if first == second {
		t.Errorf("expected a fresh token on repeat login, got %q twice", first)
	}
	persisted, ok := store.Load()
	if !ok || persisted.Token != second {
		t.Errorf("expected persisted token %q, got %q (ok=%v)", second, persisted.Token, ok)
	}
}

func TestController_Logout(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.SeedUser("a@b.co")
	ac, store := newController(t, fake)
	ac.Initialize()
	ac.Login(context.Background(), "a@b.co")

	before := len(fake.Calls)
	ac.Logout()

	st := ac.State()
	if st.IsAuthenticated || st.Token != "" || st.Identity != nil {
		t.Errorf("expected cleared state, got %+v", st)
	}
	if _, ok := store.Load(); ok {
		t.Error("expected persisted session to be cleared")
	}
	// Logout is local only.
	if len(fake.Calls) != before {
		t.Errorf("expected no backend calls during logout, got %v", fake.Calls[before:])
	}
}

func TestController_CheckAuth(t *testing.T) {
	fake := testutil.NewFakeService()
	ac, store := newController(t, fake)
	ac.Initialize()

	if ac.CheckAuth() {
		t.Error("expected CheckAuth false with empty store")
	}

	sess := fake.SeedUser("a@b.co")
	if err := store.Save(sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !ac.CheckAuth() {
		t.Error("expected CheckAuth true after session appears")
	}
	if !ac.State().IsAuthenticated {
		t.Error("expected state adopted by CheckAuth")
	}
}

func TestController_SubscribeNotifiesOnChange(t *testing.T) {
	fake := testutil.NewFakeService()
	fake.SeedUser("a@b.co")
	ac, _ := newController(t, fake)

	var seen []auth.State
	cancel := ac.Subscribe(func(st auth.State) {
		seen = append(seen, st)
	})

	ac.Initialize()
	ac.Login(context.Background(), "a@b.co")
	ac.Logout()

	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}
	if seen[0].IsAuthenticated || seen[0].IsLoading {
		t.Errorf("expected anonymous state first, got %+v", seen[0])
	}
	if !seen[1].IsAuthenticated {
		t.Errorf("expected authenticated state second, got %+v", seen[1])
	}
	if seen[2].IsAuthenticated {
		t.Errorf("expected cleared state last, got %+v", seen[2])
	}

	cancel()
	ac.Login(context.Background(), "a@b.co")
	if len(seen) != 3 {
		t.Errorf("expected no notifications after cancel, got %d", len(seen))
	}
}
