package testutil

import (
	"testing"

	"workable/internal/config"
	"workable/internal/service"
	"workable/internal/session"
)

// SeedSession persists sess into the config dir so a freshly hydrated
// controller starts authenticated.
func SeedSession(t *testing.T, cfg *config.Config, sess service.Session) {
	t.Helper()
	if err := session.NewStore(cfg).Save(sess); err != nil {
		t.Fatalf("failed to seed session: %v", err)
	}
}
