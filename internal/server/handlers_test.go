package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
)

// --- Mock implementations ---

type mockRegistryService struct {
	listFn       func(ctx context.Context) (map[string]domain.Activity, error)
	signupFn     func(ctx context.Context, activity, email string) (string, error)
	unregisterFn func(ctx context.Context, activity, email string) (string, error)
}

func (m *mockRegistryService) ListActivities(ctx context.Context) (map[string]domain.Activity, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return map[string]domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}, nil
}

func (m *mockRegistryService) Signup(ctx context.Context, activity, email string) (string, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, activity, email)
	}
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

func (m *mockRegistryService) Unregister(ctx context.Context, activity, email string) (string, error) {
	if m.unregisterFn != nil {
		return m.unregisterFn(ctx, activity, email)
	}
	return fmt.Sprintf("Removed %s from %s", email, activity), nil
}

// --- Test helpers ---

func newTestServer(t *testing.T, registry domain.RegistryService, clock clockwork.Clock) *Server {
	t.Helper()

	cfg := &config.Config{
		AppEnv:          "test",
		Port:            "0",
		LogLevel:        "error",
		LogFormat:       "text",
		StaticDir:       t.TempDir(),
		ShutdownTimeout: time.Second,
	}

	return NewServer(cfg, registry, clock)
}
