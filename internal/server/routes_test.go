package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/domain"
	apperrors "github.com/mergington/activities/internal/errors"
	"github.com/mergington/activities/internal/registry"
)

// newSeededServer wires the real store and service behind the router, the way
// main does, so requests exercise routing, middleware, and handlers together.
func newSeededServer(t *testing.T) *Server {
	t.Helper()

	staticDir := t.TempDir()
	index := filepath.Join(staticDir, "index.html")
	require.NoError(t, os.WriteFile(index, []byte("<!DOCTYPE html><title>Mergington High School</title>"), 0o600))

	cfg := &config.Config{
		AppEnv:          "test",
		Port:            "0",
		LogLevel:        "error",
		LogFormat:       "text",
		StaticDir:       staticDir,
		ShutdownTimeout: time.Second,
	}

	store := registry.NewMemoryStore(registry.SeedActivities())
	svc := app.NewService(store)

	return NewServer(cfg, svc, clockwork.NewFakeClock())
}

func do(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func listActivities(t *testing.T, srv *Server) map[string]domain.Activity {
	t.Helper()

	rec := do(srv, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rec.Code)

	var activities map[string]domain.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	return activities
}

func TestListIncludesAllSeededActivities(t *testing.T) {
	srv := newSeededServer(t)

	activities := listActivities(t, srv)
	assert.Len(t, activities, 7)

	for name, a := range activities {
		assert.NotEmpty(t, a.Description, "%s description", name)
		assert.NotEmpty(t, a.Schedule, "%s schedule", name)
		assert.Positive(t, a.MaxParticipants, "%s max_participants", name)
		assert.NotNil(t, a.Participants, "%s participants", name)
	}
	assert.Contains(t, activities, "Basketball")
	assert.Contains(t, activities, "Tennis Club")
}

func TestSignupIncreasesParticipantsByOne(t *testing.T) {
	srv := newSeededServer(t)
	before := len(listActivities(t, srv)["Basketball"].Participants)

	rec := do(srv, http.MethodPost, "/activities/Basketball/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Signed up")

	after := listActivities(t, srv)["Basketball"].Participants
	assert.Len(t, after, before+1)
	assert.Contains(t, after, "newstudent@mergington.edu")
}

func TestSignupDuplicateLeavesListUnchanged(t *testing.T) {
	srv := newSeededServer(t)
	before := listActivities(t, srv)["Basketball"].Participants

	// james@mergington.edu is pre-enrolled in Basketball.
	rec := do(srv, http.MethodPost, "/activities/Basketball/signup?email=james@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "already signed up")

	assert.Equal(t, before, listActivities(t, srv)["Basketball"].Participants)
}

func TestSignupUnknownActivity(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/FakeActivity/signup?email=student@mergington.edu")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Activity not found")
}

func TestSignupMissingEmail(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/Basketball/signup")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "email is required")
}

func TestSignupActivityNameWithSpaces(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/Tennis%20Club/signup?email=versatile@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, listActivities(t, srv)["Tennis Club"].Participants, "versatile@mergington.edu")
}

func TestStudentCanJoinMultipleActivities(t *testing.T) {
	srv := newSeededServer(t)

	rec1 := do(srv, http.MethodPost, "/activities/Basketball/signup?email=versatile@mergington.edu")
	rec2 := do(srv, http.MethodPost, "/activities/Tennis%20Club/signup?email=versatile@mergington.edu")
	require.Equal(t, http.StatusOK, rec1.Code)
	require.Equal(t, http.StatusOK, rec2.Code)

	activities := listActivities(t, srv)
	assert.Contains(t, activities["Basketball"].Participants, "versatile@mergington.edu")
	assert.Contains(t, activities["Tennis Club"].Participants, "versatile@mergington.edu")
}

func TestUnregisterDecreasesParticipantsByOne(t *testing.T) {
	srv := newSeededServer(t)
	before := len(listActivities(t, srv)["Basketball"].Participants)

	rec := do(srv, http.MethodPost, "/activities/Basketball/unregister?email=james@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "Removed")

	after := listActivities(t, srv)["Basketball"].Participants
	assert.Len(t, after, before-1)
	assert.NotContains(t, after, "james@mergington.edu")
}

func TestUnregisterNotRegistered(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/Basketball/unregister?email=notregistered@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "not registered")
}

func TestUnregisterUnknownActivity(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/FakeActivity/unregister?email=student@mergington.edu")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignupThenUnregister(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodPost, "/activities/Basketball/signup?email=temp@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, listActivities(t, srv)["Basketball"].Participants, "temp@mergington.edu")

	rec = do(srv, http.MethodPost, "/activities/Basketball/unregister?email=temp@mergington.edu")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, listActivities(t, srv)["Basketball"].Participants, "temp@mergington.edu")
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/static/index.html", rec.Header().Get("Location"))
}

func TestStaticServesIndex(t *testing.T) {
	srv := newSeededServer(t)

	rec := do(srv, http.MethodGet, "/static/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mergington High School")
}
