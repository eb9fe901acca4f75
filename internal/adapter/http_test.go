package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ─────────────────────────────────────────────
// Construction
// ─────────────────────────────────────────────

// TestNewHTTPServerAdapter_NormalisesAddress verifies scheme-less addresses
// are accepted and empty ones rejected.
func TestNewHTTPServerAdapter_NormalisesAddress(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"full url", "http://localhost:8080", false},
		{"host and port only", "localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: tt.baseURL}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ─────────────────────────────────────────────
// Authentication round trips
// ─────────────────────────────────────────────

// TestAdapterLogin verifies the issued token is stored for subsequent
// requests.
func TestAdapterLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/authorise", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds.Username)

		writeJSON(t, w, http.StatusOK, models.Envelope{
			Status:      http.StatusOK,
			Message:     "OK",
			AccessToken: "issued.token",
		})
	})

	a := newTestAdapter(t, mux)
	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})

	require.NoError(t, err)
	assert.Equal(t, "issued.token", a.Token())
}

// TestAdapterLogin_WrongPassword verifies a 401 maps to ErrUnauthorized with
// the server's message attached.
func TestAdapterLogin_WrongPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/authorise", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.Envelope{
			Status:  http.StatusUnauthorized,
			Message: "invalid username/password",
		})
	})

	a := newTestAdapter(t, mux)
	err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "invalid username/password")
	assert.Empty(t, a.Token())
}

// TestAdapterRegister verifies the created username is returned without
// authenticating.
func TestAdapterRegister(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/register", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.RegisterResponse{
			Envelope: models.Envelope{Status: http.StatusOK, Message: "OK"},
			Username: "alice",
		})
	})

	a := newTestAdapter(t, mux)
	username, err := a.Register(context.Background(), models.Credentials{Username: "alice", Password: "Sturdy-pass-1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Empty(t, a.Token())
}

// ─────────────────────────────────────────────
// Token embedding and renewal
// ─────────────────────────────────────────────

// TestAdapterEmbedsTokenInBody verifies authenticated requests carry the
// current token in the JSON body, not in a header.
func TestAdapterEmbedsTokenInBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/fetch-user-projects", func(w http.ResponseWriter, r *http.Request) {
		var req models.FetchProjectsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "current.token", req.Token())
		require.Empty(t, r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, models.ProjectsResponse{
			Envelope: models.Envelope{Status: http.StatusOK, Message: "OK", AccessToken: "current.token"},
			Projects: map[string]models.Project{},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("current.token")

	_, err := a.FetchProjects(context.Background())
	assert.NoError(t, err)
}

// TestAdapterAdoptsRenewedToken verifies the token echoed in a response
// envelope replaces the stored one.
func TestAdapterAdoptsRenewedToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/new-project", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ProjectResponse{
			Envelope:    models.Envelope{Status: http.StatusOK, Message: "OK", AccessToken: "renewed.token"},
			ProjectData: models.Project{UUID: "p-uuid", Name: "launch plan", Admin: "alice"},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("stale.token")

	project, err := a.NewProject(context.Background(), "launch plan")

	require.NoError(t, err)
	assert.Equal(t, "launch plan", project.Name)
	assert.Equal(t, "renewed.token", a.Token())
}

// ─────────────────────────────────────────────
// Task operations
// ─────────────────────────────────────────────

// TestAdapterNewTask verifies the draft is sent and the server-assigned
// record returned.
func TestAdapterNewTask(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/task/new", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)

		var req models.NewTaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "p-uuid", req.ProjectUUID)
		require.Equal(t, "design review", req.TaskData.Name)

		writeJSON(t, w, http.StatusOK, models.TaskResponse{
			Envelope: models.Envelope{Status: http.StatusOK, Message: "OK", AccessToken: "t"},
			TaskData: models.Task{
				ID:          "t-uuid:p-uuid",
				TaskUUID:    "t-uuid",
				ProjectUUID: "p-uuid",
				Name:        req.TaskData.Name,
				Row:         4,
			},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("t")

	task, err := a.NewTask(context.Background(), "p-uuid", models.TaskDraft{
		Type:      models.TaskTypeTask,
		Name:      "design review",
		StartDate: 1_700_000_000,
		EndDate:   1_700_259_200,
		Colour:    "#e07a5f",
	})

	require.NoError(t, err)
	assert.Equal(t, "t-uuid", task.TaskUUID)
	assert.Equal(t, 4, task.Row)
}

// TestAdapterFetchTasks verifies the returned map is keyed by task uuid.
func TestAdapterFetchTasks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/task/fetch-all", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TasksResponse{
			Envelope: models.Envelope{Status: http.StatusOK, Message: "OK", AccessToken: "t"},
			Tasks: map[string]models.Task{
				"t-uuid": {TaskUUID: "t-uuid", Name: "design review"},
			},
		})
	})

	a := newTestAdapter(t, mux)
	a.SetToken("t")

	tasks, err := a.FetchTasks(context.Background(), "p-uuid")

	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "design review", tasks["t-uuid"].Name)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

// TestAdapterErrorMapping verifies each API status maps to its sentinel.
func TestAdapterErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrNoAccess},
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrAlreadyExists},
		{"gone", http.StatusGone, ErrAccessExpired},
		{"internal error", http.StatusInternalServerError, ErrServerFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/project/delete-project", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, tt.status, models.Envelope{Status: tt.status, Message: "nope"})
			})

			a := newTestAdapter(t, mux)
			a.SetToken("t")

			err := a.DeleteProject(context.Background(), "p-uuid")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// TestAdapterErrorMessageFallback verifies a non-JSON error body still
// produces a readable message.
func TestAdapterErrorMessageFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/project/delete-project", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gateway exploded", http.StatusInternalServerError)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("t")

	err := a.DeleteProject(context.Background(), "p-uuid")
	assert.ErrorIs(t, err, ErrServerFailure)
	assert.ErrorContains(t, err, "gateway exploded")
}

// TestAdapterTransportFailure verifies an unreachable server yields a plain
// transport error carrying none of the API sentinels.
func TestAdapterTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	_, err = a.FetchProjects(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrServerFailure)
	assert.NotErrorIs(t, err, ErrNotFound)
}
