package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
)

// newRouter builds the full router with empty mocks. Requests carry empty
// bodies, so registered routes respond 400 (invalid JSON) while unregistered
// method/path combinations respond 404.
func newRouter(t *testing.T) http.Handler {
	t.Helper()
	h := NewHandler(&service.Services{
		AuthService:    &mockAuthService{},
		ProjectService: &mockProjectService{},
		TaskService:    &mockTaskService{},
	}, logger.Nop())
	return h.Init()
}

// TestRoutes_Registered verifies every route of the wire contract is wired
// under the expected method and path.
func TestRoutes_Registered(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/user/register"},
		{http.MethodPost, "/user/authorise"},
		{http.MethodPut, "/project/new-project"},
		{http.MethodPost, "/project/rename-project"},
		{http.MethodPost, "/project/delete-project"},
		{http.MethodPost, "/project/fetch-user-projects"},
		{http.MethodPost, "/project/invite"},
		{http.MethodPut, "/project/task/new"},
		{http.MethodPost, "/project/task/update"},
		{http.MethodPost, "/project/task/delete"},
		{http.MethodPost, "/project/task/fetch-all"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			// An empty body fails JSON decoding inside the handler, which
			// proves the route reached the handler instead of 404.
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestRoutes_WrongMethod verifies that a known path with the wrong method
// responds 404, not 405.
func TestRoutes_WrongMethod(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user/register"},
		{http.MethodPost, "/project/new-project"},
		{http.MethodPut, "/project/rename-project"},
		{http.MethodDelete, "/project/task/delete"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

// TestRoutes_UnknownPath verifies that an unknown path responds 404.
func TestRoutes_UnknownPath(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/no/such/route", strings.NewReader(""))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
