package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/internal/store"
	"github.com/jasonyi-dev/ganttrack/models"
)

// ─────────────────────────────────────────────
// Mock TaskService
// ─────────────────────────────────────────────

type mockTaskService struct {
	createFn         func(ctx context.Context, requester, projectUUID string, draft models.TaskDraft) (models.Task, error)
	updateFn         func(ctx context.Context, requester, projectUUID string, task models.Task) (models.Task, error)
	deleteFn         func(ctx context.Context, requester, projectUUID, taskUUID string) error
	listForProjectFn func(ctx context.Context, requester, projectUUID string) (map[string]models.Task, error)
}

func (m *mockTaskService) Create(ctx context.Context, requester, projectUUID string, draft models.TaskDraft) (models.Task, error) {
	return m.createFn(ctx, requester, projectUUID, draft)
}

func (m *mockTaskService) Update(ctx context.Context, requester, projectUUID string, task models.Task) (models.Task, error) {
	return m.updateFn(ctx, requester, projectUUID, task)
}

func (m *mockTaskService) Delete(ctx context.Context, requester, projectUUID, taskUUID string) error {
	return m.deleteFn(ctx, requester, projectUUID, taskUUID)
}

func (m *mockTaskService) ListForProject(ctx context.Context, requester, projectUUID string) (map[string]models.Task, error) {
	return m.listForProjectFn(ctx, requester, projectUUID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newHandlerWithTasks(t *testing.T, tasks service.TaskService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: acceptingAuth(),
		TaskService: tasks,
	}
	return NewHandler(svcs, logger.Nop())
}

var testTask = models.Task{
	ID:          "aaaa:bbbb",
	TaskUUID:    "aaaa",
	ProjectUUID: "bbbb",
	Type:        models.TaskTypeTask,
	Row:         0,
	Name:        "design review",
	StartDate:   1_700_000_000,
	EndDate:     1_700_259_200,
	Colour:      "#e07a5f",
}

// ─────────────────────────────────────────────
// newTask
// ─────────────────────────────────────────────

// TestNewTask_Success verifies the created task and the echoed token in the
// response body.
func TestNewTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		createFn: func(_ context.Context, requester, projectUUID string, draft models.TaskDraft) (models.Task, error) {
			require.Equal(t, testUsername, requester)
			require.Equal(t, "bbbb", projectUUID)
			require.Equal(t, "design review", draft.Name)
			return testTask, nil
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.NewTaskRequest{
		Auth:        models.Auth{AccessToken: testToken},
		ProjectUUID: "bbbb",
		TaskData:    models.TaskDraft{Type: models.TaskTypeTask, Name: "design review"},
	})
	req := httptest.NewRequest(http.MethodPut, "/project/task/new", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.newTask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "aaaa", resp.TaskData.TaskUUID)
	assert.Equal(t, echoedToken, resp.AccessToken)
}

// TestNewTask_MissingToken verifies that a request without an access token
// results in 400 Bad Request.
func TestNewTask_MissingToken(t *testing.T) {
	h := newHandlerWithTasks(t, &mockTaskService{})

	body := jsonBody(t, models.NewTaskRequest{ProjectUUID: "bbbb"})
	req := httptest.NewRequest(http.MethodPut, "/project/task/new", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.newTask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing access token")
}

// TestNewTask_InvalidData verifies that service.ErrInvalidDataProvided maps
// to 400 Bad Request.
func TestNewTask_InvalidData(t *testing.T) {
	tasks := &mockTaskService{
		createFn: func(_ context.Context, _, _ string, _ models.TaskDraft) (models.Task, error) {
			return models.Task{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.NewTaskRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb"})
	req := httptest.NewRequest(http.MethodPut, "/project/task/new", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.newTask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// updateTask
// ─────────────────────────────────────────────

// TestUpdateTask_NotPermitted verifies that service.ErrNotPermitted maps to
// 403 Forbidden.
func TestUpdateTask_NotPermitted(t *testing.T) {
	tasks := &mockTaskService{
		updateFn: func(_ context.Context, _, _ string, _ models.Task) (models.Task, error) {
			return models.Task{}, service.ErrNotPermitted
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.UpdateTaskRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb", TaskData: testTask})
	req := httptest.NewRequest(http.MethodPost, "/project/task/update", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updateTask(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// TestUpdateTask_Success verifies the updated task is returned.
func TestUpdateTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		updateFn: func(_ context.Context, _, _ string, task models.Task) (models.Task, error) {
			task.Completed = true
			return task, nil
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.UpdateTaskRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb", TaskData: testTask})
	req := httptest.NewRequest(http.MethodPost, "/project/task/update", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.updateTask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.TaskData.Completed)
}

// ─────────────────────────────────────────────
// deleteTask
// ─────────────────────────────────────────────

// TestDeleteTask_NotFound verifies that store.ErrTaskNotFound maps to 404.
func TestDeleteTask_NotFound(t *testing.T) {
	tasks := &mockTaskService{
		deleteFn: func(_ context.Context, _, _, _ string) error {
			return store.ErrTaskNotFound
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.DeleteTaskRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb", TaskUUID: "missing"})
	req := httptest.NewRequest(http.MethodPost, "/project/task/delete", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.deleteTask(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestDeleteTask_Success verifies the deleted task uuid is echoed back.
func TestDeleteTask_Success(t *testing.T) {
	tasks := &mockTaskService{
		deleteFn: func(_ context.Context, requester, projectUUID, taskUUID string) error {
			require.Equal(t, testUsername, requester)
			require.Equal(t, "bbbb", projectUUID)
			require.Equal(t, "aaaa", taskUUID)
			return nil
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.DeleteTaskRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb", TaskUUID: "aaaa"})
	req := httptest.NewRequest(http.MethodPost, "/project/task/delete", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.deleteTask(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DeleteTaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "aaaa", resp.TaskUUID)
}

// ─────────────────────────────────────────────
// fetchTasks
// ─────────────────────────────────────────────

// TestFetchTasks_Success verifies the tasks map keyed by task uuid.
func TestFetchTasks_Success(t *testing.T) {
	tasks := &mockTaskService{
		listForProjectFn: func(_ context.Context, requester, projectUUID string) (map[string]models.Task, error) {
			require.Equal(t, testUsername, requester)
			require.Equal(t, "bbbb", projectUUID)
			return map[string]models.Task{"aaaa": testTask}, nil
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.FetchTasksRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "bbbb"})
	req := httptest.NewRequest(http.MethodPost, "/project/task/fetch-all", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.fetchTasks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, "design review", resp.Tasks["aaaa"].Name)
}

// TestFetchTasks_ProjectNotFound verifies that store.ErrProjectNotFound maps
// to 404 Not Found.
func TestFetchTasks_ProjectNotFound(t *testing.T) {
	tasks := &mockTaskService{
		listForProjectFn: func(_ context.Context, _, _ string) (map[string]models.Task, error) {
			return nil, store.ErrProjectNotFound
		},
	}

	h := newHandlerWithTasks(t, tasks)
	body := jsonBody(t, models.FetchTasksRequest{Auth: models.Auth{AccessToken: testToken}, ProjectUUID: "missing"})
	req := httptest.NewRequest(http.MethodPost, "/project/task/fetch-all", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.fetchTasks(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
