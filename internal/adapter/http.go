package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/jasonyi-dev/ganttrack/internal/config"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying client with the resolved
// base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the body of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// auth returns the [models.Auth] fragment embedded in every authenticated
// request body.
func (h *httpServerAdapter) auth() models.Auth {
	return models.Auth{AccessToken: h.Token()}
}

// adoptToken stores the refreshed access token echoed in a successful
// response envelope. The server re-issues tokens that are close to expiry;
// adopting the echo keeps the session alive indefinitely while the client is
// active.
func (h *httpServerAdapter) adoptToken(envelope models.Envelope) {
	if envelope.AccessToken != "" {
		h.SetToken(envelope.AccessToken)
	}
}

func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (string, error) {
	var result models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/user/register")
	if err != nil {
		return "", fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Username, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	var result models.Envelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&result).
		Post("/user/authorise")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken(result.AccessToken)
	return nil
}

func (h *httpServerAdapter) NewProject(ctx context.Context, name string) (models.Project, error) {
	var result models.ProjectResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.NewProjectRequest{Auth: h.auth(), ProjectName: name}).
		SetResult(&result).
		Put("/project/new-project")
	if err != nil {
		return models.Project{}, fmt.Errorf("new project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	h.adoptToken(result.Envelope)
	return result.ProjectData, nil
}

func (h *httpServerAdapter) RenameProject(ctx context.Context, uuid, name string) (models.Project, error) {
	var result models.ProjectResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RenameProjectRequest{Auth: h.auth(), UUID: uuid, Name: name}).
		SetResult(&result).
		Post("/project/rename-project")
	if err != nil {
		return models.Project{}, fmt.Errorf("rename project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	h.adoptToken(result.Envelope)
	return result.ProjectData, nil
}

func (h *httpServerAdapter) DeleteProject(ctx context.Context, uuid string) error {
	var result models.DeleteProjectResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.DeleteProjectRequest{Auth: h.auth(), UUID: uuid}).
		SetResult(&result).
		Post("/project/delete-project")
	if err != nil {
		return fmt.Errorf("delete project request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.adoptToken(result.Envelope)
	return nil
}

func (h *httpServerAdapter) FetchProjects(ctx context.Context) (map[string]models.Project, error) {
	var result models.ProjectsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.FetchProjectsRequest{Auth: h.auth()}).
		SetResult(&result).
		Post("/project/fetch-user-projects")
	if err != nil {
		return nil, fmt.Errorf("fetch projects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.adoptToken(result.Envelope)
	return result.Projects, nil
}

func (h *httpServerAdapter) Invite(ctx context.Context, uuid, invitee string) (models.Project, error) {
	var result models.ProjectResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.InviteRequest{Auth: h.auth(), UUID: uuid, Invitee: invitee}).
		SetResult(&result).
		Post("/project/invite")
	if err != nil {
		return models.Project{}, fmt.Errorf("invite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Project{}, err
	}

	h.adoptToken(result.Envelope)
	return result.ProjectData, nil
}

func (h *httpServerAdapter) NewTask(ctx context.Context, projectUUID string, draft models.TaskDraft) (models.Task, error) {
	var result models.TaskResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.NewTaskRequest{Auth: h.auth(), ProjectUUID: projectUUID, TaskData: draft}).
		SetResult(&result).
		Put("/project/task/new")
	if err != nil {
		return models.Task{}, fmt.Errorf("new task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	h.adoptToken(result.Envelope)
	return result.TaskData, nil
}

func (h *httpServerAdapter) UpdateTask(ctx context.Context, projectUUID string, task models.Task) (models.Task, error) {
	var result models.TaskResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.UpdateTaskRequest{Auth: h.auth(), ProjectUUID: projectUUID, TaskData: task}).
		SetResult(&result).
		Post("/project/task/update")
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	h.adoptToken(result.Envelope)
	return result.TaskData, nil
}

func (h *httpServerAdapter) DeleteTask(ctx context.Context, projectUUID, taskUUID string) error {
	var result models.DeleteTaskResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.DeleteTaskRequest{Auth: h.auth(), ProjectUUID: projectUUID, TaskUUID: taskUUID}).
		SetResult(&result).
		Post("/project/task/delete")
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.adoptToken(result.Envelope)
	return nil
}

func (h *httpServerAdapter) FetchTasks(ctx context.Context, projectUUID string) (map[string]models.Task, error) {
	var result models.TasksResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.FetchTasksRequest{Auth: h.auth(), ProjectUUID: projectUUID}).
		SetResult(&result).
		Post("/project/task/fetch-all")
	if err != nil {
		return nil, fmt.Errorf("fetch tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.adoptToken(result.Envelope)
	return result.Tasks, nil
}
