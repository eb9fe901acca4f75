package models

// Wire types for the HTTP API. Authenticated requests carry the access token
// in the JSON body rather than a header; every authenticated response echoes
// the token back, possibly renewed, and the client must adopt the echoed
// value. The numeric status field duplicates the HTTP status code so GUI
// clients can branch on the decoded payload alone.

// Auth is embedded in every request type that requires authentication.
type Auth struct {
	AccessToken string `json:"access_token"`
}

// Token returns the raw access token carried by the request.
func (a Auth) Token() string { return a.AccessToken }

// AuthedRequest is implemented by all request types embedding [Auth].
type AuthedRequest interface {
	Token() string
}

type NewProjectRequest struct {
	Auth
	ProjectName string `json:"project_name"`
}

type RenameProjectRequest struct {
	Auth
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

type DeleteProjectRequest struct {
	Auth
	UUID string `json:"uuid"`
}

type FetchProjectsRequest struct {
	Auth
}

type InviteRequest struct {
	Auth
	UUID    string `json:"uuid"`
	Invitee string `json:"invitee"`
}

type NewTaskRequest struct {
	Auth
	ProjectUUID string    `json:"project_uuid"`
	TaskData    TaskDraft `json:"task_data"`
}

type UpdateTaskRequest struct {
	Auth
	ProjectUUID string `json:"project_uuid"`
	TaskData    Task   `json:"task_data"`
}

type DeleteTaskRequest struct {
	Auth
	ProjectUUID string `json:"project_uuid"`
	TaskUUID    string `json:"task_uuid"`
}

type FetchTasksRequest struct {
	Auth
	ProjectUUID string `json:"project_uuid"`
}

// Envelope is the common part of every response body.
type Envelope struct {
	Status      int    `json:"status"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
}

type RegisterResponse struct {
	Envelope
	Username string `json:"username,omitempty"`
}

type ProjectResponse struct {
	Envelope
	ProjectData Project `json:"project_data"`
}

type DeleteProjectResponse struct {
	Envelope
	UUID string `json:"uuid"`
}

type ProjectsResponse struct {
	Envelope
	Projects map[string]Project `json:"projects"`
}

type TaskResponse struct {
	Envelope
	TaskData Task `json:"task_data"`
}

type DeleteTaskResponse struct {
	Envelope
	TaskUUID string `json:"task_uuid"`
}

type TasksResponse struct {
	Envelope
	Tasks map[string]Task `json:"tasks"`
}
