package http

import (
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

func (h *Handler) newTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NewTaskRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	task, err := h.services.TaskService.Create(r.Context(), username, req.ProjectUUID, req.TaskData)
	if err != nil {
		log.Err(err).Str("func", "*Handler.newTask").Str("project_uuid", req.ProjectUUID).Msg("failed to create task")
		h.respondError(w, r, statusFromError(err), "failed to create task")
		return
	}

	h.respond(w, r, http.StatusOK, models.TaskResponse{
		Envelope: okEnvelope("task created", echoToken),
		TaskData: task,
	})
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UpdateTaskRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	task, err := h.services.TaskService.Update(r.Context(), username, req.ProjectUUID, req.TaskData)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Str("project_uuid", req.ProjectUUID).Msg("failed to update task")
		h.respondError(w, r, statusFromError(err), "failed to update task")
		return
	}

	h.respond(w, r, http.StatusOK, models.TaskResponse{
		Envelope: okEnvelope("task updated", echoToken),
		TaskData: task,
	})
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteTaskRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	if err := h.services.TaskService.Delete(r.Context(), username, req.ProjectUUID, req.TaskUUID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteTask").Str("project_uuid", req.ProjectUUID).Str("task_uuid", req.TaskUUID).Msg("failed to delete task")
		h.respondError(w, r, statusFromError(err), "failed to delete task")
		return
	}

	h.respond(w, r, http.StatusOK, models.DeleteTaskResponse{
		Envelope: okEnvelope("task deleted", echoToken),
		TaskUUID: req.TaskUUID,
	})
}

func (h *Handler) fetchTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FetchTasksRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	tasks, err := h.services.TaskService.ListForProject(r.Context(), username, req.ProjectUUID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchTasks").Str("project_uuid", req.ProjectUUID).Msg("failed to fetch tasks")
		h.respondError(w, r, statusFromError(err), "failed to fetch tasks")
		return
	}

	h.respond(w, r, http.StatusOK, models.TasksResponse{
		Envelope: okEnvelope("tasks fetched", echoToken),
		Tasks:    tasks,
	})
}
