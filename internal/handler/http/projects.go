package http

import (
	"net/http"

	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/models"
)

func (h *Handler) newProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.NewProjectRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.Create(r.Context(), username, req.ProjectName)
	if err != nil {
		log.Err(err).Str("func", "*Handler.newProject").Msg("failed to create project")
		h.respondError(w, r, statusFromError(err), "failed to create project")
		return
	}

	h.respond(w, r, http.StatusOK, models.ProjectResponse{
		Envelope:    okEnvelope("project created", echoToken),
		ProjectData: project,
	})
}

func (h *Handler) renameProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RenameProjectRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.Rename(r.Context(), username, req.UUID, req.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.renameProject").Str("uuid", req.UUID).Msg("failed to rename project")
		h.respondError(w, r, statusFromError(err), "failed to rename project")
		return
	}

	h.respond(w, r, http.StatusOK, models.ProjectResponse{
		Envelope:    okEnvelope("project renamed", echoToken),
		ProjectData: project,
	})
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteProjectRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	if err := h.services.ProjectService.Delete(r.Context(), username, req.UUID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteProject").Str("uuid", req.UUID).Msg("failed to delete project")
		h.respondError(w, r, statusFromError(err), "failed to delete project")
		return
	}

	h.respond(w, r, http.StatusOK, models.DeleteProjectResponse{
		Envelope: okEnvelope("project deleted", echoToken),
		UUID:     req.UUID,
	})
}

func (h *Handler) fetchUserProjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.FetchProjectsRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	projects, err := h.services.ProjectService.ListForUser(r.Context(), username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchUserProjects").Msg("failed to fetch projects")
		h.respondError(w, r, statusFromError(err), "failed to fetch projects")
		return
	}

	h.respond(w, r, http.StatusOK, models.ProjectsResponse{
		Envelope: okEnvelope("projects fetched", echoToken),
		Projects: projects,
	})
}

func (h *Handler) inviteToProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.InviteRequest
	username, echoToken, ok := h.authenticate(w, r, &req)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.Invite(r.Context(), username, req.UUID, req.Invitee)
	if err != nil {
		log.Err(err).Str("func", "*Handler.inviteToProject").Str("uuid", req.UUID).Str("invitee", req.Invitee).Msg("failed to invite user")
		h.respondError(w, r, statusFromError(err), "failed to invite user")
		return
	}

	h.respond(w, r, http.StatusOK, models.ProjectResponse{
		Envelope:    okEnvelope("user invited", echoToken),
		ProjectData: project,
	})
}
