package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. Route paths and methods are the application's
// wire contract; authenticated endpoints read the access token from the
// request body, so there is no header-based auth middleware — each handler
// authenticates through [Handler.authenticate].
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	router.Post("/user/register", h.register)
	router.Post("/user/authorise", h.authorise)

	router.Put("/project/new-project", h.newProject)
	router.Post("/project/rename-project", h.renameProject)
	router.Post("/project/delete-project", h.deleteProject)
	router.Post("/project/fetch-user-projects", h.fetchUserProjects)
	router.Post("/project/invite", h.inviteToProject)

	router.Put("/project/task/new", h.newTask)
	router.Post("/project/task/update", h.updateTask)
	router.Post("/project/task/delete", h.deleteTask)
	router.Post("/project/task/fetch-all", h.fetchTasks)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
