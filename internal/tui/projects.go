package tui

import (
	"sort"

	"github.com/jasonyi-dev/ganttrack/models"
)

type projectsModel struct {
	projects []models.Project
	username string
	idx      int
	loading  bool
	offline  bool
	status   string
}

// isAdmin reports whether the logged-in user administers the project.
func (m projectsModel) isAdmin(project models.Project) bool {
	return project.Admin == m.username
}

func (m *projectsModel) setProjects(projects map[string]models.Project) {
	list := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].UpdatedAt != list[j].UpdatedAt {
			return list[i].UpdatedAt > list[j].UpdatedAt
		}
		return list[i].Name < list[j].Name
	})
	m.projects = list
	if m.idx >= len(list) {
		m.idx = 0
	}
}

func (m projectsModel) current() (models.Project, bool) {
	if m.idx < 0 || m.idx >= len(m.projects) {
		return models.Project{}, false
	}
	return m.projects[m.idx], true
}

func (m projectsModel) View() string {
	title := "PROJECTS"
	if m.offline {
		title += "  " + offlineStyle.Render("[offline]")
	}

	out := ""
	switch {
	case m.loading:
		out = "loading..."
	case len(m.projects) == 0:
		out = "No projects yet. Press n to create one."
	default:
		for i, p := range m.projects {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			role := "member"
			if m.isAdmin(p) {
				role = "admin"
			}
			out += cursor + padText(p.Name, 28) + "  " + role + "\n"
		}
	}
	if m.status != "" {
		out += "\n" + m.status
	}

	hotKeys := "enter: open │ n: new │ r: rename │ d: delete │ i: invite │ c: copy id │ ctrl+l: logout"
	return renderPage(title, out, hotKeys)
}
