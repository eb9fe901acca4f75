package tui

import (
	"github.com/jasonyi-dev/ganttrack/models"
)

type authDoneMsg struct {
	username string
	err      error
}

type projectsLoadedMsg struct {
	projects map[string]models.Project
	offline  bool
	err      error
}

type projectSavedMsg struct {
	project models.Project
	err     error
}

type projectDeletedMsg struct {
	err error
}

type invitedMsg struct {
	project models.Project
	err     error
}

type tasksLoadedMsg struct {
	tasks   map[string]models.Task
	offline bool
	err     error
}

type tasksRefreshedMsg struct {
	tasks map[string]models.Task
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
