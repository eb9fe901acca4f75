package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type projectFormModel struct {
	input      textinput.Model
	editing    bool
	uuid       string
	submitting bool
}

func newProjectFormModel(editing bool, uuid, name string) projectFormModel {
	input := textinput.New()
	input.Placeholder = "project name"
	input.CharLimit = 50
	input.SetValue(name)
	input.Focus()
	return projectFormModel{input: input, editing: editing, uuid: uuid}
}

func (m projectFormModel) View() string {
	title := "NEW PROJECT"
	if m.editing {
		title = "RENAME PROJECT"
	}
	out := "Name: " + m.input.View() + "\n"
	if m.submitting {
		out += "\nsaving..."
	}
	return renderPage(title, out, "enter: save │ esc: cancel")
}
