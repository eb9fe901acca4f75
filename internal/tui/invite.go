package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type inviteModel struct {
	input       textinput.Model
	projectUUID string
	projectName string
	submitting  bool
}

func newInviteModel(projectUUID, projectName string) inviteModel {
	input := textinput.New()
	input.Placeholder = "username"
	input.CharLimit = 64
	input.Focus()
	return inviteModel{input: input, projectUUID: projectUUID, projectName: projectName}
}

func (m inviteModel) View() string {
	out := "Project:  " + fitText(m.projectName, 40) + "\n"
	out += "Username: " + m.input.View() + "\n"
	if m.submitting {
		out += "\ninviting..."
	}
	return renderPage("INVITE", out, "enter: invite │ esc: cancel")
}
