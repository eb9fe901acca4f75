package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{username, password}}
}

func (m loginModel) View() string {
	out := "Username: " + m.inputs[0].View() + "\n"
	out += "Password: " + m.inputs[1].View() + "\n"
	if m.submitting {
		out += "\nlogging in..."
	}
	return renderPage("LOG IN", out, "tab: next field │ enter: submit │ esc: back")
}
