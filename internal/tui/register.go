package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 64
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{username, password, repeat}}
}

func (m registerModel) View() string {
	out := "Username:        " + m.inputs[0].View() + "\n"
	out += "Password:        " + m.inputs[1].View() + "\n"
	out += "Repeat password: " + m.inputs[2].View() + "\n"
	if m.submitting {
		out += "\nregistering..."
	}
	return renderPage("REGISTER", out, "tab: next field │ enter: submit │ esc: back")
}
