package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	for i, item := range m.items {
		if i == m.idx {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(item)
		b.WriteString("\n")
	}
	return renderPage("GANTTRACK", b.String(), "↑/↓: navigate │ enter: select │ q: quit")
}
