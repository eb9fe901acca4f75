package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage lays out the shared screen frame: a title rule, the indented
// body, and the hotkey footer. The quit hint is always appended so every
// screen advertises the same escape hatch.
func renderPage(title, data, hotKeys string) string {
	body := "-"
	if strings.TrimSpace(data) != "" {
		body = strings.TrimRight(data, "\n")
	}

	indented := "  " + strings.ReplaceAll(body, "\n", "\n  ")

	footer := "  " + helpStyle.Render("ctrl+c: quit")
	if strings.TrimSpace(hotKeys) != "" {
		footer = "  " + helpStyle.Render(hotKeys) + "\n" + footer
	}

	return titleStyle.Render(title) + "\n" +
		"  " + uiDivider + "\n\n" +
		indented + "\n\n" +
		"  " + uiDivider + "\n" +
		footer
}

// fitText caps v at max bytes, marking the cut with an ellipsis when there
// is room for one.
func fitText(v string, max int) string {
	switch {
	case max <= 0 || len(v) <= max:
		return v
	case max <= 3:
		return v[:max]
	default:
		return v[:max-3] + "..."
	}
}

// padText right-pads v to exactly width, truncating first when needed.
// Timeline rows rely on it to keep the name column aligned with the grid.
func padText(v string, width int) string {
	v = fitText(v, width)
	if len(v) < width {
		return v + strings.Repeat(" ", width-len(v))
	}
	return v
}
