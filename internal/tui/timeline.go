package tui

import (
	"sort"
	"time"

	"github.com/jasonyi-dev/ganttrack/models"
)

const (
	timelineDays  = 35
	nameColWidth  = 20
	secondsPerDay = 86400
)

type timelineModel struct {
	projectUUID string
	projectName string
	admin       bool

	tasks     []models.Task
	idx       int
	dayOffset int

	loading bool
	offline bool
	status  string
}

func (m *timelineModel) setTasks(tasks map[string]models.Task) {
	list := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Row < list[j].Row })
	m.tasks = list
	if m.idx >= len(list) {
		m.idx = 0
	}
}

func (m timelineModel) current() (models.Task, bool) {
	if m.idx < 0 || m.idx >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.idx], true
}

// baseDay returns the unix day the visible window starts at: the earliest
// task start, or today when the project is empty, shifted by dayOffset.
func (m timelineModel) baseDay() int64 {
	base := time.Now().Unix() / secondsPerDay
	for i, t := range m.tasks {
		day := t.StartDate / secondsPerDay
		if i == 0 || day < base {
			base = day
		}
	}
	return base + int64(m.dayOffset)
}

func (m timelineModel) View() string {
	title := "TIMELINE: " + fitText(m.projectName, 30)
	if m.offline {
		title += "  " + offlineStyle.Render("[offline]")
	}

	out := ""
	switch {
	case m.loading:
		out = "loading..."
	case len(m.tasks) == 0:
		out = "No tasks yet. Press n to create one."
	default:
		out = m.renderGrid()
	}
	if t, ok := m.current(); ok {
		out += "\n" + m.renderDetail(t)
	}
	if m.status != "" {
		out += "\n" + m.status
	}

	hotKeys := "n: new │ e: edit │ d: delete │ space: done │ ←/→: scroll │ x: export │ esc: back"
	return renderPage(title, out, hotKeys)
}

func (m timelineModel) renderGrid() string {
	base := m.baseDay()

	// Week labels above the grid, one per seven day columns.
	header := padText("", nameColWidth+2)
	for d := 0; d < timelineDays; d += 7 {
		label := time.Unix((base+int64(d))*secondsPerDay, 0).UTC().Format("Jan 02")
		header += weekLabelStyle.Render(padText(label, 7))
	}

	out := header + "\n"
	for i, t := range m.tasks {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		row := cursor + padText(t.Name, nameColWidth)
		startDay := t.StartDate / secondsPerDay
		endDay := t.EndDate / secondsPerDay
		for d := int64(0); d < timelineDays; d++ {
			day := base + d
			cell := gridCellStyle.Render("·")
			switch {
			case t.Type == models.TaskTypeMilestone && day == startDay:
				cell = barStyle(t.Colour).Render("◆")
			case t.Type == models.TaskTypeTask && day >= startDay && day <= endDay:
				glyph := "█"
				if t.Completed {
					cell = doneCellStyle.Render(glyph)
				} else {
					cell = barStyle(t.Colour).Render(glyph)
				}
			}
			row += cell
		}
		out += row + "\n"
	}
	return out
}

func (m timelineModel) renderDetail(t models.Task) string {
	detail := formatDay(t.StartDate)
	if t.Type == models.TaskTypeTask {
		detail += " → " + formatDay(t.EndDate)
	}
	if t.Completed {
		detail += "  ✓ done"
	}
	if t.Description != "" {
		detail += "\n" + fitText(t.Description, 60)
	}
	if len(t.Dependencies) > 0 {
		detail += "\ndepends on: " + m.dependencyNames(t)
	}
	return detail
}

func (m timelineModel) dependencyNames(t models.Task) string {
	byUUID := make(map[string]string, len(m.tasks))
	for _, other := range m.tasks {
		byUUID[other.TaskUUID] = other.Name
	}
	out := ""
	for i, dep := range t.Dependencies {
		name, ok := byUUID[dep]
		if !ok {
			name = fitText(dep, 8)
		}
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}

func formatDay(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format("2006-01-02")
}
