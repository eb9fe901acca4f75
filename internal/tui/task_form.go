package tui

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jasonyi-dev/ganttrack/models"
)

// defaultColours is the bar palette cycled through for new tasks.
var defaultColours = []string{
	"#e07a5f", "#3d9970", "#5782d6", "#e0a458", "#9b5de5", "#38a3a5",
}

var errBadTaskForm = errors.New("invalid task form")

const (
	taskFieldName = iota
	taskFieldDescription
	taskFieldStart
	taskFieldEnd
	taskFieldColour
	taskFieldDeps
	taskFieldCount
)

type taskFormModel struct {
	inputs     []textinput.Model
	typeIdx    int // index into taskTypes
	focus      int
	editing    bool
	original   models.Task
	submitting bool
	formError  string
}

var taskTypes = []string{models.TaskTypeTask, models.TaskTypeMilestone}

func newTaskFormModel(taskCount int) taskFormModel {
	m := taskFormModel{inputs: make([]textinput.Model, taskFieldCount)}

	name := textinput.New()
	name.Placeholder = "task name"
	name.CharLimit = 20
	name.Focus()
	m.inputs[taskFieldName] = name

	description := textinput.New()
	description.Placeholder = "description"
	description.CharLimit = 1024
	m.inputs[taskFieldDescription] = description

	today := time.Now().UTC().Format("2006-01-02")

	start := textinput.New()
	start.Placeholder = "YYYY-MM-DD"
	start.CharLimit = 10
	start.SetValue(today)
	m.inputs[taskFieldStart] = start

	end := textinput.New()
	end.Placeholder = "YYYY-MM-DD"
	end.CharLimit = 10
	end.SetValue(today)
	m.inputs[taskFieldEnd] = end

	colour := textinput.New()
	colour.Placeholder = "#RRGGBB"
	colour.CharLimit = 7
	colour.SetValue(defaultColours[taskCount%len(defaultColours)])
	m.inputs[taskFieldColour] = colour

	deps := textinput.New()
	deps.Placeholder = "row numbers, e.g. 1,3"
	deps.CharLimit = 120
	m.inputs[taskFieldDeps] = deps

	return m
}

func newEditTaskFormModel(task models.Task, rows []models.Task) taskFormModel {
	m := newTaskFormModel(0)
	m.editing = true
	m.original = task

	m.inputs[taskFieldName].SetValue(task.Name)
	m.inputs[taskFieldDescription].SetValue(task.Description)
	m.inputs[taskFieldStart].SetValue(formatDay(task.StartDate))
	m.inputs[taskFieldEnd].SetValue(formatDay(task.EndDate))
	m.inputs[taskFieldColour].SetValue(task.Colour)
	m.inputs[taskFieldDeps].SetValue(dependencyRows(task, rows))
	for i, t := range taskTypes {
		if t == task.Type {
			m.typeIdx = i
		}
	}
	return m
}

// dependencyRows renders a task's dependency uuids back into the one-based
// row numbers the form accepts.
func dependencyRows(task models.Task, rows []models.Task) string {
	byUUID := make(map[string]int, len(rows))
	for _, t := range rows {
		byUUID[t.TaskUUID] = t.Row + 1
	}
	parts := make([]string, 0, len(task.Dependencies))
	for _, dep := range task.Dependencies {
		if row, ok := byUUID[dep]; ok {
			parts = append(parts, strconv.Itoa(row))
		}
	}
	return strings.Join(parts, ",")
}

// draft validates the form and assembles the user-editable task fields.
// Dependency row numbers are resolved against the current task list; a task
// may not depend on itself.
func (m taskFormModel) draft(rows []models.Task) (models.TaskDraft, error) {
	name := strings.TrimSpace(m.inputs[taskFieldName].Value())
	if name == "" {
		return models.TaskDraft{}, errBadTaskForm
	}

	start, err := parseDay(m.inputs[taskFieldStart].Value())
	if err != nil {
		return models.TaskDraft{}, errBadTaskForm
	}

	taskType := taskTypes[m.typeIdx]
	end := start
	if taskType == models.TaskTypeTask {
		end, err = parseDay(m.inputs[taskFieldEnd].Value())
		if err != nil || end < start {
			return models.TaskDraft{}, errBadTaskForm
		}
	}

	colour := strings.TrimSpace(m.inputs[taskFieldColour].Value())
	if colour == "" {
		colour = defaultColours[0]
	}

	deps, err := parseDependencyRows(m.inputs[taskFieldDeps].Value(), rows, m.original.TaskUUID)
	if err != nil {
		return models.TaskDraft{}, errBadTaskForm
	}

	return models.TaskDraft{
		Type:         taskType,
		Name:         name,
		Description:  strings.TrimSpace(m.inputs[taskFieldDescription].Value()),
		StartDate:    start,
		EndDate:      end,
		Completed:    m.original.Completed,
		Colour:       colour,
		Dependencies: deps,
	}, nil
}

func parseDay(v string) (int64, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(v))
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func parseDependencyRows(v string, rows []models.Task, selfUUID string) ([]string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	byRow := make(map[int]string, len(rows))
	for _, t := range rows {
		byRow[t.Row+1] = t.TaskUUID
	}
	deps := make([]string, 0)
	for _, part := range strings.Split(v, ",") {
		row, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		uuid, ok := byRow[row]
		if !ok || uuid == selfUUID {
			return nil, errBadTaskForm
		}
		deps = append(deps, uuid)
	}
	return deps, nil
}

func (m taskFormModel) View() string {
	title := "NEW TASK"
	if m.editing {
		title = "EDIT TASK"
	}

	typeLine := ""
	for i, t := range taskTypes {
		marker := "( ) "
		if i == m.typeIdx {
			marker = "(•) "
		}
		typeLine += marker + t + "  "
	}

	out := "Type:         " + typeLine + "\n"
	out += "Name:         " + m.inputs[taskFieldName].View() + "\n"
	out += "Description:  " + m.inputs[taskFieldDescription].View() + "\n"
	out += "Start date:   " + m.inputs[taskFieldStart].View() + "\n"
	if taskTypes[m.typeIdx] == models.TaskTypeTask {
		out += "End date:     " + m.inputs[taskFieldEnd].View() + "\n"
	}
	out += "Colour:       " + m.inputs[taskFieldColour].View() + "\n"
	out += "Depends on:   " + m.inputs[taskFieldDeps].View() + "\n"
	if m.formError != "" {
		out += "\n" + m.formError
	}
	if m.submitting {
		out += "\nsaving..."
	}
	return renderPage(title, out, "tab: next field │ ctrl+t: type │ enter: save │ esc: cancel")
}
