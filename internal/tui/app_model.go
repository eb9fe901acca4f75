package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jasonyi-dev/ganttrack/internal/adapter"
	"github.com/jasonyi-dev/ganttrack/internal/logger"
	"github.com/jasonyi-dev/ganttrack/internal/service"
	"github.com/jasonyi-dev/ganttrack/models"
)

// ErrUserQuit reports that the user closed the program instead of completing
// the flow it was running.
var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenProjects
	screenTimeline
	screenProjectForm
	screenTaskForm
	screenInvite
)

type mode int

const (
	// modeLogin runs the welcome/login/register flow and quits once a
	// session is established.
	modeLogin mode = iota
	// modeMain runs the projects and timeline screens.
	modeMain
)

type confirmTarget int

const (
	confirmProject confirmTarget = iota
	confirmTask
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	log      *logger.Logger

	mode   mode
	screen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	projects    projectsModel
	timeline    timelineModel
	projectForm projectFormModel
	taskForm    taskFormModel
	invite      inviteModel

	showConfirm   bool
	confirm       confirmModel
	confirmTarget confirmTarget

	showError    bool
	errorOverlay errorOverlayModel

	refreshInterval time.Duration
	refreshCh       chan map[string]models.Task

	quitByUser    bool
	authenticated bool
	logout        bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, refreshInterval time.Duration, log *logger.Logger, appMode mode) appModel {
	m := appModel{
		ctx:             ctx,
		services:        services,
		log:             log,
		mode:            appMode,
		welcome:         newWelcomeModel(),
		refreshInterval: refreshInterval,
		refreshCh:       make(chan map[string]models.Task, 1),
	}
	switch appMode {
	case modeLogin:
		m.screen = screenWelcome
	case modeMain:
		m.screen = screenProjects
		m.projects.loading = true
		m.projects.username = services.AuthService.Username()
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(textinput.Blink, m.cmdLoadProjects())
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		m.services.RefreshJob.Stop()
		return m, tea.Quit
	}

	if m.showError {
		return m.updateErrorOverlay(msg)
	}
	if m.showConfirm {
		return m.updateConfirm(msg)
	}

	switch typed := msg.(type) {
	case authDoneMsg:
		return m.onAuthDone(typed)
	case projectsLoadedMsg:
		return m.onProjectsLoaded(typed)
	case projectSavedMsg:
		return m.onProjectSaved(typed)
	case projectDeletedMsg:
		return m.onProjectDeleted(typed)
	case invitedMsg:
		return m.onInvited(typed)
	case tasksLoadedMsg:
		return m.onTasksLoaded(typed)
	case tasksRefreshedMsg:
		m.timeline.setTasks(typed.tasks)
		return m, m.listenRefresh()
	case taskSavedMsg:
		return m.onTaskSaved(typed)
	case taskDeletedMsg:
		return m.onTaskDeleted(typed)
	case exportDoneMsg:
		return m.onExportDone(typed)
	case copiedMsg:
		return m.setStatus("copied to clipboard")
	case clearStatusMsg:
		m.projects.status = ""
		m.timeline.status = ""
		return m, nil
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenProjects:
		return m.updateProjects(msg)
	case screenTimeline:
		return m.updateTimeline(msg)
	case screenProjectForm:
		return m.updateProjectForm(msg)
	case screenTaskForm:
		return m.updateTaskForm(msg)
	case screenInvite:
		return m.updateInvite(msg)
	}
	return m, nil
}

func (m appModel) View() string {
	var page string
	switch m.screen {
	case screenWelcome:
		page = m.welcome.View()
	case screenLogin:
		page = m.login.View()
	case screenRegister:
		page = m.register.View()
	case screenProjects:
		page = m.projects.View()
	case screenTimeline:
		page = m.timeline.View()
	case screenProjectForm:
		page = m.projectForm.View()
	case screenTaskForm:
		page = m.taskForm.View()
	case screenInvite:
		page = m.invite.View()
	}
	if m.showError {
		page += "\n\n" + m.errorOverlay.View()
	}
	if m.showConfirm {
		page += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(page)
}

// ─── overlays ───

func (m appModel) updateErrorOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
		m.showError = false
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.showConfirm = false
		switch m.confirmTarget {
		case confirmProject:
			project, ok := m.projects.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteProject(project.UUID)
		case confirmTask:
			task, ok := m.timeline.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDeleteTask(task.TaskUUID)
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m appModel) fail(message string) (tea.Model, tea.Cmd) {
	m.showError = true
	m.errorOverlay = errorOverlayModel{message: message}
	return m, nil
}

// failErr routes a service error into the error overlay, except for an
// expired session, which ends the program so the caller can re-run the
// login flow.
func (m appModel) failErr(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrAccessExpired) {
		m.logout = true
		m.services.RefreshJob.Stop()
		return m, tea.Quit
	}
	return m.fail(err.Error())
}

// ─── auth screens ───

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.screen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.screen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = focusNext(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = focusPrev(m.login.inputs, m.login.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			creds := models.Credentials{
				Username: m.login.inputs[0].Value(),
				Password: m.login.inputs[1].Value(),
			}
			if creds.Username == "" || creds.Password == "" {
				return m.fail("username and password are required")
			}
			m.login.submitting = true
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = focusNext(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = focusPrev(m.register.inputs, m.register.focus)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			if m.register.inputs[1].Value() != m.register.inputs[2].Value() {
				return m.fail("passwords do not match")
			}
			creds := models.Credentials{
				Username: m.register.inputs[0].Value(),
				Password: m.register.inputs[1].Value(),
			}
			if creds.Username == "" || creds.Password == "" {
				return m.fail("username and password are required")
			}
			m.register.submitting = true
			return m, m.cmdRegister(creds)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) onAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	m.register.submitting = false
	if msg.err != nil {
		return m.fail(msg.err.Error())
	}
	m.authenticated = true
	return m, tea.Quit
}

// ─── projects screen ───

func (m appModel) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.projects.idx > 0 {
			m.projects.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.projects.idx < len(m.projects.projects)-1 {
			m.projects.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		m.timeline = timelineModel{
			projectUUID: project.UUID,
			projectName: project.Name,
			admin:       m.projects.isAdmin(project),
			loading:     true,
		}
		m.screen = screenTimeline
		return m, m.cmdLoadTasks()
	case key.Matches(keyMsg, keys.newItem):
		m.projectForm = newProjectFormModel(false, "", "")
		m.screen = screenProjectForm
	case key.Matches(keyMsg, keys.rename):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		if !m.projects.isAdmin(project) {
			return m.fail("only the project admin can rename it")
		}
		m.projectForm = newProjectFormModel(true, project.UUID, project.Name)
		m.screen = screenProjectForm
	case key.Matches(keyMsg, keys.delete):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		if !m.projects.isAdmin(project) {
			return m.fail("only the project admin can delete it")
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: project.Name}
		m.confirmTarget = confirmProject
	case key.Matches(keyMsg, keys.invite):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		if !m.projects.isAdmin(project) {
			return m.fail("only the project admin can invite users")
		}
		m.invite = newInviteModel(project.UUID, project.Name)
		m.screen = screenInvite
	case key.Matches(keyMsg, keys.copy):
		project, ok := m.projects.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(project.UUID)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		m.services.RefreshJob.Stop()
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		m.services.RefreshJob.Stop()
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) onProjectsLoaded(msg projectsLoadedMsg) (tea.Model, tea.Cmd) {
	m.projects.loading = false
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.projects.offline = msg.offline
	m.projects.setProjects(msg.projects)
	return m, nil
}

func (m appModel) onProjectSaved(msg projectSavedMsg) (tea.Model, tea.Cmd) {
	m.projectForm.submitting = false
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.screen = screenProjects
	m.projects.loading = true
	return m, m.cmdLoadProjects()
}

func (m appModel) onProjectDeleted(msg projectDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.projects.loading = true
	return m, m.cmdLoadProjects()
}

func (m appModel) onInvited(msg invitedMsg) (tea.Model, tea.Cmd) {
	m.invite.submitting = false
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.screen = screenProjects
	m.projects.loading = true
	m.projects.status = "invited to " + msg.project.Name
	return m, tea.Batch(m.cmdLoadProjects(), cmdClearStatus())
}

// ─── timeline screen ───

func (m appModel) updateTimeline(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.services.RefreshJob.Stop()
		m.screen = screenProjects
		m.projects.loading = true
		return m, m.cmdLoadProjects()
	case key.Matches(keyMsg, keys.up):
		if m.timeline.idx > 0 {
			m.timeline.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.timeline.idx < len(m.timeline.tasks)-1 {
			m.timeline.idx++
		}
	case key.Matches(keyMsg, keys.left):
		m.timeline.dayOffset -= 7
	case key.Matches(keyMsg, keys.right):
		m.timeline.dayOffset += 7
	case key.Matches(keyMsg, keys.newItem):
		m.taskForm = newTaskFormModel(len(m.timeline.tasks))
		m.screen = screenTaskForm
	case key.Matches(keyMsg, keys.edit):
		task, ok := m.timeline.current()
		if !ok {
			return m, nil
		}
		m.taskForm = newEditTaskFormModel(task, m.timeline.tasks)
		m.screen = screenTaskForm
	case key.Matches(keyMsg, keys.delete):
		task, ok := m.timeline.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{message: task.Name}
		m.confirmTarget = confirmTask
	case key.Matches(keyMsg, keys.toggle):
		task, ok := m.timeline.current()
		if !ok {
			return m, nil
		}
		task.Completed = !task.Completed
		return m, m.cmdUpdateTask(task)
	case key.Matches(keyMsg, keys.export):
		return m, m.cmdExport()
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		m.services.RefreshJob.Stop()
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) onTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	m.timeline.loading = false
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.timeline.offline = msg.offline
	m.timeline.setTasks(msg.tasks)
	if msg.offline {
		return m, nil
	}
	return m, m.startRefresh()
}

func (m appModel) onTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	m.taskForm.submitting = false
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.screen = screenTimeline
	m.timeline.loading = true
	return m, m.cmdLoadTasks()
}

func (m appModel) onTaskDeleted(msg taskDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	m.timeline.loading = true
	return m, m.cmdLoadTasks()
}

func (m appModel) onExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.failErr(msg.err)
	}
	return m.setStatus("exported to " + msg.path)
}

// ─── form screens ───

func (m appModel) updateProjectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenProjects
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.projectForm.submitting {
				return m, nil
			}
			name := m.projectForm.input.Value()
			if name == "" {
				return m.fail("project name is required")
			}
			m.projectForm.submitting = true
			if m.projectForm.editing {
				return m, m.cmdRenameProject(m.projectForm.uuid, name)
			}
			return m, m.cmdCreateProject(name)
		}
	}

	var cmd tea.Cmd
	m.projectForm.input, cmd = m.projectForm.input.Update(msg)
	return m, cmd
}

func (m appModel) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenTimeline
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.taskForm.focus = focusNext(m.taskForm.inputs, m.taskForm.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.taskForm.focus = focusPrev(m.taskForm.inputs, m.taskForm.focus)
			return m, nil
		case keyMsg.String() == "ctrl+t":
			m.taskForm.typeIdx = (m.taskForm.typeIdx + 1) % len(taskTypes)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.taskForm.submitting {
				return m, nil
			}
			draft, err := m.taskForm.draft(m.timeline.tasks)
			if err != nil {
				m.taskForm.formError = "check the form: name is required, dates are YYYY-MM-DD, dependencies are existing row numbers"
				return m, nil
			}
			m.taskForm.formError = ""
			m.taskForm.submitting = true
			if m.taskForm.editing {
				return m, m.cmdSaveEditedTask(draft)
			}
			return m, m.cmdCreateTask(draft)
		}
	}

	var cmd tea.Cmd
	m.taskForm.inputs[m.taskForm.focus], cmd = m.taskForm.inputs[m.taskForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateInvite(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.screen = screenProjects
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.invite.submitting {
				return m, nil
			}
			invitee := m.invite.input.Value()
			if invitee == "" {
				return m.fail("username is required")
			}
			m.invite.submitting = true
			return m, m.cmdInvite(m.invite.projectUUID, invitee)
		}
	}

	var cmd tea.Cmd
	m.invite.input, cmd = m.invite.input.Update(msg)
	return m, cmd
}

// ─── commands ───

func (m appModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.AuthService.Register(ctx, creds); err != nil {
			return authDoneMsg{err: err}
		}
		if err := services.AuthService.Login(ctx, creds); err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{username: creds.Username}
	}
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		if err := services.AuthService.Login(ctx, creds); err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{username: creds.Username}
	}
}

func (m appModel) cmdLoadProjects() tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		projects, offline, err := services.BoardService.Projects(ctx)
		return projectsLoadedMsg{projects: projects, offline: offline, err: err}
	}
}

func (m appModel) cmdCreateProject(name string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		project, err := services.BoardService.CreateProject(ctx, name)
		return projectSavedMsg{project: project, err: err}
	}
}

func (m appModel) cmdRenameProject(uuid, name string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		project, err := services.BoardService.RenameProject(ctx, uuid, name)
		return projectSavedMsg{project: project, err: err}
	}
}

func (m appModel) cmdDeleteProject(uuid string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		return projectDeletedMsg{err: services.BoardService.DeleteProject(ctx, uuid)}
	}
}

func (m appModel) cmdInvite(uuid, invitee string) tea.Cmd {
	ctx, services := m.ctx, m.services
	return func() tea.Msg {
		project, err := services.BoardService.Invite(ctx, uuid, invitee)
		return invitedMsg{project: project, err: err}
	}
}

func (m appModel) cmdLoadTasks() tea.Cmd {
	ctx, services, projectUUID := m.ctx, m.services, m.timeline.projectUUID
	return func() tea.Msg {
		tasks, offline, err := services.BoardService.Tasks(ctx, projectUUID)
		return tasksLoadedMsg{tasks: tasks, offline: offline, err: err}
	}
}

func (m appModel) cmdCreateTask(draft models.TaskDraft) tea.Cmd {
	ctx, services, projectUUID := m.ctx, m.services, m.timeline.projectUUID
	return func() tea.Msg {
		_, err := services.BoardService.CreateTask(ctx, projectUUID, draft)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdSaveEditedTask(draft models.TaskDraft) tea.Cmd {
	task := m.taskForm.original
	task.Type = draft.Type
	task.Name = draft.Name
	task.Description = draft.Description
	task.StartDate = draft.StartDate
	task.EndDate = draft.EndDate
	task.Colour = draft.Colour
	task.Dependencies = draft.Dependencies
	return m.cmdUpdateTask(task)
}

func (m appModel) cmdUpdateTask(task models.Task) tea.Cmd {
	ctx, services, projectUUID := m.ctx, m.services, m.timeline.projectUUID
	return func() tea.Msg {
		_, err := services.BoardService.UpdateTask(ctx, projectUUID, task)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTask(taskUUID string) tea.Cmd {
	ctx, services, projectUUID := m.ctx, m.services, m.timeline.projectUUID
	return func() tea.Msg {
		return taskDeletedMsg{err: services.BoardService.DeleteTask(ctx, projectUUID, taskUUID)}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	projectName, tasks := m.timeline.projectName, m.timeline.tasks
	return func() tea.Msg {
		path, err := exportCSV(projectName, tasks)
		return exportDoneMsg{path: path, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return exportDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ─── refresh job wiring ───

// startRefresh launches the background poll for the open project and begins
// listening for its snapshots. Snapshots are funnelled through refreshCh so
// the bubbletea loop stays the only writer of model state.
func (m appModel) startRefresh() tea.Cmd {
	ch, projectUUID := m.refreshCh, m.timeline.projectUUID
	m.services.RefreshJob.Start(m.ctx, projectUUID, m.refreshInterval, func(tasks map[string]models.Task) {
		select {
		case ch <- tasks:
		default:
		}
	})
	return m.listenRefresh()
}

func (m appModel) listenRefresh() tea.Cmd {
	ch := m.refreshCh
	return func() tea.Msg {
		tasks, ok := <-ch
		if !ok {
			return nil
		}
		return tasksRefreshedMsg{tasks: tasks}
	}
}

// ─── helpers ───

func (m appModel) setStatus(status string) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenTimeline:
		m.timeline.status = status
	default:
		m.projects.status = status
	}
	return m, cmdClearStatus()
}

func focusNext(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus + 1) % len(inputs)
	inputs[focus].Focus()
	return focus
}

func focusPrev(inputs []textinput.Model, focus int) int {
	inputs[focus].Blur()
	focus = (focus - 1 + len(inputs)) % len(inputs)
	inputs[focus].Focus()
	return focus
}
