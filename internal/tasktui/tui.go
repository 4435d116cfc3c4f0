// Package tasktui is the interactive terminal shell for a task store.
package tasktui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/minbound"
	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusList focusPane = iota
	focusCreate
	focusEdit
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type modalKind int

const (
	modalNone modalKind = iota
	modalHelp
	modalDelete
	modalClear
)

// Options configures Run.
type Options struct {
	// RefreshInterval is how often open forms re-read the reminder floor.
	// Defaults to one minute.
	RefreshInterval time.Duration

	// DatetimeLayout formats reminders in the detail line.
	DatetimeLayout string

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// viewSink receives rendered views from the store. It is shared by every
// copy of the model.
type viewSink struct {
	view task.View
}

type model struct {
	ctx         context.Context
	store       *task.Store
	opts        Options
	sink        *viewSink
	unsubscribe func()
	width       int
	height      int
	focus       focusPane
	taskList    list.Model
	create      taskForm
	edit        taskForm
	modal       confirmModal
	status      string
	statusLevel statusLevel
}

type confirmModal struct {
	kind        modalKind
	message     string
	confirmText string
	cancelText  string
	selected    int
	taskID      int64
	filter      task.Filter
}

// Run drives store from an interactive terminal until the user quits or ctx ends.
func Run(ctx context.Context, store *task.Store, opts Options) error {
	if store == nil {
		return fmt.Errorf("task store is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	m := newModel(ctx, store, opts)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	if finalModel, ok := final.(model); ok {
		finalModel.shutdown()
	} else {
		m.shutdown()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, store *task.Store, opts Options) model {
	if opts.RefreshInterval <= 0 {
		opts.RefreshInterval = time.Minute
	}
	if opts.DatetimeLayout == "" {
		opts.DatetimeLayout = task.DatetimeLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	taskList := list.New(nil, newTaskItemDelegate(opts.Now), 0, 0)
	taskList.Title = "Tasks"
	taskList.SetShowStatusBar(false)
	taskList.SetFilteringEnabled(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)

	sink := &viewSink{view: store.Render()}
	unsubscribe := store.Subscribe(func(view task.View) {
		sink.view = view
	})

	create := newTaskForm(formCreate)
	create.bound = minbound.Start(ctx, opts.RefreshInterval, opts.Now)
	create.floor = minbound.Floor(opts.Now())

	m := model{
		ctx:         ctx,
		store:       store,
		opts:        opts,
		sink:        sink,
		unsubscribe: unsubscribe,
		focus:       focusList,
		taskList:    taskList,
		create:      create,
		edit:        newTaskForm(formEdit),
		modal:       confirmModal{kind: modalNone},
	}
	m.syncList()
	return m
}

func (m model) Init() tea.Cmd {
	return waitForBound(m.create.bound)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if bound, ok := msg.(boundMsg); ok {
		return m.handleBound(bound)
	}
	if m.modal.kind != modalNone {
		return m.updateModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.focus {
		case focusCreate, focusEdit:
			return m.updateForm(msg)
		default:
			updated, cmd, handled := m.handleKey(msg)
			if handled {
				return updated, cmd
			}
			m = updated
		}
	}

	var cmd tea.Cmd
	if m.focus == focusList {
		m.taskList, cmd = m.taskList.Update(msg)
	}
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading tasks..."
	}

	sections := []string{m.renderTabs(), m.renderHelpLine()}
	sections = append(sections, m.renderPane(m.taskList.View(), m.focus == focusList))
	if m.focus == focusEdit {
		sections = append(sections, m.renderPane(m.edit.view(fmt.Sprintf("Edit task %d", m.edit.taskID)), true))
	} else {
		sections = append(sections, m.renderPane(m.create.view("New task"), m.focus == focusCreate))
	}
	sections = append(sections, m.renderDetailLine(), m.renderStatusLine())

	view := strings.Join(sections, "\n")
	if m.modal.kind != modalNone {
		view = m.renderModalOverlay(view)
	}
	return view
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.shutdown()
		return m, tea.Quit, true
	case "?":
		m.modal = confirmModal{kind: modalHelp}
		return m, nil, true
	case "1":
		return m.setFilter(task.FilterAll), nil, true
	case "2":
		return m.setFilter(task.FilterActive), nil, true
	case "3":
		return m.setFilter(task.FilterCompleted), nil, true
	case "tab":
		return m.cycleFilter(1), nil, true
	case "shift+tab", "backtab":
		return m.cycleFilter(-1), nil, true
	case "a", "n":
		m.focus = focusCreate
		var cmd tea.Cmd
		m.create, cmd = m.create.focus()
		m.setStatus("", statusNone)
		return m, cmd, true
	case " ", "x":
		return m.toggleSelected(), nil, true
	case "e", "enter":
		updated, cmd := m.openEdit()
		return updated, cmd, true
	case "d":
		return m.promptDelete(), nil, true
	case "C":
		return m.promptClear(), nil, true
	}
	return m, nil, false
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := &m.create
	if m.focus == focusEdit {
		form = &m.edit
	}

	switch msg.String() {
	case "ctrl+c":
		m.shutdown()
		return m, tea.Quit
	case "esc":
		return m.closeForm("")
	case "tab", "shift+tab", "backtab":
		var cmd tea.Cmd
		*form, cmd = form.advance()
		return m, cmd
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	*form, cmd = form.update(msg)
	return m, cmd
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	if m.focus == focusEdit {
		text, datetime := m.edit.values()
		if _, err := m.store.Edit(m.edit.taskID, text, datetime); err != nil {
			m.reportError(err)
			return m, nil
		}
		return m.closeForm("Task updated")
	}

	text, datetime := m.create.values()
	if _, err := m.store.Create(text, datetime); err != nil {
		m.reportError(err)
		return m, nil
	}
	m.create.reset()
	m.syncList()
	m.taskList.Select(0)
	m.setStatus("Task added", statusInfo)
	return m, nil
}

// closeForm leaves the active form. The edit surface's refresher stops here
// on both save and cancel.
func (m model) closeForm(status string) (tea.Model, tea.Cmd) {
	if m.focus == focusEdit {
		m.edit.stopBound()
		m.edit = m.edit.blur()
	} else {
		m.create = m.create.blur()
	}
	m.focus = focusList
	m.syncList()
	if status != "" {
		m.setStatus(status, statusInfo)
	} else {
		m.setStatus("", statusNone)
	}
	return m, nil
}

func (m model) openEdit() (model, tea.Cmd) {
	item, ok := m.currentTaskItem()
	if !ok {
		return m, nil
	}
	m.edit.stopBound()
	m.edit = newTaskForm(formEdit)
	m.edit.setWidth(m.width)
	m.edit.load(item.task)
	m.edit.bound = minbound.Start(m.ctx, m.opts.RefreshInterval, m.opts.Now)
	m.edit.floor = minbound.Floor(m.opts.Now())
	m.focus = focusEdit
	m.setStatus("", statusNone)

	var focusCmd tea.Cmd
	m.edit, focusCmd = m.edit.focus()
	return m, tea.Batch(focusCmd, waitForBound(m.edit.bound))
}

func (m model) toggleSelected() model {
	item, ok := m.currentTaskItem()
	if !ok {
		return m
	}
	if _, err := m.store.Toggle(item.task.ID); err != nil {
		m.reportError(err)
		return m
	}
	m.syncList()
	m.selectTaskByID(item.task.ID)
	return m
}

func (m model) promptDelete() model {
	item, ok := m.currentTaskItem()
	if !ok {
		return m
	}
	m.modal = confirmModal{
		kind:        modalDelete,
		message:     task.DeletePrompt,
		confirmText: "Delete",
		cancelText:  "Cancel",
		selected:    1,
		taskID:      item.task.ID,
	}
	return m
}

func (m model) promptClear() model {
	filter := m.store.Filter()
	plan, err := m.store.PlanClear(filter)
	if err != nil {
		m.reportError(err)
		return m
	}
	if plan.Empty() {
		m.reportError(task.ErrNothingToClear)
		return m
	}
	m.modal = confirmModal{
		kind:        modalClear,
		message:     plan.Prompt,
		confirmText: fmt.Sprintf("Clear %d", len(plan.Remove)),
		cancelText:  "Cancel",
		selected:    1,
		filter:      filter,
	}
	return m
}

func (m model) setFilter(filter task.Filter) model {
	if err := m.store.SetFilter(filter); err != nil {
		m.reportError(err)
		return m
	}
	m.syncList()
	if len(m.taskList.Items()) > 0 {
		m.taskList.Select(0)
	}
	return m
}

func (m model) cycleFilter(delta int) model {
	filters := task.ValidFilters()
	current := 0
	for i, filter := range filters {
		if filter == m.store.Filter() {
			current = i
		}
	}
	next := (current + delta + len(filters)) % len(filters)
	return m.setFilter(filters[next])
}

func (m model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.width = size.Width
			m.height = size.Height
			m.resize()
		}
		return m, nil
	}
	if m.modal.kind == modalHelp {
		switch key.String() {
		case "?", "esc":
			m.modal = confirmModal{kind: modalNone}
			return m, nil
		case "ctrl+c", "q":
			m.shutdown()
			return m, tea.Quit
		}
		return m, nil
	}
	switch key.String() {
	case "left", "right", "tab", "shift+tab", "backtab":
		if m.modal.selected == 0 {
			m.modal.selected = 1
		} else {
			m.modal.selected = 0
		}
		return m, nil
	case "y":
		return m.resolveModal(true)
	case "n":
		return m.resolveModal(false)
	case "enter":
		return m.resolveModal(m.modal.selected == 0)
	case "esc":
		return m.resolveModal(false)
	case "ctrl+c":
		m.shutdown()
		return m, tea.Quit
	}
	return m, nil
}

func (m model) resolveModal(confirm bool) (tea.Model, tea.Cmd) {
	modal := m.modal
	m.modal = confirmModal{kind: modalNone}
	if !confirm {
		return m, nil
	}
	switch modal.kind {
	case modalDelete:
		removed, err := m.store.Delete(modal.taskID, task.Confirmed)
		if err != nil {
			m.reportError(err)
			return m, nil
		}
		m.syncList()
		if removed {
			m.setStatus("Task deleted", statusInfo)
		}
	case modalClear:
		cleared, err := m.store.ClearByFilter(modal.filter, task.Confirmed)
		if err != nil {
			m.reportError(err)
			return m, nil
		}
		m.syncList()
		m.setStatus(fmt.Sprintf("Cleared %d tasks", cleared), statusInfo)
	}
	return m, nil
}

func (m model) handleBound(msg boundMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.source == m.create.bound:
		m.create.floor = msg.at
		return m, waitForBound(m.create.bound)
	case msg.source == m.edit.bound && m.focus == focusEdit:
		m.edit.floor = msg.at
		return m, waitForBound(m.edit.bound)
	}
	// A refresher that was stopped already.
	return m, nil
}

// shutdown releases every resource the model started.
func (m *model) shutdown() {
	m.create.stopBound()
	m.edit.stopBound()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// syncList reloads the list from the latest rendered view and sizes it by density.
func (m *model) syncList() {
	view := m.sink.view
	selected, hasSelection := m.currentTaskItem()
	m.taskList.SetItems(taskItems(view.Tasks))
	m.taskList.Title = fmt.Sprintf("Tasks (%s, %d of %d)", view.Filter, len(view.Tasks), view.Total)
	m.taskList.SetShowPagination(view.Density == task.DensityScroll)
	if hasSelection {
		m.selectTaskByID(selected.task.ID)
	}
	m.resize()
}

func (m *model) resize() {
	width := m.width - 4
	if width < 1 {
		width = 1
	}
	// Title, blank line, rows, and pagination when scrolling.
	height := m.sink.view.Density.Rows() + 2
	if m.sink.view.Density == task.DensityScroll {
		height++
	}
	m.taskList.SetSize(width, height)
	m.create.setWidth(m.width)
	m.edit.setWidth(m.width)
}

func (m model) currentTaskItem() (taskItem, bool) {
	item := m.taskList.SelectedItem()
	if item == nil {
		return taskItem{}, false
	}
	current, ok := item.(taskItem)
	return current, ok
}

func (m *model) selectTaskByID(id int64) {
	for i, item := range m.taskList.Items() {
		if current, ok := item.(taskItem); ok && current.task.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

func (m *model) reportError(err error) {
	message := ui.ErrorMessage(err)
	if message == "" {
		m.setStatus("", statusNone)
		return
	}
	m.setStatus(message, statusError)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m model) renderTabs() string {
	labels := []struct {
		filter task.Filter
		label  string
	}{
		{task.FilterAll, "[1] All"},
		{task.FilterActive, "[2] Active"},
		{task.FilterCompleted, "[3] Completed"},
	}
	parts := make([]string, 0, len(labels))
	for _, tab := range labels {
		style := tabInactiveStyle
		if tab.filter == m.store.Filter() {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(tab.label))
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	helpHint := valueMuted.Render("Press ? for help")
	spacerWidth := m.width - lipgloss.Width(content) - lipgloss.Width(helpHint)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return tabBarStyle.Width(m.width).Render(content + strings.Repeat(" ", spacerWidth) + helpHint)
}

func (m model) renderPane(content string, focused bool) string {
	style := paneStyle
	if focused {
		style = paneActiveStyle
	}
	width := m.width - 2
	if width < 0 {
		width = 0
	}
	return style.Width(width).Render(content)
}

func (m model) renderHelpLine() string {
	return helpBarStyle.Render(ui.TruncateText(m.helpSummary(), m.width))
}

func (m model) helpSummary() string {
	if m.focus != focusList {
		return "Keys: tab next field | enter save | esc cancel"
	}
	return "Keys: up/down move | a add | space toggle | e edit | d delete | C clear | 1/2/3 filter | q quit"
}

func (m model) renderDetailLine() string {
	item, ok := m.currentTaskItem()
	if !ok {
		return valueMuted.Render("No tasks")
	}
	reminder := ui.FormatReminder(item.task, m.opts.DatetimeLayout)
	return valueMuted.Render(fmt.Sprintf("id %d | reminder %s", item.task.ID, reminder))
}

func (m model) renderStatusLine() string {
	if internalstrings.IsBlank(m.status) {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m model) renderModalOverlay(content string) string {
	if m.modal.kind == modalNone {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalView())
}

func (m model) modalView() string {
	modalStyle := lipgloss.NewStyle().Border(borderASCII).Padding(1, 2)
	if m.modal.kind == modalHelp {
		return modalStyle.Render(helpContent())
	}
	options := []string{m.modal.confirmText, m.modal.cancelText}
	buttons := make([]string, 0, len(options))
	for i, option := range options {
		style := valueMuted
		if i == m.modal.selected {
			style = selectedBorder
		}
		buttons = append(buttons, style.Render("["+option+"]"))
	}
	content := strings.Join([]string{m.modal.message, "", strings.Join(buttons, " ")}, "\n")
	return modalStyle.Render(content)
}

func helpContent() string {
	sections := []string{
		labelStyle.Render("Global"),
		"q or ctrl+c: quit",
		"1/2/3 or tab: switch filter",
		"?: toggle help",
		"",
		labelStyle.Render("Tasks"),
		"up/down or j/k: move selection",
		"a: add task",
		"space or x: toggle completed",
		"e or enter: edit task",
		"d: delete task",
		"C: clear tasks for the current filter",
		"",
		labelStyle.Render("Forms"),
		"tab: next field",
		"enter: save",
		"esc: cancel",
		"",
		labelStyle.Render("Help"),
		"press ? or esc to close",
	}
	return strings.Join(sections, "\n")
}

type boundMsg struct {
	source *minbound.Refresher
	at     time.Time
}

func waitForBound(r *minbound.Refresher) tea.Cmd {
	if r == nil {
		return nil
	}
	return func() tea.Msg {
		at, ok := <-r.C
		if !ok {
			return nil
		}
		return boundMsg{source: r, at: at}
	}
}
