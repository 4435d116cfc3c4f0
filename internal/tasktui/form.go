package tasktui

import (
	"fmt"
	"strings"
	"time"

	"github.com/amonks/tasklist/internal/minbound"
	"github.com/amonks/tasklist/task"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formKind int

const (
	formCreate formKind = iota
	formEdit
)

type formField int

const (
	fieldText formField = iota
	fieldDatetime
)

// taskForm holds the text and reminder inputs shared by the new-task form
// and the edit surface. bound keeps floor current while the form is open.
type taskForm struct {
	kind     formKind
	taskID   int64
	text     textinput.Model
	datetime textinput.Model
	field    formField
	focused  bool
	bound    *minbound.Refresher
	floor    time.Time
}

func newTaskForm(kind formKind) taskForm {
	text := textinput.New()
	text.Prompt = ""
	text.Placeholder = "What needs doing?"

	datetime := textinput.New()
	datetime.Prompt = ""
	datetime.Placeholder = "YYYY-MM-DD HH:MM"
	datetime.CharLimit = len("2006-01-02 15:04")

	return taskForm{kind: kind, text: text, datetime: datetime}
}

// load fills the form from an existing task.
func (f *taskForm) load(t task.Task) {
	f.taskID = t.ID
	f.text.SetValue(t.Text)
	f.datetime.SetValue(strings.Replace(t.Datetime, "T", " ", 1))
	f.field = fieldText
}

func (f *taskForm) reset() {
	f.text.SetValue("")
	f.datetime.SetValue("")
	f.field = fieldText
}

func (f taskForm) values() (string, string) {
	return f.text.Value(), f.datetime.Value()
}

func (f taskForm) focus() (taskForm, tea.Cmd) {
	f.focused = true
	return f.focusField(f.field)
}

func (f taskForm) blur() taskForm {
	f.focused = false
	f.text.Blur()
	f.datetime.Blur()
	return f
}

func (f taskForm) focusField(field formField) (taskForm, tea.Cmd) {
	f.field = field
	if field == fieldText {
		f.datetime.Blur()
		return f, f.text.Focus()
	}
	f.text.Blur()
	return f, f.datetime.Focus()
}

func (f taskForm) advance() (taskForm, tea.Cmd) {
	if f.field == fieldText {
		return f.focusField(fieldDatetime)
	}
	return f.focusField(fieldText)
}

func (f taskForm) update(msg tea.Msg) (taskForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.field == fieldText {
		f.text, cmd = f.text.Update(msg)
	} else {
		f.datetime, cmd = f.datetime.Update(msg)
	}
	return f, cmd
}

func (f *taskForm) setWidth(width int) {
	inputWidth := width - 14
	if inputWidth < 10 {
		inputWidth = 10
	}
	f.text.Width = inputWidth
	f.datetime.Width = inputWidth
}

// stopBound ends the refresher. Every path that closes the form calls it.
func (f *taskForm) stopBound() {
	f.bound.Stop()
	f.bound = nil
}

func (f taskForm) view(title string) string {
	lines := []string{
		labelStyle.Render(title),
		fmt.Sprintf("%s %s", labelStyle.Render("Task:    "), f.text.View()),
		fmt.Sprintf("%s %s", labelStyle.Render("Reminder:"), f.datetime.View()),
	}
	if !f.floor.IsZero() {
		lines = append(lines, valueMuted.Render("Reminders must be after "+f.floor.Format("2006-01-02 15:04")))
	}
	return strings.Join(lines, "\n")
}
