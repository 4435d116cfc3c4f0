package tasktui

import (
	"fmt"
	"io"
	"time"

	internalstrings "github.com/amonks/tasklist/internal/strings"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type taskItem struct {
	task task.Task
}

func (item taskItem) FilterValue() string {
	return item.task.Text
}

type taskItemDelegate struct {
	now           func() time.Time
	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	doneStyle     lipgloss.Style
	overdueStyle  lipgloss.Style
}

func newTaskItemDelegate(now func() time.Time) taskItemDelegate {
	return taskItemDelegate{
		now:           now,
		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")),
		doneStyle:     valueMuted,
		overdueStyle:  overdueStyle,
	}
}

func (d taskItemDelegate) Height() int                             { return 1 }
func (d taskItemDelegate) Spacing() int                            { return 0 }
func (d taskItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(taskItem)
	if !ok {
		return
	}

	now := d.now()
	line := formatTaskItem(item.task, now, m.Width())
	style := d.normalStyle
	switch {
	case index == m.Index():
		style = d.selectedStyle
	case item.task.Completed:
		style = d.doneStyle
	case item.task.Overdue(now):
		style = d.overdueStyle
	}
	fmt.Fprint(w, style.Render(line))
}

// formatTaskItem renders a task as a single list row.
func formatTaskItem(t task.Task, now time.Time, width int) string {
	line := fmt.Sprintf("%s %s", ui.StatusMark(t.Completed), internalstrings.NormalizeWhitespace(t.Text))
	if due := ui.FormatReminderDue(t, now); due != "-" {
		line = fmt.Sprintf("%s  (%s)", line, due)
	}
	return ui.TruncateText(line, width)
}

func taskItems(tasks []task.Task) []list.Item {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	return items
}
