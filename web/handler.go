package web

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/amonks/tasklist/internal/minbound"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

var errMissingTaskID = errors.New("task id is required")

type templateWrapper struct {
	tmpl *template.Template
}

func newTemplateWrapper() *templateWrapper {
	return &templateWrapper{tmpl: newTemplates()}
}

func (tw *templateWrapper) Render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = tw.tmpl.ExecuteTemplate(w, "page", data)
}

type filterTab struct {
	Value  string
	Label  string
	Active bool
}

type taskRow struct {
	ID        string
	Text      string
	Datetime  string
	Reminder  string
	Due       string
	Completed bool
	Overdue   bool
}

type formValues struct {
	Text     string
	Datetime string
}

type pageData struct {
	Filter         string
	Filters        []filterTab
	Tasks          []taskRow
	Total          int
	Density        string
	SelectedID     string
	Selected       *taskRow
	CreateForm     formValues
	EditForm       formValues
	MinDatetime    string
	CreateError    string
	EditError      string
	Confirm        string
	ConfirmMessage string
}

// formDraft carries a rejected submission across the redirect back to the page.
type formDraft struct {
	mode   string
	id     string
	err    string
	values formValues
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if value := trimmedQueryValue(r, "filter"); value != "" {
		filter, err := task.ParseFilter(value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.store.SetFilter(filter); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	now := s.now()
	view := s.store.Render()
	data := pageData{
		Filter:      string(view.Filter),
		Filters:     filterTabs(view.Filter),
		Tasks:       s.taskRows(view.Tasks),
		Total:       view.Total,
		Density:     view.Density.String(),
		MinDatetime: minbound.Floor(now).Format(task.DatetimeLayout),
	}

	selectedID := trimmedQueryValue(r, "id")
	data.Selected = selectRow(data.Tasks, selectedID)
	if data.Selected != nil {
		data.SelectedID = selectedID
		data.EditForm = formValues{Text: data.Selected.Text, Datetime: data.Selected.Datetime}
	}

	if draft := s.consumeDraft(data.SelectedID); draft != nil {
		if draft.mode == "create" {
			data.CreateError = draft.err
			data.CreateForm = draft.values
		} else {
			data.EditError = draft.err
			data.EditForm = draft.values
		}
	}

	switch trimmedQueryValue(r, "confirm") {
	case "delete":
		if data.Selected != nil {
			data.Confirm = "delete"
			data.ConfirmMessage = task.DeletePrompt
		}
	case "clear":
		plan, err := s.store.PlanClear(view.Filter)
		if err == nil && !plan.Empty() {
			data.Confirm = "clear"
			data.ConfirmMessage = plan.Prompt
		}
	}

	s.templates.Render(w, data)
}

func (s *Server) handleTasksCreate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.setDraft(formDraft{mode: "create", err: "invalid form input"})
		http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
		return
	}
	values := formValuesFromRequest(r)

	s.mu.Lock()
	created, err := s.store.Create(values.Text, values.Datetime)
	s.mu.Unlock()
	if err != nil {
		if message := ui.ErrorMessage(err); message != "" {
			s.setDraft(formDraft{mode: "create", err: message, values: values})
		}
		http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, taskRedirectPath(strconv.FormatInt(created.ID, 10)), http.StatusSeeOther)
}

func (s *Server) handleTasksToggle(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	id, idText, ok := s.requireTaskID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	_, err := s.store.Toggle(id)
	s.mu.Unlock()
	if err != nil {
		s.setDraft(formDraft{mode: "update", id: idText, err: ui.ErrorMessage(err)})
	}
	http.Redirect(w, r, taskRedirectPath(idText), http.StatusSeeOther)
}

func (s *Server) handleTasksUpdate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	id, idText, ok := s.requireTaskID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		s.setDraft(formDraft{mode: "update", id: idText, err: "invalid form input"})
		http.Redirect(w, r, taskRedirectPath(idText), http.StatusSeeOther)
		return
	}
	values := formValuesFromRequest(r)

	s.mu.Lock()
	_, err := s.store.Edit(id, values.Text, values.Datetime)
	s.mu.Unlock()
	if err != nil {
		if message := ui.ErrorMessage(err); message != "" {
			s.setDraft(formDraft{mode: "update", id: idText, err: message, values: values})
		}
	}
	http.Redirect(w, r, taskRedirectPath(idText), http.StatusSeeOther)
}

func (s *Server) handleTasksDelete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	id, idText, ok := s.requireTaskID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil || r.FormValue("confirm") != "yes" {
		http.Redirect(w, r, taskRedirectPath(idText)+"&confirm=delete", http.StatusSeeOther)
		return
	}

	s.mu.Lock()
	_, err := s.store.Delete(id, task.Confirmed)
	s.mu.Unlock()
	if err != nil {
		s.setDraft(formDraft{mode: "update", err: ui.ErrorMessage(err)})
	}
	http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
}

func (s *Server) handleTasksClear(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	confirmed := r.ParseForm() == nil && r.FormValue("confirm") == "yes"

	s.mu.Lock()
	defer s.mu.Unlock()

	filter := s.store.Filter()
	if !confirmed {
		plan, err := s.store.PlanClear(filter)
		if err == nil && plan.Empty() {
			err = task.ErrNothingToClear
		}
		if err != nil {
			s.draft = &formDraft{mode: "update", err: ui.ErrorMessage(err)}
			http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/web/tasks?confirm=clear", http.StatusSeeOther)
		return
	}

	if _, err := s.store.ClearByFilter(filter, task.Confirmed); err != nil {
		s.draft = &formDraft{mode: "update", err: ui.ErrorMessage(err)}
	}
	http.Redirect(w, r, "/web/tasks", http.StatusSeeOther)
}

func (s *Server) requireTaskID(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	idText := trimmedQueryValue(r, "id")
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, errMissingTaskID.Error(), http.StatusBadRequest)
		return 0, "", false
	}
	return id, idText, true
}

func (s *Server) taskRows(tasks []task.Task) []taskRow {
	now := s.now()
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow{
			ID:        strconv.FormatInt(t.ID, 10),
			Text:      t.Text,
			Datetime:  t.Datetime,
			Reminder:  ui.FormatReminder(t, s.layout),
			Due:       ui.FormatReminderDue(t, now),
			Completed: t.Completed,
			Overdue:   t.Overdue(now) && !t.Completed,
		})
	}
	return rows
}

// consumeDraft returns the pending draft if it belongs on the page being
// rendered. Callers hold mu.
func (s *Server) consumeDraft(selectedID string) *formDraft {
	if s.draft == nil {
		return nil
	}
	draft := s.draft
	if draft.mode == "update" && draft.id != "" && draft.id != selectedID {
		return nil
	}
	s.draft = nil
	return draft
}

func (s *Server) setDraft(draft formDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &draft
}

func filterTabs(active task.Filter) []filterTab {
	tabs := make([]filterTab, 0, len(task.ValidFilters()))
	for _, filter := range task.ValidFilters() {
		value := string(filter)
		tabs = append(tabs, filterTab{
			Value:  value,
			Label:  strings.ToUpper(value[:1]) + value[1:],
			Active: filter == active,
		})
	}
	return tabs
}

func selectRow(rows []taskRow, id string) *taskRow {
	if id == "" {
		return nil
	}
	for i := range rows {
		if rows[i].ID == id {
			return &rows[i]
		}
	}
	return nil
}

func formValuesFromRequest(r *http.Request) formValues {
	return formValues{
		Text:     r.FormValue("text"),
		Datetime: trimmedFormValue(r, "datetime"),
	}
}

func trimmedQueryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func trimmedFormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func taskRedirectPath(id string) string {
	if id == "" {
		return "/web/tasks"
	}
	return "/web/tasks?id=" + url.QueryEscape(id)
}
