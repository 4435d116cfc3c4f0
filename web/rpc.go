package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/amonks/tasklist/internal/export"
	"github.com/amonks/tasklist/internal/ui"
	"github.com/amonks/tasklist/task"
)

type listRequest struct {
	Filter task.Filter `json:"filter"`
}

type createRequest struct {
	Text     string `json:"text"`
	Datetime string `json:"datetime"`
}

type editRequest struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Datetime string `json:"datetime"`
}

type idRequest struct {
	ID int64 `json:"id"`
}

type taskResponse struct {
	Task task.Task `json:"task"`
}

type deleteResponse struct {
	Deleted bool `json:"deleted"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	var payload listRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}
	filter, err := task.ParseFilter(string(payload.Filter))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	view := task.Render(s.store.Tasks(), filter)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, export.NewDocument(view))
}

func (s *Server) handleAPICreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}

	s.mu.Lock()
	created, err := s.store.Create(payload.Text, payload.Datetime)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: *created})
}

func (s *Server) handleAPIToggle(w http.ResponseWriter, r *http.Request) {
	var payload idRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}

	s.mu.Lock()
	toggled, err := s.store.Toggle(payload.ID)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if toggled == nil {
		s.writeStoreError(w, r, fmt.Errorf("%w: %d", task.ErrTaskNotFound, payload.ID))
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: *toggled})
}

func (s *Server) handleAPIEdit(w http.ResponseWriter, r *http.Request) {
	var payload editRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}

	s.mu.Lock()
	edited, err := s.store.Edit(payload.ID, payload.Text, payload.Datetime)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	if edited == nil {
		s.writeStoreError(w, r, fmt.Errorf("%w: %d", task.ErrTaskNotFound, payload.ID))
		return
	}
	writeJSON(w, http.StatusOK, taskResponse{Task: *edited})
}

// API callers confirm by calling, so destructive calls skip the prompt.
func (s *Server) handleAPIDelete(w http.ResponseWriter, r *http.Request) {
	var payload idRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}

	s.mu.Lock()
	deleted, err := s.store.Delete(payload.ID, task.Confirmed)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Deleted: deleted})
}

func (s *Server) handleAPIClear(w http.ResponseWriter, r *http.Request) {
	var payload listRequest
	if !s.decodeRequest(w, r, &payload) {
		return
	}
	filter, err := task.ParseFilter(string(payload.Filter))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	s.mu.Lock()
	removed, err := s.store.ClearByFilter(filter, task.Confirmed)
	s.mu.Unlock()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{Removed: removed})
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dest any) bool {
	if !requireMethod(w, r, http.MethodPost) {
		return false
	}
	if err := decodeJSON(r, dest); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if message := ui.ErrorMessage(err); message != "" && status != http.StatusInternalServerError {
		err = errors.New(message)
	}
	s.writeError(w, r, status, err)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, task.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, task.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, task.ErrNothingToClear):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	writeMethodNotAllowed(w, method)
	return false
}

func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if decoder.More() {
		return fmt.Errorf("unexpected extra JSON data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logf("%s %s: %d %v", r.Method, r.URL.Path, status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
