package web

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nursedesk/internal/core"
)

// handleRoot is a liveness message for humans poking the API root.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Nurse Management API is running",
	})
}

// handleHealth pings the store so load balancers see real readiness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Ping(r.Context()); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListNurses returns records matching the search/sort query
// parameters. Unknown sort fields fall back to id; anything but "asc"
// sorts descending.
func (s *Server) handleListNurses(w http.ResponseWriter, r *http.Request) {
	q := core.ListQuery{
		SearchText: r.URL.Query().Get("search"),
		SortField:  r.URL.Query().Get("sortField"),
		SortOrder:  r.URL.Query().Get("sortOrder"),
	}

	nurses, err := s.service.List(r.Context(), q)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if nurses == nil {
		nurses = []core.Nurse{}
	}
	writeJSON(w, http.StatusOK, nurses)
}

// handleGetNurse returns a single record by id.
func (s *Server) handleGetNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	nurse, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nurse)
}

// mutationResponse wraps a confirmation message with the resulting
// record so clients can refresh their list without a second fetch.
type mutationResponse struct {
	ID      int64      `json:"id"`
	Message string     `json:"message"`
	Nurse   core.Nurse `json:"nurse"`
}

// handleCreateNurse validates and inserts a new record.
func (s *Server) handleCreateNurse(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	nurse, err := s.service.Create(r.Context(), in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mutationResponse{
		ID:      nurse.ID,
		Message: "Nurse created successfully",
		Nurse:   nurse,
	})
}

// handleUpdateNurse validates and rewrites an existing record.
func (s *Server) handleUpdateNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	nurse, err := s.service.Update(r.Context(), id, in)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mutationResponse{
		ID:      nurse.ID,
		Message: "Nurse updated successfully",
		Nurse:   nurse,
	})
}

// handleDeleteNurse removes a record. Deleting the same id twice yields
// 404 on the second call, same as deleting an id that never existed.
func (s *Server) handleDeleteNurse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Nurse deleted successfully",
	})
}

// parseID extracts the {id} route parameter. A non-numeric id can never
// address a record, so it is rejected up front.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "invalid nurse id")
		return 0, false
	}
	return id, true
}

// decodeInput reads and decodes the JSON payload for create/update.
func decodeInput(w http.ResponseWriter, r *http.Request) (core.NurseInput, bool) {
	var in core.NurseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return core.NurseInput{}, false
	}
	return in, true
}
