package http

import (
	"log/slog"
	"net/http"
)

// renderDayView writes the day browsing partial: header with navigation,
// daily summary, the expense list and the category legend.
func (s *Server) renderDayView(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	data := s.buildDayView(r.Context())
	if err := s.templates.ExecuteTemplate(w, "day_view.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Day view template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDayView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if nav := r.URL.Query().Get("nav"); nav != "" {
		s.session.Navigate(nav)
		key, _, _ := s.session.Day()
		setTrigger(w, eventDayChanged, map[string]string{"day": key})
	}

	s.renderDayView(w, r)
}

// handleSelectExpense marks an expense as the map focus and re-renders the
// list so the highlight follows.
func (s *Server) handleSelectExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing expense id", http.StatusBadRequest)
		return
	}

	s.session.SelectExpense(id)
	s.renderDayView(w, r)
}

type editModalData struct {
	ID         string
	Amount     string
	Note       string
	Category   string
	Categories []categoryView
}

func (s *Server) handleEditModal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := r.URL.Query().Get("id")
	e, ok := s.repo.Get(r.Context(), id)
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	s.session.StartEditing(id)

	data := editModalData{
		ID:         e.ID,
		Amount:     amountInputValue(e.Amount),
		Note:       e.Note,
		Category:   e.Category,
		Categories: categoryViews(),
	}
	if err := s.templates.ExecuteTemplate(w, "edit_modal.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Edit modal template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleEditClose cancels an edit. The empty body clears the modal slot.
func (s *Server) handleEditClose(w http.ResponseWriter, r *http.Request) {
	s.session.StopEditing()
	w.WriteHeader(http.StatusOK)
}
