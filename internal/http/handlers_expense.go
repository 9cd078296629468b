package http

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"spendmap/internal/core"
	"spendmap/internal/geo"
	"spendmap/internal/services"
)

// deviceLocator turns the position fields relayed by the browser into a
// Locator for this submission. The browser either sends a fix
// (latitude/longitude) or names the sensor failure it hit (geo_error).
func (s *Server) deviceLocator(form url.Values) geo.Locator {
	if cause := form.Get("geo_error"); cause != "" {
		switch cause {
		case "permission-denied":
			return geo.Unavailable(geo.ErrPermissionDenied)
		case "timeout":
			return geo.Unavailable(geo.ErrTimeout)
		default:
			return geo.Unavailable(geo.ErrPositionUnavailable)
		}
	}

	lat, latErr := strconv.ParseFloat(form.Get("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(form.Get("longitude"), 64)
	if latErr != nil || lonErr != nil {
		return geo.Unavailable(geo.ErrPositionUnavailable)
	}
	return geo.WithTimeout(geo.Fixed(geo.Fix{Latitude: lat, Longitude: lon}), s.locateWait)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	in := services.Input{
		Amount:   r.FormValue("amount"),
		Note:     r.FormValue("note"),
		Category: r.FormValue("category"),
	}

	e, err := s.capture.Create(r.Context(), in, s.deviceLocator(r.Form))
	if err != nil {
		s.renderCaptureError(w, r, err)
		return
	}

	setTrigger(w, eventExpenseCreated, expenseEvent{ID: e.ID, Day: core.DayKey(e.Date)})
	s.renderDayView(w, r)
}

func (s *Server) handleEditExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	e, ok := s.repo.Get(r.Context(), id)
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	in := services.Input{
		Amount:   r.FormValue("amount"),
		Note:     r.FormValue("note"),
		Category: r.FormValue("category"),
	}
	if err := s.capture.Edit(r.Context(), id, in); err != nil {
		s.renderCaptureError(w, r, err)
		return
	}

	s.session.StopEditing()
	setTrigger(w, eventExpenseUpdated, expenseEvent{ID: id, Day: core.DayKey(e.Date)})
	s.renderDayView(w, r)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	// Deletion is permanent, so it only runs with an explicit confirmation
	// flag from the dialog.
	if r.FormValue("confirm") != "true" {
		http.Error(w, "Deletion requires confirmation", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	e, ok := s.repo.Get(r.Context(), id)
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	s.repo.Remove(r.Context(), id)
	s.session.ExpenseRemoved(id)

	setTrigger(w, eventExpenseDeleted, expenseEvent{ID: id, Day: core.DayKey(e.Date)})
	s.renderDayView(w, r)
}

// renderCaptureError maps capture failures to a transient message fragment.
// Validation and sensor failures are expected outcomes, not server errors,
// so they render at 422 into the form's message slot.
func (s *Server) renderCaptureError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *services.ValidationError
	var sErr *services.SensorError

	// htmx swaps these into the form's message slot instead of the handler's
	// usual target. The page script whitelists 409 and 422 for swapping.
	w.Header().Set("HX-Retarget", "#form-message")
	w.Header().Set("HX-Reswap", "outerHTML")

	var message string
	switch {
	case errors.As(err, &vErr):
		message = vErr.Message
	case errors.As(err, &sErr):
		message = sErr.Message
	case errors.Is(err, services.ErrBusy):
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintf(w, `<div id="form-message" class="form-message error">%s</div>`,
			template.HTMLEscapeString("Still saving the previous expense. Hold on."))
		return
	default:
		slog.ErrorContext(r.Context(), "Capture failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	fmt.Fprintf(w, `<div id="form-message" class="form-message error">%s</div>`,
		template.HTMLEscapeString(message))
}
