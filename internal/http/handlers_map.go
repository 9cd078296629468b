package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"spendmap/internal/core"
)

type expenseMarker struct {
	ID           string  `json:"id"`
	Amount       string  `json:"amount"`
	Note         string  `json:"note"`
	Category     string  `json:"category"`
	Icon         string  `json:"icon"`
	Color        string  `json:"color"`
	LocationName string  `json:"locationName"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type dayExpensesResponse struct {
	Day      string          `json:"day"`
	ActiveID string          `json:"activeId"`
	Markers  []expenseMarker `json:"markers"`
}

// handleDayExpensesJSON feeds the map: one marker per expense on the browsed
// day, plus the id the list has focused so the map can center on it.
func (s *Server) handleDayExpensesJSON(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	key, _, _ := s.session.Day()
	bucket := core.GroupByDay(s.repo.List(r.Context()))[key]

	resp := dayExpensesResponse{
		Day:      key,
		ActiveID: s.session.ActiveID(),
		Markers:  make([]expenseMarker, 0, len(bucket)),
	}
	for _, e := range bucket {
		style := core.StyleFor(e.Category)
		resp.Markers = append(resp.Markers, expenseMarker{
			ID:           e.ID,
			Amount:       e.Amount.Display(),
			Note:         e.Note,
			Category:     e.Category,
			Icon:         style.Icon,
			Color:        style.Color,
			LocationName: e.LocationName,
			Latitude:     e.Geolocation.Latitude,
			Longitude:    e.Geolocation.Longitude,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode day expenses", "error", err)
	}
}
