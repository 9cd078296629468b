package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Events announced to the browser via HX-Trigger. The map script listens for
// these to refresh its markers.
const (
	eventExpenseCreated = "expense:created"
	eventExpenseUpdated = "expense:updated"
	eventExpenseDeleted = "expense:deleted"
	eventDayChanged     = "day:changed"
)

// setTrigger attaches an htmx trigger header carrying a JSON payload, so the
// client can react to a mutation without another round trip to find out what
// changed.
func setTrigger(w http.ResponseWriter, event string, payload any) {
	body, err := json.Marshal(map[string]any{event: payload})
	if err != nil {
		slog.Warn("Failed to encode trigger payload", "event", event, "error", err)
		w.Header().Set("HX-Trigger", event)
		return
	}
	w.Header().Set("HX-Trigger", string(body))
}

type expenseEvent struct {
	ID  string `json:"id"`
	Day string `json:"day"`
}
