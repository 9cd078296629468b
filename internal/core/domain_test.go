package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Amount:   Money{Cents: 2550},
		Note:     "Lunch",
		Category: "Food & Dining",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Amount: Money{Cents: 0}, Note: "a", Category: "Other"},
		{Amount: Money{Cents: -100}, Note: "a", Category: "Other"},
		{Amount: Money{Cents: 100}, Note: "", Category: "Other"},
		{Amount: Money{Cents: 100}, Note: "   ", Category: "Other"},
		{Amount: Money{Cents: 100}, Note: "a", Category: ""},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseJSONLayout(t *testing.T) {
	e := Expense{
		ID:           "abc-123",
		Amount:       Money{Cents: 2550},
		Note:         "Lunch",
		Category:     "Food & Dining",
		Date:         time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC),
		LocationName: "Quincy Market",
		Geolocation:  Geolocation{Latitude: 42.36, Longitude: -71.06},
	}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "amount", "note", "category", "date", "locationName", "geolocation"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("missing key %q in %s", key, raw)
		}
	}
	if m["amount"] != 25.5 {
		t.Fatalf("amount should be a plain number, got %v", m["amount"])
	}
	loc, ok := m["geolocation"].(map[string]any)
	if !ok {
		t.Fatalf("geolocation should be an object, got %v", m["geolocation"])
	}
	if loc["latitude"] != 42.36 || loc["longitude"] != -71.06 {
		t.Fatalf("unexpected geolocation %v", loc)
	}

	var back Expense
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if back.Amount.Cents != 2550 || back.ID != e.ID || !back.Date.Equal(e.Date) {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestCategoryCatalog(t *testing.T) {
	if len(Categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(Categories))
	}
	if DefaultCategory() != "Food & Dining" {
		t.Fatalf("default category should be the first entry, got %q", DefaultCategory())
	}

	known := StyleFor("Transportation")
	if known.Icon != "🚗" || known.Color != "#74b9ff" {
		t.Fatalf("unexpected style %+v", known)
	}

	unknown := StyleFor("Bribes")
	if unknown.Name != "Bribes" {
		t.Fatalf("fallback should keep the label, got %q", unknown.Name)
	}
	if unknown.Icon != "📎" || unknown.Color != "#dfe6e9" {
		t.Fatalf("unexpected fallback style %+v", unknown)
	}
}
