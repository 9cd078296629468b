package core

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 15, 4, 5, 0, time.Local)
}

func TestDayCursorStartsToday(t *testing.T) {
	c := NewDayCursorAt(fixedNow)
	if !c.IsToday() {
		t.Fatalf("new cursor should start on today")
	}
	if c.Key() != "2026-09-01" {
		t.Fatalf("got key %q", c.Key())
	}
	if c.Label() != "Today" {
		t.Fatalf("got label %q", c.Label())
	}
}

func TestDayCursorNextClampsAtToday(t *testing.T) {
	c := NewDayCursorAt(fixedNow)
	c.Next()
	if !c.IsToday() {
		t.Fatalf("next on today must be a no-op")
	}
	c.Next()
	c.Next()
	if c.Key() != "2026-09-01" {
		t.Fatalf("cursor advanced past today: %q", c.Key())
	}
}

func TestDayCursorPreviousThenNext(t *testing.T) {
	c := NewDayCursorAt(fixedNow)
	c.Previous()
	if c.IsToday() {
		t.Fatalf("previous should leave today")
	}
	if c.Key() != "2026-08-31" {
		t.Fatalf("got key %q", c.Key())
	}
	if c.Label() != "Monday, August 31, 2026" {
		t.Fatalf("got label %q", c.Label())
	}
	c.Next()
	if !c.IsToday() || c.Key() != "2026-09-01" {
		t.Fatalf("previous then next should return to today, got %q", c.Key())
	}
}
