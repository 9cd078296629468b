package session

import (
	"testing"
	"time"

	"spendmap/internal/core"
)

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
}

func TestNavigateClampsAtToday(t *testing.T) {
	s := NewAt(fixedNow)

	s.Navigate("next")
	if _, _, isToday := s.Day(); !isToday {
		t.Fatalf("next on today must be a no-op")
	}

	s.Navigate("prev")
	key, label, isToday := s.Day()
	if isToday || key != "2026-08-31" {
		t.Fatalf("got key %q isToday=%v", key, isToday)
	}
	if label == "Today" {
		t.Fatalf("label should be a full date off today")
	}

	s.Navigate("next")
	if key, _, isToday := s.Day(); !isToday || key != "2026-09-01" {
		t.Fatalf("prev then next should return to today, got %q", key)
	}

	s.Navigate("sideways") // unknown directions are ignored
	if key, _, _ := s.Day(); key != "2026-09-01" {
		t.Fatalf("got key %q", key)
	}
}

func TestSelectionReplaces(t *testing.T) {
	s := NewAt(fixedNow)
	s.SelectExpense("a")
	s.SelectExpense("b")
	if got := s.ActiveID(); got != "b" {
		t.Fatalf("got %q", got)
	}
}

func TestActiveInLooksUpFresh(t *testing.T) {
	s := NewAt(fixedNow)
	bucket := []core.Expense{{ID: "a", Note: "old"}, {ID: "b"}}

	s.SelectExpense("a")
	e, ok := s.ActiveIn(bucket)
	if !ok || e.Note != "old" {
		t.Fatalf("got %+v, %v", e, ok)
	}

	// The bucket is recomputed on every mutation; a rebuilt record is found
	// by id, a removed one resolves to nothing.
	rebuilt := []core.Expense{{ID: "a", Note: "new"}}
	e, ok = s.ActiveIn(rebuilt)
	if !ok || e.Note != "new" {
		t.Fatalf("got %+v, %v", e, ok)
	}
	if _, ok := s.ActiveIn([]core.Expense{{ID: "b"}}); ok {
		t.Fatalf("stale id should resolve to nothing")
	}
}

func TestExpenseRemovedClearsReferences(t *testing.T) {
	s := NewAt(fixedNow)
	s.SelectExpense("a")
	s.StartEditing("a")

	s.ExpenseRemoved("a")
	if s.ActiveID() != "" {
		t.Fatalf("active selection should clear on delete")
	}
	if s.EditingID() != "" {
		t.Fatalf("edit modal should close on delete")
	}

	// Removing an unrelated id leaves the selection alone.
	s.SelectExpense("b")
	s.ExpenseRemoved("z")
	if s.ActiveID() != "b" {
		t.Fatalf("unrelated delete must not clear the selection")
	}
}

func TestEditingLifecycle(t *testing.T) {
	s := NewAt(fixedNow)
	s.StartEditing("a")
	if s.EditingID() != "a" {
		t.Fatalf("got %q", s.EditingID())
	}
	s.StopEditing()
	if s.EditingID() != "" {
		t.Fatalf("editing id should clear on close")
	}
}
