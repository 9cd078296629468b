// Package session holds the browsing-view state: the day cursor and the
// expense selection. The app serves a single user, so one session exists for
// the process.
package session

import (
	"sync"
	"time"

	"spendmap/internal/core"
)

type Session struct {
	mu        sync.Mutex
	cursor    *core.DayCursor
	activeID  string
	editingID string
}

func New() *Session {
	return &Session{cursor: core.NewDayCursor()}
}

// NewAt injects the clock, for tests.
func NewAt(now func() time.Time) *Session {
	return &Session{cursor: core.NewDayCursorAt(now)}
}

// Navigate steps the day cursor. dir is "prev" or "next"; anything else is
// ignored.
func (s *Session) Navigate(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch dir {
	case "prev":
		s.cursor.Previous()
	case "next":
		s.cursor.Next()
	}
}

// Day describes the currently viewed calendar day.
func (s *Session) Day() (key, label string, isToday bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor.Key(), s.cursor.Label(), s.cursor.IsToday()
}

// SelectExpense marks an expense as the map focus. Selecting a different id
// replaces the previous one.
func (s *Session) SelectExpense(id string) {
	s.mu.Lock()
	s.activeID = id
	s.mu.Unlock()
}

func (s *Session) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// ActiveIn resolves the active id against the given day bucket. The id is
// looked up fresh on every read; a stale id resolves to nothing.
func (s *Session) ActiveIn(bucket []core.Expense) (core.Expense, bool) {
	id := s.ActiveID()
	if id == "" {
		return core.Expense{}, false
	}
	for _, e := range bucket {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}

// StartEditing opens the edit modal for an expense.
func (s *Session) StartEditing(id string) {
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
}

// StopEditing closes the edit modal (save or cancel).
func (s *Session) StopEditing() {
	s.mu.Lock()
	s.editingID = ""
	s.mu.Unlock()
}

func (s *Session) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// ExpenseRemoved clears any reference to a deleted expense, so the map focus
// and the edit modal never point at a record that is gone.
func (s *Session) ExpenseRemoved(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeID == id {
		s.activeID = ""
	}
	if s.editingID == id {
		s.editingID = ""
	}
}
