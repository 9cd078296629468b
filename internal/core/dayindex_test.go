package core

import (
	"testing"
	"time"
)

func expenseOn(id string, day time.Time, cents int64) Expense {
	return Expense{
		ID:       id,
		Amount:   Money{Cents: cents},
		Note:     "n",
		Category: "Other",
		Date:     day,
	}
}

func TestGroupByDay(t *testing.T) {
	d1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	d1later := time.Date(2026, 9, 1, 22, 45, 0, 0, time.Local)
	d2 := time.Date(2026, 9, 2, 0, 0, 1, 0, time.Local)

	groups := GroupByDay([]Expense{
		expenseOn("a", d1, 2550),
		expenseOn("b", d1later, 450),
		expenseOn("c", d2, 1000),
	})

	if len(groups) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(groups))
	}
	if got := len(groups["2026-09-01"]); got != 2 {
		t.Fatalf("expected 2 expenses on 2026-09-01, got %d", got)
	}
	if got := len(groups["2026-09-02"]); got != 1 {
		t.Fatalf("expected 1 expense on 2026-09-02, got %d", got)
	}
	// Each expense lands in exactly one bucket.
	total := 0
	for _, bucket := range groups {
		total += len(bucket)
	}
	if total != 3 {
		t.Fatalf("expected 3 expenses across buckets, got %d", total)
	}
}

func TestSummarizeDay(t *testing.T) {
	d := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	groups := GroupByDay([]Expense{
		expenseOn("a", d, 2550),
		expenseOn("b", d, 450),
	})

	s := SummarizeDay(groups, "2026-09-01")
	if s.Count != 2 || s.Total.Cents != 3000 {
		t.Fatalf("unexpected summary %+v", s)
	}

	empty := SummarizeDay(groups, "1999-01-01")
	if empty.Count != 0 || empty.Total.Cents != 0 {
		t.Fatalf("absent day should be zero, got %+v", empty)
	}
}

func TestDayKeyUsesLocalDay(t *testing.T) {
	d := time.Date(2026, 9, 1, 23, 59, 0, 0, time.Local)
	if got := DayKey(d); got != "2026-09-01" {
		t.Fatalf("got %q", got)
	}
}
