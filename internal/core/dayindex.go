package core

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey returns the local calendar day a timestamp falls on.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// GroupByDay buckets expenses by local calendar day. The index is derived
// data and is recomputed from the full list on every read; with hundreds to
// low thousands of records that is cheaper than keeping it incremental.
func GroupByDay(expenses []Expense) map[string][]Expense {
	groups := make(map[string][]Expense)
	for _, e := range expenses {
		key := DayKey(e.Date)
		groups[key] = append(groups[key], e)
	}
	return groups
}

// DaySummary is the aggregate over one day bucket.
type DaySummary struct {
	Total Money
	Count int
}

// SummarizeDay returns the aggregate for a day key. An absent key yields a
// zero summary.
func SummarizeDay(groups map[string][]Expense, key string) DaySummary {
	var s DaySummary
	for _, e := range groups[key] {
		s.Total.Cents += e.Amount.Cents
		s.Count++
	}
	return s
}
