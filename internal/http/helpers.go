package http

import (
	"context"

	"spendmap/internal/core"
)

type categoryView struct {
	Name  string
	Icon  string
	Color string
}

func categoryViews() []categoryView {
	out := make([]categoryView, 0, len(core.Categories))
	for _, c := range core.Categories {
		out = append(out, categoryView{Name: c.Name, Icon: c.Icon, Color: c.Color})
	}
	return out
}

func defaultCategoryName() string {
	return core.DefaultCategory()
}

type expenseItemView struct {
	ID           string
	Amount       string
	Note         string
	Category     string
	Icon         string
	Color        string
	LocationName string
	Time         string
	Active       bool
	Editing      bool
}

type dayViewData struct {
	DayKey   string
	DayLabel string
	IsToday  bool
	Total    string
	Count    int
	Expenses []expenseItemView
	Legend   []categoryView
	ActiveID string
}

// buildDayView assembles the view model for the currently browsed day. The
// day index is recomputed from the full list on every render.
func (s *Server) buildDayView(ctx context.Context) dayViewData {
	key, label, isToday := s.session.Day()
	groups := core.GroupByDay(s.repo.List(ctx))
	bucket := groups[key]
	summary := core.SummarizeDay(groups, key)
	activeID := s.session.ActiveID()
	editingID := s.session.EditingID()

	items := make([]expenseItemView, 0, len(bucket))
	for _, e := range bucket {
		style := core.StyleFor(e.Category)
		items = append(items, expenseItemView{
			ID:           e.ID,
			Amount:       e.Amount.Display(),
			Note:         e.Note,
			Category:     e.Category,
			Icon:         style.Icon,
			Color:        style.Color,
			LocationName: e.LocationName,
			Time:         e.Date.Local().Format("3:04 PM"),
			Active:       e.ID == activeID,
			Editing:      e.ID == editingID,
		})
	}

	return dayViewData{
		DayKey:   key,
		DayLabel: label,
		IsToday:  isToday,
		Total:    summary.Total.Display(),
		Count:    summary.Count,
		Expenses: items,
		Legend:   categoryViews(),
		ActiveID: activeID,
	}
}

// amountInputValue formats an amount for the edit form input, without the
// currency symbol.
func amountInputValue(m core.Money) string {
	return m.Decimal().StringFixed(2)
}
