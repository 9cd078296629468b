// Package repository owns the full expense list.
//
// Every mutation is followed synchronously by a full-list persist into a
// single storage slot. Persist failures are logged and swallowed; the
// in-memory list stays authoritative for the rest of the process lifetime.
package repository

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spendmap/internal/core"
	"spendmap/internal/storage"
)

// Slot is the storage slot holding the persisted expense array.
const Slot = "expenses"

type ExpenseRepository struct {
	mu    sync.Mutex
	store storage.SlotStore
	items []core.Expense
}

// Draft carries the user-entered fields of a new expense. ID, Date and
// Geolocation are assigned by Add.
type Draft struct {
	Amount       core.Money
	Note         string
	Category     string
	LocationName string
}

// Patch carries the editable fields of an update. Nil fields stay unchanged.
type Patch struct {
	Amount       *core.Money
	Note         *string
	Category     *string
	LocationName *string
}

// New loads the persisted expense list, defaulting to empty.
func New(ctx context.Context, store storage.SlotStore) *ExpenseRepository {
	r := &ExpenseRepository{store: store}
	var items []core.Expense
	if store.Read(ctx, Slot, &items) {
		r.items = items
	}
	slog.InfoContext(ctx, "Expense repository loaded", "count", len(r.items))
	return r
}

// Add assigns a fresh id, the given timestamp and position, appends the
// expense and persists the list.
func (r *ExpenseRepository) Add(ctx context.Context, d Draft, pos core.Geolocation, at time.Time) core.Expense {
	e := core.Expense{
		ID:           uuid.NewString(),
		Amount:       d.Amount,
		Note:         strings.TrimSpace(d.Note),
		Category:     d.Category,
		Date:         at,
		LocationName: d.LocationName,
		Geolocation:  pos,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, e)
	r.persist(ctx)

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"amount_cents", e.Amount.Cents,
		"category", e.Category,
		"location", e.LocationName)
	return e
}

// Update replaces only the patched fields. ID, Date and Geolocation are
// never touched. An unknown id is a no-op.
func (r *ExpenseRepository) Update(ctx context.Context, id string, p Patch) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		if p.Amount != nil {
			r.items[i].Amount = *p.Amount
		}
		if p.Note != nil {
			r.items[i].Note = strings.TrimSpace(*p.Note)
		}
		if p.Category != nil {
			r.items[i].Category = *p.Category
		}
		if p.LocationName != nil {
			r.items[i].LocationName = *p.LocationName
		}
		r.persist(ctx)
		slog.InfoContext(ctx, "Expense updated", "id", id)
		return
	}
	slog.WarnContext(ctx, "Update for unknown expense", "id", id)
}

// Remove deletes the matching expense. Removing an absent id is a no-op.
func (r *ExpenseRepository) Remove(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		r.items = append(r.items[:i], r.items[i+1:]...)
		r.persist(ctx)
		slog.InfoContext(ctx, "Expense removed", "id", id)
		return
	}
}

// List returns a snapshot copy of the full expense list.
func (r *ExpenseRepository) List(_ context.Context) []core.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Expense, len(r.items))
	copy(out, r.items)
	return out
}

// Get looks an expense up by id.
func (r *ExpenseRepository) Get(_ context.Context, id string) (core.Expense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.items {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}

func (r *ExpenseRepository) persist(ctx context.Context) {
	if err := r.store.Write(ctx, Slot, r.items); err != nil {
		slog.WarnContext(ctx, "Persist failed, continuing in memory",
			"error", err, "count", len(r.items))
	}
}
