// Package services orchestrates the expense capture flow.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"spendmap/internal/core"
	"spendmap/internal/geo"
	"spendmap/internal/geocode"
	"spendmap/internal/repository"
)

// ErrBusy is returned while a previous submission is still in flight.
var ErrBusy = errors.New("a submission is already in progress")

// ValidationError carries the transient message shown next to the form.
// Nothing has been written when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SensorError wraps a position failure with its user-facing message. The
// submission was aborted and nothing was written.
type SensorError struct {
	Cause   error
	Message string
}

func (e *SensorError) Error() string { return e.Message }
func (e *SensorError) Unwrap() error { return e.Cause }

// Input is the user-entered part of a submission.
type Input struct {
	Amount   string
	Note     string
	Category string
}

// CaptureService turns form input into persisted expenses:
// validate, acquire the device position, resolve a place name, commit.
// At most one submission is in flight at a time; further submissions get
// ErrBusy until the current one settles.
type CaptureService struct {
	repo     *repository.ExpenseRepository
	resolver geocode.Resolver
	now      func() time.Time
	inFlight atomic.Bool
}

func NewCaptureService(repo *repository.ExpenseRepository, resolver geocode.Resolver) *CaptureService {
	return &CaptureService{repo: repo, resolver: resolver, now: time.Now}
}

// Create runs the full capture flow for a new expense. The locator is the
// device sensor for this submission; its failure aborts the flow, while a
// failed place name lookup degrades to a fallback label and still commits.
func (s *CaptureService) Create(ctx context.Context, in Input, locator geo.Locator) (core.Expense, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return core.Expense{}, ErrBusy
	}
	defer s.inFlight.Store(false)

	draft, err := validate(in)
	if err != nil {
		return core.Expense{}, err
	}

	fix, err := locator.CurrentPosition(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Position fix failed, expense not saved", "error", err)
		return core.Expense{}, &SensorError{Cause: err, Message: geo.FailureMessage(err)}
	}

	draft.LocationName = s.resolver.PlaceName(ctx, fix)

	pos := core.Geolocation{Latitude: fix.Latitude, Longitude: fix.Longitude}
	return s.repo.Add(ctx, draft, pos, s.now()), nil
}

// Edit validates and applies an update to an existing expense. Edits keep
// the original position and never re-run the place name lookup.
func (s *CaptureService) Edit(ctx context.Context, id string, in Input) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.inFlight.Store(false)

	draft, err := validate(in)
	if err != nil {
		return err
	}

	s.repo.Update(ctx, id, repository.Patch{
		Amount:   &draft.Amount,
		Note:     &draft.Note,
		Category: &draft.Category,
	})
	return nil
}

func validate(in Input) (repository.Draft, error) {
	amount, err := core.ParseAmount(in.Amount)
	if err != nil {
		return repository.Draft{}, &ValidationError{Message: "Please enter a valid amount."}
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = core.DefaultCategory()
	}

	d := repository.Draft{
		Amount:   amount,
		Note:     strings.TrimSpace(in.Note),
		Category: category,
	}
	probe := core.Expense{Amount: d.Amount, Note: d.Note, Category: d.Category}
	if err := probe.Validate(); err != nil {
		if errors.Is(err, core.ErrEmptyNote) {
			return repository.Draft{}, &ValidationError{Message: "Please describe what this was for."}
		}
		return repository.Draft{}, &ValidationError{Message: err.Error()}
	}
	return d, nil
}
