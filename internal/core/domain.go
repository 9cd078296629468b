package core

import (
	"errors"
	"strings"
	"time"
)

type (
	// Geolocation is the device position captured when an expense is
	// recorded. It is assigned once and never mutated by edits.
	Geolocation struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}

	// Expense is one recorded spending event. ID, Date and Geolocation are
	// fixed at creation; edits may only replace Amount, Note, Category and
	// LocationName.
	Expense struct {
		ID           string      `json:"id"`
		Amount       Money       `json:"amount"`
		Note         string      `json:"note"`
		Category     string      `json:"category"`
		Date         time.Time   `json:"date"`
		LocationName string      `json:"locationName"`
		Geolocation  Geolocation `json:"geolocation"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyNote     = errors.New("empty note")
	ErrEmptyCategory = errors.New("empty category")
)

func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(e.Note)) == 0 {
		return ErrEmptyNote
	}
	if len(e.Note) > 200 {
		return errors.New("note too long (max 200 characters)")
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}
