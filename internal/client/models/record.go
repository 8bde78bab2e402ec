// Package models defines the record types exchanged with the Storyline
// backend and the value objects used to filter them locally.
package models

import (
	"encoding/json"
	"time"
)

// RecordType classifies a record. The set is closed: the backend only ever
// produces these four values.
type RecordType string

const (
	TypeIncome   RecordType = "income"
	TypeExpense  RecordType = "expense"
	TypeSchedule RecordType = "schedule"
	TypeTask     RecordType = "task"
)

// Record is a generic entity returned by the backend: an item, a schedule
// entry, or a transaction. Optional fields default to empty/zero so they can
// be compared without nil checks.
type Record struct {
	ID       string
	Title    string
	Amount   float64
	Type     RecordType
	Category string
	Date     time.Time
	Paid     bool
	Notes    string
	Location string
}

// recordWire mirrors the field-name variants seen across backend versions.
// Older responses use flow/created_at/memo, newer ones type/date/notes.
type recordWire struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Type        string   `json:"type"`
	Flow        string   `json:"flow"`
	Category    string   `json:"category"`
	Date        any      `json:"date"`
	CreatedAt   any      `json:"created_at"`
	TS          any      `json:"ts"`
	IsPaid      *bool    `json:"is_paid"`
	Paid        *bool    `json:"paid"`
	IsDone      *bool    `json:"is_done"`
	Notes       string   `json:"notes"`
	Memo        string   `json:"memo"`
	Note        string   `json:"note"`
	Location    string   `json:"location"`
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var w recordWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	r.ID = w.ID
	r.Title = w.Title
	if r.Title == "" {
		r.Title = w.Description
	}
	r.Amount = w.Amount

	typ := w.Type
	if typ == "" {
		typ = w.Flow
	}
	r.Type = RecordType(typ)

	r.Category = w.Category

	when := w.Date
	if when == nil {
		when = w.CreatedAt
	}
	if when == nil {
		when = w.TS
	}
	r.Date = ParseWhen(when)

	switch {
	case w.IsPaid != nil:
		r.Paid = *w.IsPaid
	case w.Paid != nil:
		r.Paid = *w.Paid
	case w.IsDone != nil:
		r.Paid = *w.IsDone
	}

	r.Notes = w.Notes
	if r.Notes == "" {
		r.Notes = w.Memo
	}
	if r.Notes == "" {
		r.Notes = w.Note
	}
	r.Location = w.Location

	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	type wire struct {
		ID       string  `json:"id,omitempty"`
		Title    string  `json:"title"`
		Amount   float64 `json:"amount"`
		Type     string  `json:"type,omitempty"`
		Category string  `json:"category,omitempty"`
		Date     string  `json:"date,omitempty"`
		IsPaid   bool    `json:"is_paid,omitempty"`
		Notes    string  `json:"notes,omitempty"`
		Location string  `json:"location,omitempty"`
	}

	w := wire{
		ID:       r.ID,
		Title:    r.Title,
		Amount:   r.Amount,
		Type:     string(r.Type),
		Category: r.Category,
		IsPaid:   r.Paid,
		Notes:    r.Notes,
		Location: r.Location,
	}
	if !r.Date.IsZero() {
		w.Date = r.Date.Format(time.RFC3339)
	}
	return json.Marshal(w)
}
