// Package export turns record lists into JSON and CSV snapshots. Encoding
// is pure; writing the result to disk is the CLI counterpart of a browser
// download and kept separate.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/storyline-app/storyline-cli/internal/client/models"
)

// columns is the fixed CSV column order declared by the export schema.
var columns = []string{"id", "title", "amount", "type", "category", "date", "paid", "notes", "location"}

// row is the sanitized export shape: field names are normalized and absent
// optional fields become empty strings rather than being dropped.
type row struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Paid     bool    `json:"paid"`
	Notes    string  `json:"notes"`
	Location string  `json:"location"`
}

func sanitize(records []models.Record) []row {
	rows := make([]row, 0, len(records))
	for _, r := range records {
		date := ""
		if !r.Date.IsZero() {
			date = r.Date.Format(time.RFC3339)
		}
		rows = append(rows, row{
			ID:       r.ID,
			Title:    r.Title,
			Amount:   r.Amount,
			Type:     string(r.Type),
			Category: r.Category,
			Date:     date,
			Paid:     r.Paid,
			Notes:    r.Notes,
			Location: r.Location,
		})
	}
	return rows
}

// ToJSON encodes the sanitized records as pretty-printed JSON with 2-space
// indentation.
func ToJSON(records []models.Record) ([]byte, error) {
	data, err := json.MarshalIndent(sanitize(records), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

// FromJSON is the inverse of ToJSON: it reads an exported snapshot back
// into records.
func FromJSON(data []byte) ([]models.Record, error) {
	var rows []row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, models.Record{
			ID:       r.ID,
			Title:    r.Title,
			Amount:   r.Amount,
			Type:     models.RecordType(r.Type),
			Category: r.Category,
			Date:     models.ParseWhen(r.Date),
			Paid:     r.Paid,
			Notes:    r.Notes,
			Location: r.Location,
		})
	}
	return records, nil
}

// ToCSV encodes the records with the fixed column order. Values containing
// a comma, double quote, or newline are quoted with internal quotes
// doubled; everything else is written bare.
func ToCSV(records []models.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range sanitize(records) {
		rec := []string{
			r.ID,
			r.Title,
			strconv.FormatFloat(r.Amount, 'f', -1, 64),
			r.Type,
			r.Category,
			r.Date,
			strconv.FormatBool(r.Paid),
			r.Notes,
			r.Location,
		}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveJSON writes a JSON snapshot to path.
func SaveJSON(path string, records []models.Record) error {
	data, err := ToJSON(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// SaveCSV writes a CSV snapshot to path.
func SaveCSV(path string, records []models.Record) error {
	data, err := ToCSV(records)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
