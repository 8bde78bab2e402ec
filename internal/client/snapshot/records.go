package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/storyline-app/storyline-cli/internal/dbx"
)

// RecordRepository persists the last-fetched record set. Dates are stored
// as RFC 3339 text; a zero date is stored as the empty string.
type RecordRepository struct {
	db dbx.DBTX
}

func NewRecordRepository(db dbx.DBTX) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) upsert(ctx context.Context, rec models.Record) error {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format(time.RFC3339)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (id, title, amount, type, category, date, paid, notes, location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title,
			amount = excluded.amount,
			type = excluded.type,
			category = excluded.category,
			date = excluded.date,
			paid = excluded.paid,
			notes = excluded.notes,
			location = excluded.location
	`, rec.ID, rec.Title, rec.Amount, string(rec.Type), rec.Category, date, rec.Paid, rec.Notes, rec.Location)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// GetAll lists every cached record ordered by date descending, dateless
// records last.
func (r *RecordRepository) GetAll(ctx context.Context) ([]models.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, amount, type, category, date, paid, notes, location
		FROM records
		ORDER BY date = '', date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to select records: %w", err)
	}
	defer rows.Close()

	var result []models.Record
	for rows.Next() {
		var item models.Record
		var typ, date string
		if err := rows.Scan(&item.ID, &item.Title, &item.Amount, &typ, &item.Category,
			&date, &item.Paid, &item.Notes, &item.Location); err != nil {
			return nil, err
		}
		item.Type = models.RecordType(typ)
		if date != "" {
			t, err := time.Parse(time.RFC3339, date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse record date: %w", err)
			}
			item.Date = t
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *RecordRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM records`)
	if err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// ReplaceAll swaps the cached set for recs in a single transaction.
func ReplaceAll(ctx context.Context, db *sql.DB, recs []models.Record) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewRecordRepository(tx)
		if err := repo.Clear(ctx); err != nil {
			return err
		}
		for _, rec := range recs {
			if err := repo.upsert(ctx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}
