package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/storyline-app/storyline-cli/internal/client/services"
)

// Items lists items for a month (empty input lists everything) and caches
// the result for the filter and export commands.
func (a *App) Items(ctx context.Context) error {
	month, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	recs, err := a.items.List(ctx, services.ItemQuery{Month: month})
	if err != nil {
		a.log.Error(ctx, "failed to list items", "error", err)
		return err
	}

	a.fetched = recs
	printRecords(os.Stdout, recs)
	return nil
}

// Add quick-adds a record from free text. Amounts like "5만원" or "57,000"
// and income/expense keywords are recognized locally before the record is
// sent to the backend.
func (a *App) Add(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Describe the record (e.g. '점심 9,000')", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Println("Nothing to add.")
		return nil
	}

	rec, err := a.items.CreateFromText(ctx, text)
	if err != nil {
		a.log.Error(ctx, "failed to add record", "error", err)
		return err
	}

	fmt.Printf("Added %s: %s (%s %s)\n", rec.ID, rec.Title, rec.Type, formatAmount(rec.Amount))
	return nil
}

// Schedules lists schedule entries for a month (empty input lists everything).
func (a *App) Schedules(ctx context.Context) error {
	month, err := getSimpleText(a.reader, "Month (YYYY-MM, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	recs, err := a.schedules.List(ctx, month)
	if err != nil {
		a.log.Error(ctx, "failed to list schedules", "error", err)
		return err
	}

	a.fetched = recs
	printRecords(os.Stdout, recs)
	return nil
}

// Transactions lists all transactions.
func (a *App) Transactions(ctx context.Context) error {
	recs, err := a.transactions.List(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to list transactions", "error", err)
		return err
	}

	a.fetched = recs
	printRecords(os.Stdout, recs)
	return nil
}
