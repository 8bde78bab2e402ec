package cli

import (
	"context"
	"fmt"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/storyline-app/storyline-cli/internal/client/services"
	"github.com/storyline-app/storyline-cli/internal/client/snapshot"
)

// Sync refreshes the local snapshot with everything the backend currently
// holds: items, schedules and transactions in one pass.
func (a *App) Sync(ctx context.Context) error {
	var all []models.Record

	items, err := a.items.List(ctx, services.ItemQuery{})
	if err != nil {
		a.log.Error(ctx, "sync: failed to fetch items", "error", err)
		return err
	}
	all = append(all, items...)

	schedules, err := a.schedules.List(ctx, "")
	if err != nil {
		a.log.Error(ctx, "sync: failed to fetch schedules", "error", err)
		return err
	}
	all = append(all, schedules...)

	transactions, err := a.transactions.List(ctx)
	if err != nil {
		a.log.Error(ctx, "sync: failed to fetch transactions", "error", err)
		return err
	}
	all = append(all, transactions...)

	if err := snapshot.ReplaceAll(ctx, a.store.DB(), all); err != nil {
		a.log.Error(ctx, "sync: failed to write snapshot", "error", err)
		return err
	}

	a.fetched = all
	fmt.Printf("Synced %d record(s).\n", len(all))
	return nil
}

// Ping checks backend health.
func (a *App) Ping(ctx context.Context) error {
	if err := a.health.Ping(ctx); err != nil {
		fmt.Println("Backend is unreachable:", err)
		return err
	}
	fmt.Println("Backend is up.")
	return nil
}
