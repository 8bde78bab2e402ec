package cli

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"github.com/storyline-app/storyline-cli/internal/client/services"
)

// Search runs a server-side search. A term ending in '*' is sent to the
// prefix-search endpoint instead; an empty term is a no-op.
func (a *App) Search(ctx context.Context) error {
	term, err := getSimpleText(a.reader, "Search term ('*' suffix for prefix search)", os.Stdout)
	if err != nil {
		return err
	}

	var recs []models.Record
	if prefix, ok := strings.CutSuffix(term, "*"); ok {
		recs, err = a.search.SearchPrefix(ctx, services.SearchQuery{Term: prefix})
	} else {
		recs, err = a.search.Search(ctx, services.SearchQuery{Term: term})
	}
	if err != nil {
		a.log.Error(ctx, "search failed", "error", err)
		return err
	}

	a.fetched = recs
	printRecords(os.Stdout, recs)
	return nil
}

// Summary shows the monthly income/expense summary.
func (a *App) Summary(ctx context.Context) error {
	yearText, err := getSimpleText(a.reader, "Year", os.Stdout)
	if err != nil {
		return err
	}
	monthText, err := getSimpleText(a.reader, "Month (1-12)", os.Stdout)
	if err != nil {
		return err
	}

	year, err := strconv.Atoi(yearText)
	if err != nil {
		printlnFn("Invalid year:", yearText)
		return nil
	}
	month, err := strconv.Atoi(monthText)
	if err != nil || month < 1 || month > 12 {
		printlnFn("Invalid month:", monthText)
		return nil
	}

	sum, err := a.reports.MonthlySummary(ctx, year, month)
	if err != nil {
		a.log.Error(ctx, "failed to fetch summary", "error", err)
		return err
	}

	printSummary(os.Stdout, sum)
	return nil
}
