package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/storyline-app/storyline-cli/internal/client/filter"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

// Filter narrows and re-sorts the most recently fetched records. All
// criteria are optional; empty input leaves a criterion unset.
func (a *App) Filter(ctx context.Context) error {
	recs, err := a.currentRecords(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("Nothing fetched yet; run 'items' or 'sync' first.")
		return nil
	}

	spec, err := a.promptFilterSpec()
	if err != nil {
		return err
	}

	printRecords(os.Stdout, filter.Apply(recs, spec))
	return nil
}

// promptFilterSpec collects the filter criteria interactively, one prompt
// per clause the engine supports.
func (a *App) promptFilterSpec() (models.FilterSpec, error) {
	spec := models.DefaultFilterSpec()

	if v, err := getSimpleText(a.reader, "Type (income/expense/schedule/task, empty for all)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		spec.Types = []models.RecordType{models.RecordType(v)}
	}

	if v, err := getSimpleText(a.reader, "Category (empty for all)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		spec.Categories = []string{v}
	}

	if v, err := getSimpleText(a.reader, "Paid (paid/unpaid, empty for any)", os.Stdout); err != nil {
		return spec, err
	} else {
		switch v {
		case "paid":
			spec.Paid = models.PaidOnly
		case "unpaid":
			spec.Paid = models.Unpaid
		}
	}

	var err error
	if spec.DateFrom, err = getSimpleText(a.reader, "From date (YYYY-MM-DD, empty for none)", os.Stdout); err != nil {
		return spec, err
	}
	if spec.DateTo, err = getSimpleText(a.reader, "To date (YYYY-MM-DD, empty for none)", os.Stdout); err != nil {
		return spec, err
	}

	if v, err := getSimpleText(a.reader, "Minimum amount (empty for none)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		if n, convErr := strconv.ParseFloat(v, 64); convErr == nil {
			spec.AmountMin = &n
		}
	}

	if v, err := getSimpleText(a.reader, "Maximum amount (empty for none)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		if n, convErr := strconv.ParseFloat(v, 64); convErr == nil {
			spec.AmountMax = &n
		}
	}

	if spec.Query, err = getSimpleText(a.reader, "Free text (empty for none)", os.Stdout); err != nil {
		return spec, err
	}

	if v, err := getSimpleText(a.reader, "Sort by (date/amount/category/type, empty for date)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		spec.SortBy = models.SortKey(v)
	}

	if v, err := getSimpleText(a.reader, "Direction (asc/desc, empty for desc)", os.Stdout); err != nil {
		return spec, err
	} else if v != "" {
		spec.SortDir = models.SortDir(v)
	}

	return spec, nil
}

// currentRecords returns the last fetched set, falling back to the snapshot
// when nothing has been fetched in this session.
func (a *App) currentRecords(ctx context.Context) ([]models.Record, error) {
	if len(a.fetched) > 0 {
		return a.fetched, nil
	}
	if a.store == nil {
		return nil, nil
	}
	recs, err := a.store.Records.GetAll(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to read snapshot", "error", err)
		return nil, err
	}
	return recs, nil
}
