// Package filter evaluates a FilterSpec against an in-memory record list.
// Apply is pure: it never mutates its input and is deterministic for the
// same spec and records.
package filter

import (
	"math"
	"sort"
	"strings"

	"github.com/storyline-app/storyline-cli/internal/client/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Apply returns the records matching spec, ordered by its sort key and
// direction. All filter clauses are AND-ed; empty multi-selects match
// everything.
func Apply(records []models.Record, spec models.FilterSpec) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if matches(r, spec) {
			out = append(out, r)
		}
	}
	sortRecords(out, spec)
	return out
}

func matches(r models.Record, spec models.FilterSpec) bool {
	// records without a date (tasks, mostly) are kept regardless of range
	if !r.Date.IsZero() {
		if from := models.DayStart(spec.DateFrom); !from.IsZero() && r.Date.Before(from) {
			return false
		}
		if to := models.DayEnd(spec.DateTo); !to.IsZero() && r.Date.After(to) {
			return false
		}
	}

	if len(spec.Types) > 0 && !containsType(spec.Types, r.Type) {
		return false
	}

	// the paid selector only means something for money records
	if spec.Paid != "" && spec.Paid != models.PaidAny &&
		(r.Type == models.TypeIncome || r.Type == models.TypeExpense) {
		if spec.Paid == models.PaidOnly && !r.Paid {
			return false
		}
		if spec.Paid == models.Unpaid && r.Paid {
			return false
		}
	}

	if len(spec.Categories) > 0 && !containsString(spec.Categories, r.Category) {
		return false
	}

	if !amountInRange(r.Amount, spec.AmountMin, spec.AmountMax) {
		return false
	}

	if q := strings.TrimSpace(spec.Query); q != "" {
		hay := strings.ToLower(strings.Join([]string{r.Title, r.Notes, r.Category, string(r.Type)}, " "))
		if !strings.Contains(hay, strings.ToLower(q)) {
			return false
		}
	}

	return true
}

// amountInRange checks the numeric bounds, skipping any bound that is nil
// or not finite.
func amountInRange(amount float64, min, max *float64) bool {
	if min != nil && isFinite(*min) && amount < *min {
		return false
	}
	if max != nil && isFinite(*max) && amount > *max {
		return false
	}
	return true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func sortRecords(records []models.Record, spec models.FilterSpec) {
	dir := 1
	if spec.SortDir == models.SortDesc {
		dir = -1
	}

	var less func(a, b models.Record) int
	switch spec.SortBy {
	case models.SortByAmount:
		less = func(a, b models.Record) int { return compareFloat(a.Amount, b.Amount) }
	case models.SortByCategory:
		coll := collate.New(language.Und)
		less = func(a, b models.Record) int { return coll.CompareString(a.Category, b.Category) }
	case models.SortByType:
		coll := collate.New(language.Und)
		less = func(a, b models.Record) int { return coll.CompareString(string(a.Type), string(b.Type)) }
	default: // date
		less = func(a, b models.Record) int {
			// invalid/missing dates are the zero time, so they sort
			// first ascending and last descending
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			default:
				return 0
			}
		}
	}

	// stable for deterministic ties
	sort.SliceStable(records, func(i, j int) bool {
		return less(records[i], records[j])*dir < 0
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func containsType(set []models.RecordType, v models.RecordType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
