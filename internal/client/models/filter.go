package models

// SortKey selects which field a filtered list is ordered by.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByAmount   SortKey = "amount"
	SortByCategory SortKey = "category"
	SortByType     SortKey = "type"
)

// SortDir is the ordering direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PaidState narrows income/expense records by their paid flag. It has no
// effect on schedules and tasks.
type PaidState string

const (
	PaidAny  PaidState = "any"
	PaidOnly PaidState = "paid"
	Unpaid   PaidState = "unpaid"
)

// FilterSpec describes one filtering/sorting pass over a record list.
// A spec is treated as immutable while it is being applied: evaluating the
// same spec against the same input is deterministic.
//
// Empty multi-selects (Types, Categories) match everything. Nil amount
// bounds are unbounded; non-finite bounds are ignored as well. DateFrom and
// DateTo are inclusive "YYYY-MM-DD" calendar days.
type FilterSpec struct {
	DateFrom   string
	DateTo     string
	Types      []RecordType
	Paid       PaidState
	Categories []string
	AmountMin  *float64
	AmountMax  *float64
	Query      string
	SortBy     SortKey
	SortDir    SortDir
}

// DefaultFilterSpec matches every record, newest first.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Paid:    PaidAny,
		SortBy:  SortByDate,
		SortDir: SortDesc,
	}
}
