package models

// SummaryBucket aggregates totals for one side of the business/personal
// split.
type SummaryBucket struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Pending float64 `json:"pending"`
}

// Summary is the monthly aggregation returned by the summary endpoint.
type Summary struct {
	Year     int           `json:"year"`
	Month    int           `json:"month"`
	Business SummaryBucket `json:"business"`
	Personal SummaryBucket `json:"personal"`
}

// ParseResult is the structured interpretation of free text returned by the
// AI parse endpoint, e.g. {"type": "schedule", "data": {...}}.
type ParseResult struct {
	Type RecordType     `json:"type"`
	Data map[string]any `json:"data"`
}
