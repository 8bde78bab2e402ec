package services

import (
	"context"
	"strconv"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

type ReportService struct {
	api Caller
}

func NewReportService(api Caller) *ReportService {
	return &ReportService{api: api}
}

// MonthlySummary returns the aggregated income/expense/pending totals for
// one month, split by the business/personal dimension.
func (s *ReportService) MonthlySummary(ctx context.Context, year, month int) (models.Summary, error) {
	return fetch[models.Summary](ctx, s.api, "/summary", api.Options{
		Query: queryValues(map[string]string{
			"year":  strconv.Itoa(year),
			"month": strconv.Itoa(month),
		}),
	})
}
