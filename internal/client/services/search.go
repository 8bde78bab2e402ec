package services

import (
	"context"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

type SearchService struct {
	api Caller
}

func NewSearchService(api Caller) *SearchService {
	return &SearchService{api: api}
}

// SearchQuery narrows a server-side search. All-empty criteria are defined
// to return an empty result, so the client short-circuits without a call.
type SearchQuery struct {
	Term   string
	Date   string // "YYYY-MM-DD"
	Type   models.RecordType
	Status string
	Limit  int
}

func (q SearchQuery) isEmpty() bool {
	return q.Term == "" && q.Date == "" && q.Type == "" && q.Status == ""
}

func (q SearchQuery) values() map[string]string {
	return map[string]string{
		"term":   q.Term,
		"date":   q.Date,
		"type":   string(q.Type),
		"status": q.Status,
		"limit":  intParam(q.Limit),
	}
}

// Search runs a free-text search across the collections.
func (s *SearchService) Search(ctx context.Context, q SearchQuery) ([]models.Record, error) {
	if q.isEmpty() {
		return nil, nil
	}
	return fetch[[]models.Record](ctx, s.api, "/search", api.Options{
		Query: queryValues(q.values()),
	})
}

// SearchPrefix matches titles by prefix, for typeahead-style lookups.
func (s *SearchService) SearchPrefix(ctx context.Context, q SearchQuery) ([]models.Record, error) {
	if q.isEmpty() {
		return nil, nil
	}
	return fetch[[]models.Record](ctx, s.api, "/search_prefix", api.Options{
		Query: queryValues(q.values()),
	})
}
