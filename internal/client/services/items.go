package services

import (
	"context"
	"net/http"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

const itemsEndpoint = "/items"

// ItemService works with the unified items collection. Items and the /add
// endpoint of older backends are treated as two independent contracts; this
// client only speaks /items.
type ItemService struct {
	api Caller
}

func NewItemService(api Caller) *ItemService {
	return &ItemService{api: api}
}

// ItemQuery narrows a list call. Zero values are omitted from the wire.
type ItemQuery struct {
	Month    string // "YYYY-MM"
	From     string // "YYYY-MM-DD"
	To       string // "YYYY-MM-DD"
	Type     models.RecordType
	Category string
	Limit    int
}

func (q ItemQuery) values() map[string]string {
	return map[string]string{
		"month":    q.Month,
		"from":     q.From,
		"to":       q.To,
		"type":     string(q.Type),
		"category": q.Category,
		"limit":    intParam(q.Limit),
	}
}

func (s *ItemService) List(ctx context.Context, q ItemQuery) ([]models.Record, error) {
	return fetch[[]models.Record](ctx, s.api, itemsEndpoint, api.Options{
		Query: queryValues(q.values()),
	})
}

func (s *ItemService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, itemsEndpoint, api.Options{
		Method: http.MethodPost,
		Body:   rec,
	})
}

// CreateFromText quick-parses free text ("점심 5만원", "salary 3,000,000")
// into title/amount/type locally and posts the result. For anything beyond
// this heuristic the AI parse endpoint is the right tool.
func (s *ItemService) CreateFromText(ctx context.Context, text string) (models.Record, error) {
	return s.Create(ctx, QuickParse(text))
}

// Update applies a partial change to one item.
func (s *ItemService) Update(ctx context.Context, id string, patch map[string]any) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, itemsEndpoint+"/"+id, api.Options{
		Method: http.MethodPatch,
		Body:   patch,
	})
}

// Replace overwrites one item entirely.
func (s *ItemService) Replace(ctx context.Context, id string, rec models.Record) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, itemsEndpoint+"/"+id, api.Options{
		Method: http.MethodPut,
		Body:   rec,
	})
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, itemsEndpoint+"/"+id, api.Options{Method: http.MethodDelete})
	return err
}
