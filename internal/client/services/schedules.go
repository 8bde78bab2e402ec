package services

import (
	"context"
	"net/http"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

// The schedules collection keeps the trailing slash its backend routes
// declare; the gateway never rewrites it.
const schedulesEndpoint = "/schedules/"

type ScheduleService struct {
	api Caller
}

func NewScheduleService(api Caller) *ScheduleService {
	return &ScheduleService{api: api}
}

// List fetches schedules, optionally narrowed to a "YYYY-MM" month.
func (s *ScheduleService) List(ctx context.Context, month string) ([]models.Record, error) {
	return fetch[[]models.Record](ctx, s.api, schedulesEndpoint, api.Options{
		Query: queryValues(map[string]string{"month": month}),
	})
}

func (s *ScheduleService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, schedulesEndpoint, api.Options{
		Method: http.MethodPost,
		Body:   rec,
	})
}

func (s *ScheduleService) Update(ctx context.Context, id string, patch map[string]any) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, schedulesEndpoint+id, api.Options{
		Method: http.MethodPatch,
		Body:   patch,
	})
}

func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, schedulesEndpoint+id, api.Options{Method: http.MethodDelete})
	return err
}
