package services

import (
	"context"
	"net/http"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

const transactionsEndpoint = "/transactions/"

type TransactionService struct {
	api Caller
}

func NewTransactionService(api Caller) *TransactionService {
	return &TransactionService{api: api}
}

func (s *TransactionService) List(ctx context.Context) ([]models.Record, error) {
	return fetch[[]models.Record](ctx, s.api, transactionsEndpoint, api.Options{})
}

func (s *TransactionService) Create(ctx context.Context, rec models.Record) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, transactionsEndpoint, api.Options{
		Method: http.MethodPost,
		Body:   rec,
	})
}

func (s *TransactionService) Update(ctx context.Context, id string, patch map[string]any) (models.Record, error) {
	return fetch[models.Record](ctx, s.api, transactionsEndpoint+id, api.Options{
		Method: http.MethodPatch,
		Body:   patch,
	})
}

func (s *TransactionService) Delete(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, transactionsEndpoint+id, api.Options{Method: http.MethodDelete})
	return err
}
