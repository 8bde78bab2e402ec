package services

import (
	"context"
	"net/http"

	"github.com/storyline-app/storyline-cli/internal/client/api"
	"github.com/storyline-app/storyline-cli/internal/client/models"
)

type AIService struct {
	api Caller
}

func NewAIService(api Caller) *AIService {
	return &AIService{api: api}
}

// ParseText sends natural language ("내일 3시 미팅") to the backend and
// returns its structured interpretation.
func (s *AIService) ParseText(ctx context.Context, text string) (models.ParseResult, error) {
	return fetch[models.ParseResult](ctx, s.api, "/ai/parse", api.Options{
		Method: http.MethodPost,
		Body:   map[string]string{"text": text},
	})
}
