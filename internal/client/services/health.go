package services

import (
	"context"
	"fmt"

	"github.com/storyline-app/storyline-cli/internal/client/api"
)

type HealthService struct {
	api Caller
}

func NewHealthService(api Caller) *HealthService {
	return &HealthService{api: api}
}

// Ping checks backend liveness.
func (s *HealthService) Ping(ctx context.Context) error {
	payload, err := s.api.Request(ctx, "/health", api.Options{})
	if err != nil {
		return err
	}
	if m, ok := payload.(map[string]any); ok {
		if status, _ := m["status"].(string); status == "ok" || status == "success" || status == "healthy" {
			return nil
		}
		return fmt.Errorf("unexpected health status: %v", m["status"])
	}
	return nil
}

// Meta fetches the backend's root metadata document.
func (s *HealthService) Meta(ctx context.Context) (map[string]any, error) {
	return fetch[map[string]any](ctx, s.api, "/", api.Options{})
}
