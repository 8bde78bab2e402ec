// Package services contains the endpoint helpers of the Storyline client.
// Each service is parameter shaping over the gateway: it builds a path,
// appends query parameters (omitting empty values), picks a method, and
// passes a body. No other logic lives here.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/storyline-app/storyline-cli/internal/client/api"
)

// Caller is the gateway surface the services need. *api.Gateway satisfies
// it; tests provide fakes.
type Caller interface {
	Request(ctx context.Context, endpoint string, opts api.Options) (any, error)
}

// fetch performs a call and reshapes the decoded payload into T.
func fetch[T any](ctx context.Context, c Caller, endpoint string, opts api.Options) (T, error) {
	var out T

	payload, err := c.Request(ctx, endpoint, opts)
	if err != nil {
		return out, err
	}
	if err := decodeInto(payload, &out); err != nil {
		return out, err
	}
	return out, nil
}

// decodeInto reshapes a generically decoded payload (maps/slices) into a
// typed value via a marshal/unmarshal round trip.
func decodeInto(payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("reshape response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("reshape response: %w", err)
	}
	return nil
}

// queryValues builds url.Values from string pairs, dropping empty values so
// they never reach the wire.
func queryValues(pairs map[string]string) url.Values {
	q := url.Values{}
	for k, v := range pairs {
		if v != "" {
			q.Set(k, v)
		}
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

func intParam(v int) string {
	if v <= 0 {
		return ""
	}
	return strconv.Itoa(v)
}
