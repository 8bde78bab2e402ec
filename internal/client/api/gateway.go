package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/storyline-app/storyline-cli/internal/logging"
)

// TokenSource supplies the bearer token for outbound requests. When force
// is true the implementation must mint a fresh token rather than serve a
// cached one.
type TokenSource interface {
	Token(ctx context.Context, force bool) (string, error)
}

// Gateway sends authenticated requests to the backend. All endpoint
// helpers in the services package go through a single Gateway.
type Gateway struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*Gateway)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.http = c }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

// New returns a Gateway bound to the given base URL and token source.
func New(baseURL string, tokens TokenSource, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL: baseURL,
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.NewDefault(slog.LevelInfo),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request performs one authenticated call and returns the decoded body:
// the empty-success sentinel, a parsed JSON value, or plain text.
//
// Algorithm: fetch a (possibly cached) token, send, and if the response is
// a 401, force-refresh the token and resend exactly once. A non-2xx status
// after that surfaces as *HTTPError. At most two network round-trips and
// one forced refresh happen per call.
func (g *Gateway) Request(ctx context.Context, endpoint string, opts Options) (any, error) {
	token, err := g.tokens.Token(ctx, false)
	if err != nil {
		return nil, err
	}

	body, err := encodeBody(opts.method(), opts.Body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()

	resp, err := g.send(ctx, endpoint, opts, body, token, requestID)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)

		token, err = g.tokens.Token(ctx, true)
		if err != nil {
			return nil, err
		}

		g.log.Debug(ctx, "retrying after token refresh", "endpoint", endpoint, "request_id", requestID)
		resp, err = g.send(ctx, endpoint, opts, body, token, requestID)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		httpErr := errorFromResponse(resp)
		g.log.Warn(ctx, "request failed", "endpoint", endpoint, "status", httpErr.Status, "message", httpErr.Message)
		return nil, httpErr
	}

	return decodeResponse(resp)
}

func (g *Gateway) send(ctx context.Context, endpoint string, opts Options, body []byte, token, requestID string) (*http.Response, error) {
	req, err := newRequest(ctx, g.baseURL, endpoint, opts, body, token, requestID)
	if err != nil {
		return nil, err
	}

	g.log.Debug(ctx, "request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)

	resp, err := g.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			return nil, errors.Join(ErrUnavailable, err)
		}
		return nil, err
	}
	return resp, nil
}

// drain discards the rest of a response we will not decode, so the
// underlying connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
