package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens counts how often it is asked for a token and with which force
// flag, handing out tok-1, tok-2, ... in order.
type fakeTokens struct {
	calls  int
	forced int
	err    error
}

func (f *fakeTokens) Token(ctx context.Context, force bool) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.calls++
	if force {
		f.forced++
	}
	return fmt.Sprintf("tok-%d", f.calls), nil
}

func TestGateway_RefreshesTokenOn401AndRetriesOnce(t *testing.T) {
	var gotAuth []string
	var gotBodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBodies = append(gotBodies, string(body))
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))

		if len(gotAuth) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"42"}`)
	}))
	defer srv.Close()

	tokens := &fakeTokens{}
	g := New(srv.URL, tokens)

	got, err := g.Request(context.Background(), "/items", Options{
		Method: http.MethodPost,
		Body:   map[string]any{"title": "lunch"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "42"}, got)

	// exactly two network calls: the original and the single retry
	require.Len(t, gotAuth, 2)
	assert.Equal(t, "Bearer tok-1", gotAuth[0])
	assert.Equal(t, "Bearer tok-2", gotAuth[1])

	// two token fetches: one cached, one forced
	assert.Equal(t, 2, tokens.calls)
	assert.Equal(t, 1, tokens.forced)

	// the body is resent unchanged on the retry
	assert.JSONEq(t, `{"title":"lunch"}`, gotBodies[0])
	assert.Equal(t, gotBodies[0], gotBodies[1])
}

func TestGateway_401TwiceFailsWithoutThirdAttempt(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"token rejected"}`)
	}))
	defer srv.Close()

	tokens := &fakeTokens{}
	g := New(srv.URL, tokens)

	_, err := g.Request(context.Background(), "/items", Options{})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, "token rejected", httpErr.Message)

	assert.Equal(t, 2, attempts)
	assert.Equal(t, 2, tokens.calls)
	assert.Equal(t, 1, tokens.forced)
}

func TestGateway_NoRetryOnOtherStatuses(t *testing.T) {
	var attempts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "forbidden")
	}))
	defer srv.Close()

	tokens := &fakeTokens{}
	g := New(srv.URL, tokens)

	_, err := g.Request(context.Background(), "/items", Options{})

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "forbidden", httpErr.Message)

	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, tokens.calls)
	assert.Equal(t, 0, tokens.forced)
}

func TestGateway_SuccessPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/nocontent":
			w.WriteHeader(http.StatusNoContent)
		case "/text":
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, "pong")
		default:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[{"id":"1"},{"id":"2"}]`)
		}
	}))
	defer srv.Close()

	g := New(srv.URL, &fakeTokens{})
	ctx := context.Background()

	got, err := g.Request(ctx, "/nocontent", Options{Method: http.MethodDelete})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "success"}, got)

	got, err = g.Request(ctx, "/text", Options{})
	require.NoError(t, err)
	assert.Equal(t, "pong", got)

	got, err = g.Request(ctx, "/list", Options{})
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": "1"}, map[string]any{"id": "2"}}, got)
}

func TestGateway_TokenErrorPropagates(t *testing.T) {
	sentinel := errors.New("no session")
	g := New("http://localhost:0", &fakeTokens{err: sentinel})

	_, err := g.Request(context.Background(), "/items", Options{})
	assert.ErrorIs(t, err, sentinel)
}

func TestGateway_TransportErrorMarksUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	g := New(srv.URL, &fakeTokens{})

	_, err := g.Request(context.Background(), "/items", Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
