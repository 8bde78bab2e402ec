package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Options describes one gateway call. The zero value is a GET with no
// headers, query, or body.
type Options struct {
	// Method defaults to GET.
	Method string

	// Headers are merged over the default Content-Type: application/json.
	// The caller wins on conflict.
	Headers map[string]string

	// Query parameters appended to the endpoint. Callers are expected to
	// omit empty values before setting them here.
	Query url.Values

	// Body may be a []byte, string, or io.Reader (sent as-is), or any
	// other value (serialized to JSON). Ignored for GET and HEAD.
	Body any
}

func (o Options) method() string {
	if o.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(o.Method)
}

// joinURL resolves endpoint against base, trimming exactly one redundant
// slash at the join point. Absolute endpoints pass through untouched.
func joinURL(base, endpoint string) string {
	if strings.Contains(endpoint, "://") {
		return endpoint
	}
	b := strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return b + endpoint
}

// requestURL builds the full URL including encoded query parameters.
func requestURL(base, endpoint string, query url.Values) string {
	u := joinURL(base, endpoint)
	if len(query) == 0 {
		return u
	}
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + query.Encode()
}

// encodeBody materializes the request body for a given method. GET and HEAD
// never carry one. Pre-encoded payloads ([]byte, string, io.Reader) pass
// through so binary and multipart uploads keep working; anything else is
// serialized to JSON.
func encodeBody(method string, body any) ([]byte, error) {
	if body == nil || method == http.MethodGet || method == http.MethodHead {
		return nil, nil
	}
	switch b := body.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		return data, nil
	}
}

// newRequest assembles the normalized *http.Request for one attempt. The
// body is passed as pre-encoded bytes so a retry can resend it.
func newRequest(ctx context.Context, base, endpoint string, opts Options, body []byte, token, requestID string) (*http.Request, error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method(), requestURL(base, endpoint, opts.Query), rd)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-Id", requestID)

	return req, nil
}
