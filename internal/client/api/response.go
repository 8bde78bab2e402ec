package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// emptySuccess is the stand-in body for responses that indicate success but
// carry no content. A fresh map is returned each time so callers may mutate
// their copy.
func emptySuccess() map[string]any {
	return map[string]any{"status": "success"}
}

// decodePayload applies the decoding rules in order: 204 maps to the
// empty-success sentinel; a JSON content type parses the body text, with an
// empty body also mapping to the sentinel; anything else comes back as
// plain text. The rules are the same for success and error responses, since
// error bodies are decoded to extract a message.
func decodePayload(statusCode int, contentType string, body []byte) (any, error) {
	if statusCode == http.StatusNoContent {
		return emptySuccess(), nil
	}

	if strings.Contains(contentType, "application/json") {
		text := strings.TrimSpace(string(body))
		if text == "" {
			return emptySuccess(), nil
		}
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return nil, &DecodeError{cause: err}
		}
		return v, nil
	}

	return string(body), nil
}

// decodeResponse drains the response body and decodes it. The body is
// always closed.
func decodeResponse(resp *http.Response) (any, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return decodePayload(resp.StatusCode, resp.Header.Get("Content-Type"), body)
}

// errorFromResponse turns a non-2xx response into an *HTTPError. The body
// is decoded best-effort: a JSON object with a "detail" field wins, then
// non-empty text; a decode failure falls back to a generic message rather
// than masking the HTTP status.
func errorFromResponse(resp *http.Response) *HTTPError {
	msg := "request failed"

	payload, err := decodeResponse(resp)
	if err == nil {
		switch v := payload.(type) {
		case map[string]any:
			if detail, ok := v["detail"].(string); ok && detail != "" {
				msg = detail
			}
		case string:
			if s := strings.TrimSpace(v); s != "" {
				msg = s
			}
		}
	}

	return &HTTPError{Status: resp.StatusCode, Message: msg}
}
