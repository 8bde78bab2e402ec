// Package api is the single chokepoint for authenticated HTTP calls to the
// Storyline backend.
//
// # Overview
//
// The package provides:
//  1. A Gateway that attaches a bearer token from a TokenSource, sends the
//     request, and on a 401 refreshes the token once and resends. There is
//     never a third attempt.
//  2. Request normalization: base-URL/endpoint joining, default JSON
//     headers merged under caller headers, and JSON serialization of
//     structured bodies for methods that may carry one.
//  3. Response decoding: 204 and empty JSON bodies map to an empty-success
//     sentinel, JSON content types are parsed, anything else is returned as
//     plain text. Error bodies are decoded the same way to extract a
//     message.
//
// # Error Handling
//
// Non-2xx responses surface as *HTTPError carrying the status code and a
// best-effort message. A JSON body that fails to parse despite a JSON
// content type surfaces as *DecodeError. Transport failures propagate
// unmodified; nothing is retried beyond the one documented 401 cycle.
//
// Concurrency & Contexts
//
// A Gateway is safe for concurrent use; each call owns its request and
// response objects. All operations accept context.Context and honor
// cancellation.
package api
