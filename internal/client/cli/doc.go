// Package cli provides the interactive Storyline command-line client.
//
// It wires configuration, the local snapshot database, the identity
// provider, and the API services into an interactive REPL. Typical flow:
// resume a stored session (or prompt for credentials), then execute user
// commands against the backend, caching results locally for filtering and
// export.
//
// Key features:
//   - Sign in / sign out against the identity provider
//   - List items, schedules and transactions
//   - Quick-add records from free text
//   - Server-side search and monthly summaries
//   - Local filtering, sorting and JSON/CSV export of fetched records
//   - Snapshot sync for offline viewing
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
