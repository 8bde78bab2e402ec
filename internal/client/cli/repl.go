package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Items(ctx context.Context) error
	Add(ctx context.Context) error
	Schedules(ctx context.Context) error
	Transactions(ctx context.Context) error
	Search(ctx context.Context) error
	Summary(ctx context.Context) error
	Parse(ctx context.Context) error
	Filter(ctx context.Context) error
	Export(ctx context.Context) error
	Sync(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Storyline CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - ping           — check backend health
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - items | i      — list items for a month
//	  - add            — quick-add a record from free text
//	  - schedules      — list schedule entries
//	  - transactions   — list transactions
//	  - search         — server-side search (term ending in * is a prefix search)
//	  - summary        — monthly income/expense summary
//	  - parse          — parse free text into a structured record
//	  - filter         — filter and sort the last fetched records
//	  - export         — export the last fetched records to JSON or CSV
//	  - sync           — refresh the local snapshot from the backend
//	  - ping           — check backend health
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sl> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (i)tems, add, schedules, transactions, search, summary, parse, filter, export, sync, ping, logout, exit")
			} else {
				printlnFn("Available commands: login, ping, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "i", "items":
			_ = a.Items(ctx)

		case "add":
			_ = a.Add(ctx)

		case "schedules":
			_ = a.Schedules(ctx)

		case "transactions":
			_ = a.Transactions(ctx)

		case "search":
			_ = a.Search(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "parse":
			_ = a.Parse(ctx)

		case "filter":
			_ = a.Filter(ctx)

		case "export":
			_ = a.Export(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
