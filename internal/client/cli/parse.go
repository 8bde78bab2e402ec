package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/storyline-app/storyline-cli/internal/client/services"
)

// Parse sends free text to the AI parser and shows the structured result.
// When the backend cannot parse (or is unreachable), the local quick parser
// takes over so the command still produces a usable record.
func (a *App) Parse(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Text to parse", os.Stdout)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}

	res, err := a.ai.ParseText(ctx, text)
	if err != nil {
		a.log.Warn(ctx, "AI parse unavailable, using local parser", "error", err)
		rec := services.QuickParse(text)
		fmt.Printf("Parsed locally: %s %s (%s)\n", rec.Type, rec.Title, formatAmount(rec.Amount))
		return nil
	}

	fmt.Printf("Parsed as %s:\n", res.Type)
	for k, v := range res.Data {
		fmt.Printf("  %s: %v\n", k, v)
	}
	return nil
}
