package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/storyline-app/storyline-cli/internal/client/export"
)

// Export writes the most recently fetched records (or the snapshot, when
// nothing was fetched this session) to a JSON or CSV file.
func (a *App) Export(ctx context.Context) error {
	recs, err := a.currentRecords(ctx)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("Nothing to export; run 'items' or 'sync' first.")
		return nil
	}

	format, err := getSimpleText(a.reader, "Format (json/csv)", os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, "Output file", os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println("No output file given.")
		return nil
	}

	switch format {
	case "json":
		err = export.SaveJSON(path, recs)
	case "csv":
		err = export.SaveCSV(path, recs)
	default:
		fmt.Println("Unknown format:", format)
		return nil
	}
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err)
		return err
	}

	fmt.Printf("Wrote %d record(s) to %s\n", len(recs), path)
	return nil
}
