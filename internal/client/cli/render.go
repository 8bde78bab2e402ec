package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/storyline-app/storyline-cli/internal/client/models"
)

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// printRecords renders records as an aligned table. A nil or empty slice
// prints a short notice instead of a bare header.
func printRecords(w io.Writer, recs []models.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTYPE\tTITLE\tAMOUNT\tCATEGORY\tPAID")
	for _, r := range recs {
		paid := ""
		if r.Type == models.TypeIncome || r.Type == models.TypeExpense {
			paid = strconv.FormatBool(r.Paid)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, formatDate(r.Date), r.Type, r.Title, formatAmount(r.Amount), r.Category, paid)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d record(s)\n", len(recs))
}

func printSummary(w io.Writer, s models.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Summary for %04d-%02d\n", s.Year, s.Month)
	fmt.Fprintln(tw, "\tINCOME\tEXPENSE\tPENDING")
	fmt.Fprintf(tw, "business\t%s\t%s\t%s\n",
		formatAmount(s.Business.Income), formatAmount(s.Business.Expense), formatAmount(s.Business.Pending))
	fmt.Fprintf(tw, "personal\t%s\t%s\t%s\n",
		formatAmount(s.Personal.Income), formatAmount(s.Personal.Expense), formatAmount(s.Personal.Pending))
	_ = tw.Flush()
}
