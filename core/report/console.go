package report

import (
	"fmt"
	"io"
	"strconv"

	"drift-detector/core/compare"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// PrintSummary renders the per-category counts as a console table with a
// colored status column.
func PrintSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "Run %s  %s\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Source: %s (%s)\n", r.Source.Label, r.Source.Address)
	fmt.Fprintf(w, "Target: %s (%s)\n\n", r.Target.Label, r.Target.Address)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Category", "Matches", "Differences", "Source Only", "Target Only", "Total", "Status"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, s := range r.Summaries {
		table.Append([]string{
			s.Category,
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.Differences),
			strconv.Itoa(s.SourceOnly),
			strconv.Itoa(s.TargetOnly),
			strconv.Itoa(s.Total),
			statusLabel(s),
		})
	}

	total := r.Totals()
	table.Append([]string{
		"Total",
		strconv.Itoa(total.Matches),
		strconv.Itoa(total.Differences),
		strconv.Itoa(total.SourceOnly),
		strconv.Itoa(total.TargetOnly),
		strconv.Itoa(total.Total),
		"",
	})

	table.Render()

	if r.Drift {
		fmt.Fprintln(w, color.RedString("Drift detected between source and target."))
	} else {
		fmt.Fprintln(w, color.GreenString("No drift detected."))
	}
}

func statusLabel(s compare.CategorySummary) string {
	switch {
	case s.Error != "":
		return color.YellowString("ERROR")
	case s.Differences > 0 || s.SourceOnly > 0 || s.TargetOnly > 0:
		return color.RedString("DRIFT")
	default:
		return color.GreenString("OK")
	}
}
