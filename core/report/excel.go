package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"drift-detector/core/compare"

	"github.com/xuri/excelize/v2"
)

// WriteExcel exports the report as a workbook: a summary sheet plus one
// sheet per drifted category.
func (r *Report) WriteExcel(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, r); err != nil {
		return err
	}

	for _, s := range r.Summaries {
		result := r.Results[s.Category]
		if result == nil || !result.HasDrift() {
			continue
		}
		if err := writeCategorySheet(f, s.Category, result); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, r *Report) error {
	const sheet = "Summary"
	// The default sheet becomes the summary.
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	header := [][]any{
		{"Run", r.RunID},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Source", fmt.Sprintf("%s (%s)", r.Source.Label, r.Source.Address)},
		{"Target", fmt.Sprintf("%s (%s)", r.Target.Label, r.Target.Address)},
	}
	for i, row := range header {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("failed to write summary header: %w", err)
		}
	}

	columns := []any{"Category", "Matches", "Differences", "Source Only", "Target Only", "Total", "Status"}
	if err := f.SetSheetRow(sheet, "A6", &columns); err != nil {
		return fmt.Errorf("failed to write summary columns: %w", err)
	}

	for i, s := range r.Summaries {
		status := "OK"
		switch {
		case s.Error != "":
			status = "ERROR"
		case s.Differences > 0 || s.SourceOnly > 0 || s.TargetOnly > 0:
			status = "DRIFT"
		}
		row := []any{s.Category, s.Matches, s.Differences, s.SourceOnly, s.TargetOnly, s.Total, status}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+7), &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

// writeCategorySheet lists one row per drift finding: changed columns for
// differences, identities for one-sided records.
func writeCategorySheet(f *excelize.File, category string, result *compare.Result) error {
	sheet := sheetName(category)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	columns := []any{"Kind", "Identity", "Column", "Source", "Target"}
	if err := f.SetSheetRow(sheet, "A1", &columns); err != nil {
		return fmt.Errorf("failed to write sheet columns: %w", err)
	}

	cfg, _ := compare.CategoryByName(category)
	rowIdx := 2
	writeRow := func(row []any) error {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), &row); err != nil {
			return fmt.Errorf("failed to write sheet row: %w", err)
		}
		rowIdx++
		return nil
	}

	for _, d := range result.Differences {
		identity := identityLabel(d.Identity)
		changed := make([]string, 0, len(d.Changed))
		for col := range d.Changed {
			changed = append(changed, col)
		}
		sort.Strings(changed)
		for _, col := range changed {
			pair := d.Changed[col]
			if err := writeRow([]any{"Difference", identity, col, pair.Source, pair.Target}); err != nil {
				return err
			}
		}
	}
	for _, rec := range result.SourceOnly {
		if err := writeRow([]any{"Source Only", recordLabel(cfg, rec), "", "", ""}); err != nil {
			return err
		}
	}
	for _, rec := range result.TargetOnly {
		if err := writeRow([]any{"Target Only", recordLabel(cfg, rec), "", "", ""}); err != nil {
			return err
		}
	}
	return nil
}

// sheetName trims a category name to Excel's 31-character sheet limit.
func sheetName(category string) string {
	if len(category) > 31 {
		return category[:31]
	}
	return category
}
