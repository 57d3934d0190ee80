// Package exporter builds the submission pack workbook.
package exporter

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Wesls1990/psltomtd/internal/model"
)

const (
	summarySheet  = "Summary"
	perShowSheet  = "Per-Show Totals"
	detailSuffix  = "_detail"
	detailNameCap = 24 // keeps name + suffix inside Excel's 31-char limit
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// BuildPack assembles the export workbook: a Summary sheet with the
// consolidated box totals, a Per-Show Totals sheet, and one detail sheet
// per show with one row per line (raw cells excluded).
func BuildPack(perShow map[string]*model.Aggregate, consolidated model.BoxTotals) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("create summary sheet: %w", err)
	}

	if err := writeSummary(f, consolidated); err != nil {
		return nil, err
	}
	if err := writePerShowTotals(f, perShow); err != nil {
		return nil, err
	}
	if err := writeDetails(f, perShow); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// PackFilename the download name for an export produced at t.
func PackFilename(t time.Time) string {
	return fmt.Sprintf("PSLtoMTD_SubmissionPack_%s.xlsx", t.Format("20060102_1504"))
}

func writeSummary(f *excelize.File, consolidated model.BoxTotals) error {
	if err := setRow(f, summarySheet, 1, []interface{}{"Box", "Total (£)"}); err != nil {
		return err
	}
	for i, k := range model.BoxKeys {
		row := []interface{}{model.BoxNames[k], consolidated[k]}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePerShowTotals(f *excelize.File, perShow map[string]*model.Aggregate) error {
	if _, err := f.NewSheet(perShowSheet); err != nil {
		return fmt.Errorf("create totals sheet: %w", err)
	}
	if err := setRow(f, perShowSheet, 1, []interface{}{"Show", "Box", "Total (£)"}); err != nil {
		return err
	}

	rowNum := 2
	for _, show := range sortedShows(perShow) {
		acc := perShow[show]
		for _, k := range model.BoxKeys {
			row := []interface{}{show, model.BoxNames[k], acc.Boxes[k]}
			if err := setRow(f, perShowSheet, rowNum, row); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}

func writeDetails(f *excelize.File, perShow map[string]*model.Aggregate) error {
	seen := map[string]bool{summarySheet: true, perShowSheet: true}

	for _, show := range sortedShows(perShow) {
		acc := perShow[show]
		if len(acc.Lines) == 0 {
			continue
		}

		name := detailSheetName(show, seen)
		seen[name] = true
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create detail sheet %s: %w", name, err)
		}

		header := []interface{}{"Show", "Sheet", "Date", "Ref", "Supplier", "Description", "Net", "VAT", "Gross", "VAT Code", "Source Type"}
		if err := setRow(f, name, 1, header); err != nil {
			return err
		}
		for i, ln := range acc.Lines {
			row := []interface{}{
				ln.Show, ln.Sheet, ln.Date, ln.Ref, ln.Supplier, ln.Description,
				ln.Net, ln.VAT, ln.Gross, string(ln.VATCode), string(ln.SourceType),
			}
			if err := setRow(f, name, i+2, row); err != nil {
				return err
			}
		}
	}
	return nil
}

// detailSheetName sanitizes a show name to alphanumerics and keeps it
// unique across the workbook.
func detailSheetName(show string, seen map[string]bool) string {
	safe := nonAlnum.ReplaceAllString(show, "_")
	if len(safe) > detailNameCap {
		safe = safe[:detailNameCap]
	}
	name := safe + detailSuffix
	for i := 2; seen[name]; i++ {
		trimmed := safe
		digits := fmt.Sprintf("%d", i)
		if len(trimmed)+len(detailSuffix)+len(digits) > 31 {
			trimmed = trimmed[:31-len(detailSuffix)-len(digits)]
		}
		name = trimmed + detailSuffix + digits
	}
	return name
}

func sortedShows(perShow map[string]*model.Aggregate) []string {
	shows := make([]string, 0, len(perShow))
	for show := range perShow {
		shows = append(shows, show)
	}
	sort.Strings(shows)
	return shows
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, rowNum, err)
	}
	return nil
}
