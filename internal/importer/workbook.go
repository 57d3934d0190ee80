// Package importer reads uploaded workbooks into normalized lines.
package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Wesls1990/psltomtd/internal/model"
	"github.com/Wesls1990/psltomtd/internal/parser"
)

// Importer coordinates workbook reading and per-sheet extraction.
type Importer struct {
	extractor *parser.Extractor
}

// New creates an importer over the given mapping tables.
func New(rules *parser.Ruleset) *Importer {
	return &Importer{extractor: parser.NewExtractor(rules)}
}

// ShowName derives the show (group) identifier from an uploaded filename.
func ShowName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseWorkbook turns one uploaded workbook into normalized lines.
// Sheets that fail to read are recorded as errors and skipped; only a
// workbook that cannot be opened at all fails the call, since then
// nothing of the file is usable.
func (im *Importer) ParseWorkbook(filename string, data []byte) ([]model.Line, *parser.ImportReport, error) {
	start := time.Now()

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook %s: %w", filename, err)
	}
	defer f.Close()

	show := ShowName(filename)
	report := &parser.ImportReport{
		Filename: filepath.Base(filename),
		Show:     show,
		Sheets:   []parser.SheetResult{},
	}

	var lines []model.Line
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			report.Fold(parser.SheetResult{
				Sheet:  sheetName,
				Status: parser.StatusError,
				Reason: err.Error(),
			})
			continue
		}

		res := im.extractor.ExtractSheet(show, filename, parser.Sheet{Name: sheetName, Rows: rows})
		lines = append(lines, res.Lines...)
		report.Fold(res)
	}

	report.Duration = time.Since(start)
	return lines, report, nil
}
