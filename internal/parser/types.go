package parser

import (
	"time"

	"github.com/Wesls1990/psltomtd/internal/model"
)

// Canonical field names the column resolver knows about.
const (
	FieldDate        = "date"
	FieldRef         = "ref"
	FieldSupplier    = "supplier"
	FieldDescription = "description"
	FieldNet         = "net"
	FieldVAT         = "vat"
	FieldGross       = "gross"
	FieldVATCode     = "vat_code"
	FieldCurrency    = "currency"
)

// Sheet one tabular sheet already read from a workbook.
// Rows[0] is the header row when present.
type Sheet struct {
	Name string
	Rows [][]string
}

// Sheet extraction statuses
const (
	StatusImported = "imported"
	StatusSkipped  = "skipped"
	StatusError    = "error"
)

// SheetResult per-sheet extraction outcome
type SheetResult struct {
	Sheet     string       `json:"sheet"`
	Status    string       `json:"status"` // imported/skipped/error
	Reason    string       `json:"reason,omitempty"`
	TotalRows int          `json:"totalRows"`
	Lines     []model.Line `json:"-"`
}

// ImportReport summary of one workbook import
type ImportReport struct {
	Filename       string        `json:"filename"`
	Show           string        `json:"show"`
	TotalSheets    int           `json:"totalSheets"`
	ImportedSheets int           `json:"importedSheets"`
	SkippedSheets  int           `json:"skippedSheets"`
	TotalRows      int           `json:"totalRows"`
	ImportedLines  int           `json:"importedLines"`
	Duration       time.Duration `json:"duration"`
	Sheets         []SheetResult `json:"sheets"`
}

// Fold accumulates one sheet outcome into the report totals.
func (r *ImportReport) Fold(res SheetResult) {
	r.TotalSheets++
	r.TotalRows += res.TotalRows
	if res.Status == StatusImported {
		r.ImportedSheets++
		r.ImportedLines += len(res.Lines)
	} else {
		r.SkippedSheets++
	}
	r.Sheets = append(r.Sheets, res)
}
