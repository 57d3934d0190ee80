package parser

import (
	"strings"

	"github.com/Wesls1990/psltomtd/internal/model"
)

// Extractor turns tabular sheets into normalized lines using the
// configured mapping tables.
type Extractor struct {
	rules *Ruleset
	vat   *VATNormalizer
}

// NewExtractor creates an extractor over the given ruleset.
func NewExtractor(rules *Ruleset) *Extractor {
	return &Extractor{
		rules: rules,
		vat:   NewVATNormalizer(rules.VATTokens),
	}
}

type resolvedColumns struct {
	date        int
	ref         int
	supplier    int
	description int
	net         int
	vat         int
	gross       int
	code        int
}

func (e *Extractor) resolve(headers []string) resolvedColumns {
	find := func(field string) int {
		return FindColumn(headers, e.rules.Columns[field])
	}
	return resolvedColumns{
		date:        find(FieldDate),
		ref:         find(FieldRef),
		supplier:    find(FieldSupplier),
		description: find(FieldDescription),
		net:         find(FieldNet),
		vat:         find(FieldVAT),
		gross:       find(FieldGross),
		code:        find(FieldVATCode),
	}
}

// ExtractSheet resolves columns once, then builds one Line per data row.
// Rows where net, vat and gross all coerce to zero carry no transaction
// and are dropped. A sheet resolving none of the amount columns is
// skipped outright.
func (e *Extractor) ExtractSheet(show, filename string, sheet Sheet) SheetResult {
	res := SheetResult{Sheet: sheet.Name, Status: StatusSkipped}

	if len(sheet.Rows) < 2 {
		res.Reason = "no data rows"
		return res
	}

	headers := sheet.Rows[0]
	dataRows := sheet.Rows[1:]
	res.TotalRows = len(dataRows)

	cols := e.resolve(headers)
	if cols.net < 0 && cols.vat < 0 && cols.gross < 0 {
		res.Reason = "no amount columns"
		return res
	}

	srcType := DetectSourceType(sheet.Name, filename)

	for _, row := range dataRows {
		net := ToAmount(cellAt(row, cols.net))
		vat := ToAmount(cellAt(row, cols.vat))
		gross := net + vat
		if cols.gross >= 0 {
			gross = ToAmount(cellAt(row, cols.gross))
		}
		if net == 0 && vat == 0 && gross == 0 {
			continue
		}

		desc := cellAt(row, cols.description)
		line := model.Line{
			Show:        show,
			Sheet:       sheet.Name,
			Date:        cellAt(row, cols.date),
			Ref:         cellAt(row, cols.ref),
			Supplier:    cellAt(row, cols.supplier),
			Description: desc,
			Net:         net,
			VAT:         vat,
			Gross:       gross,
			VATCode:     e.vat.Normalize(cellAt(row, cols.code), desc),
			SourceType:  srcType,
			Raw:         rawCells(headers, row),
		}
		res.Lines = append(res.Lines, line)
	}

	res.Status = StatusImported
	return res
}

// ExtractSheets folds a workbook's sheets into the concatenation of
// successful extractions plus per-sheet outcomes. Skipped sheets never
// abort the rest of the workbook.
func (e *Extractor) ExtractSheets(show, filename string, sheets []Sheet) ([]model.Line, []SheetResult) {
	var lines []model.Line
	results := make([]SheetResult, 0, len(sheets))
	for _, sheet := range sheets {
		res := e.ExtractSheet(show, filename, sheet)
		lines = append(lines, res.Lines...)
		results = append(results, res)
	}
	return lines, results
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// rawCells keeps the original header -> cell mapping for audit.
// Blank headers and blank cells are absent, never sentinel strings.
func rawCells(headers []string, row []string) map[string]string {
	raw := make(map[string]string, len(headers))
	for i, h := range headers {
		if strings.TrimSpace(h) == "" {
			continue
		}
		v := cellAt(row, i)
		if v == "" {
			continue
		}
		raw[h] = v
	}
	if len(raw) == 0 {
		return nil
	}
	return raw
}
