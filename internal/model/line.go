package model

// SourceType which side of the ledger a sheet represents.
// Inferred from sheet and file naming, never from cell data.
type SourceType string

const (
	SourceSales     SourceType = "sales"
	SourcePurchases SourceType = "purchases"
	SourceUnknown   SourceType = "unknown"
)

// VATCode canonical VAT treatment tag
type VATCode string

const (
	VATStandard  VATCode = "T20"
	VATZeroRated VATCode = "T0"
	VATExempt    VATCode = "EXEMPT"
	VATOutScope  VATCode = "OOS"
	VATReduced   VATCode = "REDUCED"
	VATNorthIre  VATCode = "NI"
	VATEuropean  VATCode = "EU"
	VATUnknown   VATCode = "UNKNOWN"
)

// Line one normalized ledger transaction derived from a single spreadsheet row.
// Optional text fields are empty when the source sheet lacks the column.
// Raw keeps the original header -> cell mapping for audit; blank cells are
// dropped rather than stored as sentinel strings.
type Line struct {
	Show        string            `json:"show"`
	Sheet       string            `json:"sheet"`
	Date        string            `json:"date,omitempty"`
	Ref         string            `json:"ref,omitempty"`
	Supplier    string            `json:"supplier,omitempty"`
	Description string            `json:"description,omitempty"`
	Net         float64           `json:"net"`
	VAT         float64           `json:"vat"`
	Gross       float64           `json:"gross"`
	VATCode     VATCode           `json:"vat_code"`
	SourceType  SourceType        `json:"source_type"`
	Raw         map[string]string `json:"raw,omitempty"`
}
