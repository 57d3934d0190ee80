package model

// BoxKeys the six MTD return boxes this tool computes, in report order.
var BoxKeys = []string{"1", "4", "6", "7", "8", "9"}

// BoxNames display labels for the boxes
var BoxNames = map[string]string{
	"1": "VAT due on sales (Box 1)",
	"4": "VAT reclaimable on purchases (Box 4)",
	"6": "Total value of sales ex VAT (Box 6)",
	"7": "Total value of purchases ex VAT (Box 7)",
	"8": "Value of supplies to EU (NI only) (Box 8)",
	"9": "Value of acquisitions from EU (NI only) (Box 9)",
}

// BoxTotals running totals keyed by box number ("1", "4", "6", "7", "8", "9")
type BoxTotals map[string]float64

// NewBoxTotals returns totals with every box present and zeroed.
func NewBoxTotals() BoxTotals {
	t := make(BoxTotals, len(BoxKeys))
	for _, k := range BoxKeys {
		t[k] = 0
	}
	return t
}

// AddTotals adds every box of other into t.
func (t BoxTotals) AddTotals(other BoxTotals) {
	for _, k := range BoxKeys {
		t[k] += other[k]
	}
}

// Aggregate box totals for one show plus the lines that produced them,
// in row order across the show's sheets.
type Aggregate struct {
	Boxes BoxTotals `json:"boxes"`
	Lines []Line    `json:"lines"`
}

// ParseOutcome the result of one parse request: per-show aggregates and
// the consolidated totals across all shows.
type ParseOutcome struct {
	PerShow      map[string]*Aggregate `json:"per_show"`
	Consolidated BoxTotals             `json:"consolidated"`
}
