package parser

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Wesls1990/psltomtd/internal/model"
)

// TokenRule one entry of the ordered VAT token table.
type TokenRule struct {
	Token string        `toml:"token"`
	Tag   model.VATCode `toml:"tag"`
}

// Ruleset the mapping tables the engine runs on. Both tables are data,
// not code: supporting a new spreadsheet convention means editing a
// mapping file, never the matching logic.
//
// Columns holds, per canonical field, the header name candidates in
// priority order. VATTokens is scanned in declared order, so more
// specific tokens must come before the one-letter ones.
type Ruleset struct {
	Columns   map[string][]string `toml:"columns"`
	VATTokens []TokenRule         `toml:"vat_tokens"`
}

// DefaultRuleset built-in tables covering the ledger conventions seen so far.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		Columns: map[string][]string{
			FieldDate:        {"date", "txn date", "doc date", "invoice date", "posting date"},
			FieldRef:         {"invoice", "inv", "document", "doc no", "reference", "ref"},
			FieldSupplier:    {"supplier", "vendor", "customer", "name", "account name"},
			FieldDescription: {"description", "narrative", "memo", "details"},
			FieldNet:         {"net", "amount (excl)", "amount excl vat", "goods", "taxable amount", "base", "amount"},
			FieldVAT:         {"vat", "tax", "vat amount", "tax amount", "vat amt"},
			FieldGross:       {"gross", "amount (incl)", "total", "amount incl vat"},
			FieldVATCode:     {"vat code", "tax code", "code", "t-code", "vat type", "rate", "vat rate"},
			FieldCurrency:    {"currency", "curr", "ccy"},
		},
		VATTokens: []TokenRule{
			{"northern ireland", model.VATNorthIre},
			{"out of scope", model.VATOutScope},
			{"outofscope", model.VATOutScope},
			{"standard", model.VATStandard},
			{"reduced", model.VATReduced},
			{"exempt", model.VATExempt},
			{"zero", model.VATZeroRated},
			{"eec", model.VATEuropean},
			{"t20", model.VATStandard},
			{"std", model.VATStandard},
			{"oos", model.VATOutScope},
			{"20%", model.VATStandard},
			{"0%", model.VATZeroRated},
			{"5%", model.VATReduced},
			{"t1", model.VATStandard},
			{"t0", model.VATZeroRated},
			{"t5", model.VATReduced},
			{"vx", model.VATOutScope},
			{"ni", model.VATNorthIre},
			{"eu", model.VATEuropean},
			{"ec", model.VATEuropean},
			{"20", model.VATStandard},
			{"z", model.VATZeroRated},
			{"0", model.VATZeroRated},
			{"5", model.VATReduced},
			{"e", model.VATExempt},
		},
	}
}

// LoadRuleset reads a TOML mapping file. An empty path returns the
// built-in tables. A loaded file replaces a table only when it defines
// one, so a file may override just the column candidates.
func LoadRuleset(path string) (*Ruleset, error) {
	rules := DefaultRuleset()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var loaded Ruleset
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse mapping file: %w", err)
	}

	if len(loaded.Columns) > 0 {
		rules.Columns = loaded.Columns
	}
	if len(loaded.VATTokens) > 0 {
		rules.VATTokens = loaded.VATTokens
	}
	return rules, nil
}
