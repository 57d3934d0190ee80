package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Wesls1990/psltomtd/internal/model"
)

func TestDefaultRuleset_CoversAllFields(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleset()
	for _, field := range []string{
		FieldDate, FieldRef, FieldSupplier, FieldDescription,
		FieldNet, FieldVAT, FieldGross, FieldVATCode, FieldCurrency,
	} {
		if len(rules.Columns[field]) == 0 {
			t.Fatalf("no candidates for field %q", field)
		}
	}
	if len(rules.VATTokens) == 0 {
		t.Fatalf("empty VAT token table")
	}
}

func TestDefaultRuleset_SpecificTokensBeforeShortOnes(t *testing.T) {
	t.Parallel()

	// The description fallback scans in table order; "eu" must come
	// before "e" or any EU narration would resolve as exempt.
	pos := map[string]int{}
	for i, tr := range DefaultRuleset().VATTokens {
		pos[tr.Token] = i
	}
	if pos["eu"] > pos["e"] {
		t.Fatalf(`"eu" listed after "e"`)
	}
	if pos["zero"] > pos["z"] {
		t.Fatalf(`"zero" listed after "z"`)
	}
}

func TestLoadRuleset_EmptyPathUsesDefaults(t *testing.T) {
	t.Parallel()

	rules, err := LoadRuleset("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rules.Columns) == 0 || len(rules.VATTokens) == 0 {
		t.Fatalf("defaults not loaded")
	}
}

func TestLoadRuleset_PartialOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mapping.toml")
	content := `
[columns]
net = ["net value"]
vat = ["tax charged"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}

	rules, err := LoadRuleset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := rules.Columns[FieldNet]; len(got) != 1 || got[0] != "net value" {
		t.Fatalf("net candidates not overridden: %v", got)
	}
	// The token table was not in the file, so the default survives.
	if len(rules.VATTokens) == 0 {
		t.Fatalf("token table lost on partial override")
	}
}

func TestLoadRuleset_TokenOverride(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mapping.toml")
	content := `
[[vat_tokens]]
token = "t23"
tag = "T20"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}

	rules, err := LoadRuleset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	n := NewVATNormalizer(rules.VATTokens)
	if got := n.Normalize("T23", ""); got != model.VATStandard {
		t.Fatalf("custom token not applied: %s", got)
	}
}

func TestLoadRuleset_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadRuleset(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("expected error for missing mapping file")
	}
}
