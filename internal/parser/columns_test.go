package parser

import "testing"

func TestNormalizeColumnName(t *testing.T) {
	t.Parallel()

	if got := NormalizeColumnName("  VAT   Code "); got != "vat code" {
		t.Fatalf("unexpected normalization: %q", got)
	}
	if got := NormalizeColumnName("Net\tAmount"); got != "net amount" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

func TestFindColumn_ExactBeatsSubstring(t *testing.T) {
	t.Parallel()

	// "VAT Amount" appears first and contains "vat", but the exact
	// match on "VAT" must win.
	headers := []string{"VAT Amount", "VAT"}
	if got := FindColumn(headers, []string{"vat", "tax"}); got != 1 {
		t.Fatalf("want exact match at 1, got %d", got)
	}
}

func TestFindColumn_CandidateOrderInFuzzyPass(t *testing.T) {
	t.Parallel()

	// No exact match; "net" is listed before "amount" so the later
	// column wins over the earlier one.
	headers := []string{"Gross Amount", "Net Total"}
	if got := FindColumn(headers, []string{"net", "amount"}); got != 1 {
		t.Fatalf("want candidate-priority match at 1, got %d", got)
	}
}

func TestFindColumn_WhitespaceCollapsedExact(t *testing.T) {
	t.Parallel()

	headers := []string{"  Doc   No "}
	if got := FindColumn(headers, []string{"doc no"}); got != 0 {
		t.Fatalf("want 0, got %d", got)
	}
}

func TestFindColumn_NoMatch(t *testing.T) {
	t.Parallel()

	if got := FindColumn([]string{"Foo", "Qux"}, []string{"vat", "tax"}); got != -1 {
		t.Fatalf("want -1, got %d", got)
	}
	if got := FindColumn(nil, []string{"vat"}); got != -1 {
		t.Fatalf("want -1 for empty headers, got %d", got)
	}
}
