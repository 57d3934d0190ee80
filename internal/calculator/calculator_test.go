package calculator

import (
	"math"
	"testing"

	"github.com/Wesls1990/psltomtd/internal/model"
)

func line(show string, st model.SourceType, code model.VATCode, net, vat float64) model.Line {
	return model.Line{
		Show:       show,
		Sheet:      "sheet",
		Net:        net,
		VAT:        vat,
		Gross:      net + vat,
		VATCode:    code,
		SourceType: st,
	}
}

func wantBoxes(t *testing.T, got model.BoxTotals, want map[string]float64) {
	t.Helper()
	for _, k := range model.BoxKeys {
		if math.Abs(got[k]-want[k]) > 1e-9 {
			t.Fatalf("box %s = %v, want %v", k, got[k], want[k])
		}
	}
}

func TestAssign_StandardRatedSale(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourceSales, model.VATStandard, 100, 20),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"1": 20, "6": 100})
	wantBoxes(t, out.Consolidated, map[string]float64{"1": 20, "6": 100})
}

func TestAssign_ReducedRatePurchase(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourcePurchases, model.VATReduced, 200, 10),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"4": 10, "7": 200})
}

func TestAssign_UnknownSourceTreatedAsPurchase(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourceUnknown, model.VATStandard, 80, 16),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"4": 16, "7": 80})
}

func TestAssign_ZeroRatedSaleOnlyBox6(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourceSales, model.VATZeroRated, 40, 0),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"6": 40})
}

func TestAssign_EUSaleFiresBox8Independently(t *testing.T) {
	t.Parallel()

	// The EU marker is not one of the rate branches, so box 6 stays
	// untouched while box 8 still fires.
	out := Assign([]model.Line{
		line("tour", model.SourceSales, model.VATEuropean, 50, 0),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"8": 50})
}

func TestAssign_NIPurchaseFiresBox9(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourcePurchases, model.VATNorthIre, 30, 0),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{"9": 30})
}

func TestAssign_ExemptAndUnknownCodesContributeNothing(t *testing.T) {
	t.Parallel()

	out := Assign([]model.Line{
		line("tour", model.SourceSales, model.VATExempt, 25, 0),
		line("tour", model.SourcePurchases, model.VATUnknown, 10, 2),
		line("tour", model.SourceSales, model.VATOutScope, 5, 0),
	})
	wantBoxes(t, out.PerShow["tour"].Boxes, map[string]float64{})
	if len(out.PerShow["tour"].Lines) != 3 {
		t.Fatalf("lines must be kept even when no box fires")
	}
}

func TestAssign_ConsolidatedEqualsSumOfShows(t *testing.T) {
	t.Parallel()

	lines := []model.Line{
		line("show-a", model.SourceSales, model.VATStandard, 100, 20),
		line("show-a", model.SourcePurchases, model.VATReduced, 50, 5),
		line("show-b", model.SourceSales, model.VATStandard, 200, 40),
		line("show-b", model.SourceSales, model.VATEuropean, 30, 0),
		line("show-c", model.SourceUnknown, model.VATNorthIre, 10, 0),
	}
	out := Assign(lines)

	if len(out.PerShow) != 3 {
		t.Fatalf("want 3 shows, got %d", len(out.PerShow))
	}
	for _, k := range model.BoxKeys {
		sum := 0.0
		for _, acc := range out.PerShow {
			sum += acc.Boxes[k]
		}
		if math.Abs(sum-out.Consolidated[k]) > 1e-9 {
			t.Fatalf("box %s: consolidated %v != sum %v", k, out.Consolidated[k], sum)
		}
	}
}

func TestAssign_OrderIndependence(t *testing.T) {
	t.Parallel()

	lines := []model.Line{
		line("tour", model.SourceSales, model.VATStandard, 100, 20),
		line("tour", model.SourceSales, model.VATZeroRated, 40, 0),
		line("tour", model.SourcePurchases, model.VATStandard, 60, 12),
	}
	forward := Assign(lines)
	reversed := Assign([]model.Line{lines[2], lines[1], lines[0]})
	for _, k := range model.BoxKeys {
		if forward.Consolidated[k] != reversed.Consolidated[k] {
			t.Fatalf("box %s depends on line order", k)
		}
	}
}

func TestAssign_NoLines(t *testing.T) {
	t.Parallel()

	out := Assign(nil)
	if len(out.PerShow) != 0 {
		t.Fatalf("unexpected shows: %v", out.PerShow)
	}
	wantBoxes(t, out.Consolidated, map[string]float64{})
}
