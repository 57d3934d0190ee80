// Package calculator folds normalized lines into MTD box totals.
package calculator

import (
	"github.com/Wesls1990/psltomtd/internal/model"
)

// Assign aggregates lines into per-show box totals plus a consolidated
// total, grouped by show (one group per uploaded file, regardless of how
// many sheets it had). Line order within a group is preserved; totals do
// not depend on it.
//
// The box1/6, box4/7 and zero-rated box6 branches are mutually exclusive
// per line. The NI/EU box8/9 rules fire independently on top of them.
func Assign(lines []model.Line) model.ParseOutcome {
	perShow := make(map[string]*model.Aggregate)

	for _, ln := range lines {
		acc := perShow[ln.Show]
		if acc == nil {
			acc = &model.Aggregate{Boxes: model.NewBoxTotals()}
			perShow[ln.Show] = acc
		}

		sales := ln.SourceType == model.SourceSales
		switch {
		case sales && ln.VATCode == model.VATStandard:
			acc.Boxes["1"] += ln.VAT
			acc.Boxes["6"] += ln.Net
		case !sales && (ln.VATCode == model.VATStandard || ln.VATCode == model.VATReduced):
			acc.Boxes["4"] += ln.VAT
			acc.Boxes["7"] += ln.Net
		case sales && ln.VATCode == model.VATZeroRated:
			acc.Boxes["6"] += ln.Net
		}

		if ln.VATCode == model.VATNorthIre || ln.VATCode == model.VATEuropean {
			if sales {
				acc.Boxes["8"] += ln.Net
			} else {
				acc.Boxes["9"] += ln.Net
			}
		}

		acc.Lines = append(acc.Lines, ln)
	}

	consolidated := model.NewBoxTotals()
	for _, acc := range perShow {
		consolidated.AddTotals(acc.Boxes)
	}

	return model.ParseOutcome{PerShow: perShow, Consolidated: consolidated}
}
