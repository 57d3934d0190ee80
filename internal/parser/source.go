package parser

import (
	"strings"

	"github.com/Wesls1990/psltomtd/internal/model"
)

var (
	salesKeywords    = []string{"sale", "ar", "output"}
	purchaseKeywords = []string{"purchase", "ap", "input", "payable"}
)

// DetectSourceType infers sales vs purchases from sheet and file naming.
// Sales keywords win when both sides match.
func DetectSourceType(sheetName, filename string) model.SourceType {
	probe := strings.ToLower(sheetName + " " + filename)
	for _, w := range salesKeywords {
		if strings.Contains(probe, w) {
			return model.SourceSales
		}
	}
	for _, w := range purchaseKeywords {
		if strings.Contains(probe, w) {
			return model.SourcePurchases
		}
	}
	return model.SourceUnknown
}
