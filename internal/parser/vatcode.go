package parser

import (
	"regexp"
	"strings"

	"github.com/Wesls1990/psltomtd/internal/model"
)

// vatFamilyPattern recognizes alternative spellings per tag family
// (standard / zero / exempt / out-of-scope / reduced / NI-EU markers).
var vatFamilyPattern = regexp.MustCompile(`(?i)(t\s*-?\s*20|t\s*-?\s*1|std|standard|20%|20) |(t\s*-?\s*0|zero|0%) |(exempt|e) |(vx|out\s*of\s*scope|oos) |(t\s*-?\s*5|5%|reduced) |(ni|northern\s*ireland|\bEU\b|\bEC\b)`)

// tokenSplit separates a code cell into lookup tokens.
var tokenSplit = regexp.MustCompile(`[^a-z0-9%]+`)

// VATNormalizer canonicalizes free-form VAT code cells into tags.
type VATNormalizer struct {
	tokens []TokenRule
}

// NewVATNormalizer builds a normalizer over the given ordered token table.
func NewVATNormalizer(tokens []TokenRule) *VATNormalizer {
	return &VATNormalizer{tokens: tokens}
}

// Normalize resolves a raw code cell, falling back to the row's
// description text. VAT code columns are frequently missing, abbreviated
// inconsistently or only inferable from narration, so resolution is
// layered and degrades to UNKNOWN instead of failing:
//
//  1. family pattern match on the code, then first table token contained
//     in the matched block
//  2. exact table lookup of each token after splitting the code
//  3. first table token contained anywhere in the description
func (n *VATNormalizer) Normalize(code, description string) model.VATCode {
	s := strings.ToLower(strings.TrimSpace(code))

	if s != "" {
		if block := vatFamilyPattern.FindString(s); block != "" {
			block = strings.ToLower(block)
			for _, tr := range n.tokens {
				if strings.Contains(block, tr.Token) {
					return tr.Tag
				}
			}
		}

		for _, tok := range tokenSplit.Split(s, -1) {
			if tok == "" {
				continue
			}
			for _, tr := range n.tokens {
				if tr.Token == tok {
					return tr.Tag
				}
			}
		}
	}

	if d := strings.ToLower(description); d != "" {
		for _, tr := range n.tokens {
			if strings.Contains(d, tr.Token) {
				return tr.Tag
			}
		}
	}

	return model.VATUnknown
}
