package parser

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// NormalizeColumnName collapses whitespace runs, trims and lowercases.
func NormalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(spaceRun.ReplaceAllString(name, " ")))
}

// FindColumn resolves a semantic field against actual sheet headers.
// An exact match on a normalized header wins before any substring match,
// checking candidates in listed order. The substring pass also iterates
// candidates first, then columns, so earlier candidates take precedence.
// Returns -1 when no header matches.
func FindColumn(headers []string, candidates []string) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeColumnName(h)
	}

	for _, want := range candidates {
		w := strings.ToLower(want)
		for i, h := range normalized {
			if h == w {
				return i
			}
		}
	}

	for _, want := range candidates {
		w := strings.ToLower(want)
		for i, h := range headers {
			if strings.Contains(strings.ToLower(h), w) {
				return i
			}
		}
	}

	return -1
}
