package npartial

import (
	"github.com/agext/levenshtein"
)

// nameSuggestion returns the candidate closest to given, or "" if
// none of them is close enough to be a likely typo.
func nameSuggestion(given string, candidates []string) string {
	best := ""
	bestDist := 3
	for _, c := range candidates {
		dist := levenshtein.Distance(given, c, nil)
		if dist < bestDist {
			best = c
			bestDist = dist
		}
	}
	return best
}
