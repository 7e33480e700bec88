package main

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// minSimilarity is the lowest ratio a name needs to be suggested.
const minSimilarity = 0.6

// closestMatch returns the candidate most similar to name, or "" when none is close enough.
func closestMatch(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	var best string
	var bestRatio float64
	for _, c := range candidates {
		ratio := difflib.NewMatcher(strings.Split(name, ""), strings.Split(strings.ToLower(c), "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio < minSimilarity {
		return ""
	}
	return best
}
