/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validator

import (
	"sort"
	"strings"

	"bennypowers.dev/tavnit/token"
)

const (
	// suggestionThreshold is the minimum similarity for a candidate to
	// be offered.
	suggestionThreshold = 0.3

	// maxSuggestions caps suggestions per diagnostic.
	maxSuggestions = 3
)

// Similarity scores how alike two keys are on a 0..1 scale. Comparison is
// case-insensitive: identical strings score 1, an empty string scores 0,
// substring containment scores 0.8, and anything else scores by character
// set overlap (2·|A∩B| / (|A|+|B|)). This is a fast, order-insensitive
// heuristic, not an edit distance; it finds a plausible match, not
// necessarily the best one.
func Similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.8
	}

	as := runeSet(a)
	bs := runeSet(b)
	intersection := 0
	for r := range as {
		if bs[r] {
			intersection++
		}
	}
	return 2 * float64(intersection) / float64(len(as)+len(bs))
}

// Suggest returns up to three existing keys similar to the missing one,
// most similar first, each formatted in the given token type's syntax. The
// missing key itself is never offered.
func Suggest(missing string, candidates []string, typ token.Type) []string {
	type scored struct {
		key   string
		score float64
	}

	var matches []scored
	for _, candidate := range candidates {
		if candidate == missing {
			continue
		}
		if score := Similarity(missing, candidate); score > suggestionThreshold {
			matches = append(matches, scored{candidate, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, token.Format(typ, m.key))
	}
	return suggestions
}

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}
