package command

import (
	"sort"
	"strings"
)

const maxSuggestions = 3

// suggest returns up to maxSuggestions candidates close to input, nearest
// first. Short inputs tolerate fewer edits.
func suggest(input string, candidates []string) []string {
	input = strings.ToLower(input)
	if input == "" {
		return nil
	}

	threshold := 3
	switch {
	case len(input) <= 3:
		threshold = 1
	case len(input) <= 6:
		threshold = 2
	}

	type match struct {
		name string
		dist int
	}

	var matches []match
	for _, c := range candidates {
		lc := strings.ToLower(c)
		switch {
		case strings.HasPrefix(lc, input):
			matches = append(matches, match{name: c, dist: 0})
		default:
			if d := levenshtein(input, lc); d <= threshold {
				matches = append(matches, match{name: c, dist: d})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) == 0 {
		return nil
	}

	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, m.name)
	}

	return out
}

// levenshtein computes the edit distance between a and b using two rows.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
