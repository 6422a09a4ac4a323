package dispatchers

import (
	"sort"
	"strings"
)

const (
	maxCommandDistance = 3
	maxFlagDistance    = 2
)

// levenshtein returns the case-insensitive edit distance between a and b,
// counted in runes.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(rb)]
}

// closest returns up to limit candidates within maxDistance of input, nearest
// first and then by name. Exact matches are left out.
func closest(input string, candidates []string, maxDistance, limit int) []string {
	type ranked struct {
		name     string
		distance int
	}

	var hits []ranked
	for _, c := range candidates {
		if d := levenshtein(input, c); d > 0 && d <= maxDistance {
			hits = append(hits, ranked{name: c, distance: d})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}
		return hits[i].name < hits[j].name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// FindSimilarCommands returns up to maxResults registered command names close to input.
func FindSimilarCommands(input string, reg *Registry, maxResults int) []string {
	if reg == nil {
		return nil
	}
	return closest(input, reg.Names(), maxCommandDistance, maxResults)
}

// FindSimilarFlags returns up to maxResults "--long" names of cmd close to a
// mistyped "--name" token. Short tokens get no suggestions.
func FindSimilarFlags(cmd CommandSpec, tok string, maxResults int) []string {
	name, ok := strings.CutPrefix(tok, "--")
	if !ok || name == "" {
		return nil
	}

	longs := make([]string, 0, len(cmd.Flags))
	for _, f := range cmd.Flags {
		longs = append(longs, f.Long)
	}

	out := closest(name, longs, maxFlagDistance, maxResults)
	for i := range out {
		out[i] = "--" + out[i]
	}
	return out
}
