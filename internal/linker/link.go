package linker

import (
	"slices"

	"oppstrength/internal/strength"

	"github.com/antzucaro/matchr"
)

// Link pairs a name from one list with its closest name from another.
type Link struct {
	Left        string
	Right       string
	Correlation float64
}

// CreateLinks pairs names of the two lists, each name is used at most once. Exact matches
// are paired first, the rest are paired by descending Jaro-Winkler similarity, ties going
// to the pair that comes first in the input lists.
func CreateLinks(leftList, rightList []string) []Link {
	var result []Link
	matchedLeft := make(map[string]struct{})
	matchedRight := make(map[string]struct{})

	add := func(left, right string, correlation float64) {
		result = append(result, Link{Left: left, Right: right, Correlation: correlation})
		matchedLeft[left] = struct{}{}
		matchedRight[right] = struct{}{}
	}

	for _, left := range leftList {
		for _, right := range rightList {
			if _, ok := matchedRight[right]; ok {
				continue
			}
			if left == right {
				add(left, right, 1)
				break
			}
		}
	}

	var candidates []Link
	for _, left := range leftList {
		if _, ok := matchedLeft[left]; ok {
			continue
		}
		for _, right := range rightList {
			if _, ok := matchedRight[right]; ok {
				continue
			}
			similarity := matchr.JaroWinkler(left, right, false)
			if similarity > 0 {
				candidates = append(candidates, Link{Left: left, Right: right, Correlation: similarity})
			}
		}
	}
	slices.SortStableFunc(candidates, func(a, b Link) int {
		switch {
		case a.Correlation > b.Correlation:
			return -1
		case a.Correlation < b.Correlation:
			return 1
		}
		return 0
	})

	for _, link := range candidates {
		_, isMatchedLeft := matchedLeft[link.Left]
		_, isMatchedRight := matchedRight[link.Right]
		if isMatchedLeft || isMatchedRight {
			continue
		}
		add(link.Left, link.Right, link.Correlation)
	}

	return result
}

// Reconcile copies valuations onto fixture names that have no valuation of their own,
// using the closest still-unused valuation name when its similarity reaches threshold.
// The returned links are the ones that were applied, `values` is left untouched.
func Reconcile(teams []string, values strength.TeamValuation, threshold float64) (strength.TeamValuation, []Link) {
	out := make(strength.TeamValuation, len(values))
	for name, value := range values {
		out[name] = value
	}

	var unmatchedTeams []string
	used := map[string]struct{}{}
	for _, team := range teams {
		if _, ok := values[team]; ok {
			used[team] = struct{}{}
			continue
		}
		unmatchedTeams = append(unmatchedTeams, team)
	}

	var candidates []string
	for name := range values {
		if _, ok := used[name]; !ok {
			candidates = append(candidates, name)
		}
	}
	// map iteration is random, links must not depend on it
	slices.Sort(candidates)

	var applied []Link
	for _, link := range CreateLinks(unmatchedTeams, candidates) {
		if link.Correlation < threshold {
			continue
		}
		out[link.Left] = values[link.Right]
		applied = append(applied, link)
	}
	return out, applied
}
