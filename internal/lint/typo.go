package lint

import (
	edlib "github.com/hbollon/go-edlib"
)

// DefaultDistanceThreshold is the largest Damerau-Levenshtein distance at
// which a singleton prefix still counts as a plausible typo of another
// group's prefix.
const DefaultDistanceThreshold = 1

// TypoCandidate pairs a singleton group with the larger group whose prefix
// it plausibly mistypes.
type TypoCandidate struct {
	Singleton PrefixGroup
	Candidate PrefixGroup
}

// EstimateTypos clusters keywords by shared prefixes and reports likely
// typos. The heuristics knowingly produce false positives and false
// negatives, so callers must surface the findings as warnings, never as
// errors.
func EstimateTypos(keywords []string, minPrefixLength, distanceThreshold int) []TypoCandidate {
	groups := SplitByCommonPrefixes(keywords, minPrefixLength)

	var candidates []TypoCandidate
	candidates = append(candidates, singletonHeuristic(groups, distanceThreshold)...)
	candidates = append(candidates, divergenceHeuristic(groups, distanceThreshold)...)
	return candidates
}

// singletonHeuristic compares every singleton group's prefix against every
// other group prefix of equal or shorter length. The singleton prefix is
// truncated to the candidate's length before measuring the edit distance; a
// singleton cannot be a typo of a longer prefix.
func singletonHeuristic(groups PrefixGroups, distanceThreshold int) []TypoCandidate {
	var candidates []TypoCandidate
	for i, singleton := range groups {
		if len(singleton.Members) != 1 {
			continue
		}
		for j, other := range groups {
			if i == j {
				continue
			}
			if len(singleton.Prefix) < len(other.Prefix) {
				continue
			}
			truncated := singleton.Prefix[:len(other.Prefix)]
			distance := edlib.DamerauLevenshteinDistance(truncated, other.Prefix)
			if distance <= distanceThreshold {
				candidates = append(candidates, TypoCandidate{
					Singleton: singleton,
					Candidate: other,
				})
			}
		}
	}
	return candidates
}

// divergenceHeuristic is the planned second detection strategy: comparing
// multi-member groups against each other to catch families that drifted
// apart by a typo in several entries at once. No logic exists yet; it
// reports no candidates for any input.
func divergenceHeuristic(groups PrefixGroups, distanceThreshold int) []TypoCandidate {
	_ = groups
	_ = distanceThreshold
	return nil
}
