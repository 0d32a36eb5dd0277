package lint

import "strings"

// DefaultMinPrefixLength is the shortest shared prefix that binds two field
// names into one group. Shorter accidental overlaps are noise.
const DefaultMinPrefixLength = 3

// PrefixGroup is one cluster of field names sharing a common prefix. Members
// keep their original order.
type PrefixGroup struct {
	Prefix  string
	Members []string
}

// PrefixGroups is an ordered set of clusters; group order follows the order
// in which reference keywords were drawn from the input.
type PrefixGroups []PrefixGroup

// commonPrefix returns the longest common leading substring of two strings.
func commonPrefix(a, b string) string {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	i := 0
	for i < max && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// SplitByCommonPrefixes partitions keywords into groups sharing a common
// prefix of at least minPrefixLength, greedily binding to the longest prefix
// found. Worst case O(n²) when nothing shares a prefix.
//
// The greedy lengthening means that "FooBarLong", "FooBarShort" and
// "FooBarLonger" split into two groups: the prefix grows to "FooBarLong"
// once the third keyword is seen, and "FooBarShort" falls back into the
// pool. Accepted trade-off: unrelated keywords sharing only a short
// accidental prefix rarely end up grouped, at the cost of occasionally
// splitting a family whose member lengths diverge early.
func SplitByCommonPrefixes(keywords []string, minPrefixLength int) PrefixGroups {
	pool := append([]string(nil), keywords...)
	var groups PrefixGroups

	for len(pool) > 0 {
		// The reference keyword leaves the pool up front, so every iteration
		// shrinks the pool and the loop terminates after at most n rounds.
		reference := pool[0]
		pool = pool[1:]

		group := []string{reference}
		prefix := ""
		havePrefix := false

		for _, kw := range pool {
			common := commonPrefix(reference, kw)
			switch {
			case !havePrefix && len(common) >= minPrefixLength:
				// First shared prefix establishes the group's working prefix.
				prefix = common
				havePrefix = true
				group = append(group, kw)
			case havePrefix && common == prefix:
				// Exact match on the current working prefix joins unconditionally.
				group = append(group, kw)
			case havePrefix && len(common) > len(prefix) && strings.HasPrefix(common, prefix):
				// Strict extension: lengthen the working prefix and drop
				// members that only matched the shorter one back to the pool.
				group = append(group, kw)
				prefix = common
				kept := make([]string, 0, len(group))
				for _, member := range group {
					if strings.HasPrefix(member, prefix) {
						kept = append(kept, member)
					}
				}
				group = kept
			}
		}

		grouped := make(map[string]bool, len(group))
		for _, member := range group {
			grouped[member] = true
		}
		remaining := pool[:0]
		for _, kw := range pool {
			if !grouped[kw] {
				remaining = append(remaining, kw)
			}
		}
		pool = remaining

		if !havePrefix {
			// No candidate reached the minimum length: singleton group keyed
			// by the reference keyword itself.
			prefix = reference
		}
		groups = append(groups, PrefixGroup{Prefix: prefix, Members: group})
	}

	return groups
}
