package matchstore

import (
	"sort"

	"github.com/lounge-tools/lounge-tracker/internal/lounge"
)

// MatchSet is the in-memory match collection a sync pass returns, keyed by
// match id.
type MatchSet map[int64]*lounge.Match

// Sorted returns the matches ordered by ascending id. Statistics that scan
// for records rely on this ordering to break exact ties deterministically
// (the lowest match id wins).
func (s MatchSet) Sorted() []*lounge.Match {
	matches := make([]*lounge.Match, 0, len(s))
	for _, m := range s {
		matches = append(matches, m)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches
}

// IDs returns the sorted match ids in the set.
func (s MatchSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
