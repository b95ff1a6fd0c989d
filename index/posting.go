package index

import (
	"sort"
	"strconv"
	"strings"
)

// PostingSet is the set of document IDs that contain a given term.
// Membership, not order, is what matters in memory; SortedIDs imposes the
// canonical ascending order used at the serialization and output boundaries.
type PostingSet map[int]struct{}

// NewPostingSet creates a PostingSet from the given IDs, collapsing
// duplicates.
func NewPostingSet(ids ...int) PostingSet {
	ps := make(PostingSet, len(ids))
	for _, id := range ids {
		ps[id] = struct{}{}
	}
	return ps
}

// Add inserts id into the set. Adding an ID already present is a no-op.
func (ps PostingSet) Add(id int) {
	ps[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (ps PostingSet) Contains(id int) bool {
	_, ok := ps[id]
	return ok
}

// Len returns the number of IDs in the set.
func (ps PostingSet) Len() int {
	return len(ps)
}

// Clone returns an independent copy of the set.
func (ps PostingSet) Clone() PostingSet {
	out := make(PostingSet, len(ps))
	for id := range ps {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns a new PostingSet holding the IDs present in both ps and
// other. Iterates the smaller set.
func (ps PostingSet) Intersect(other PostingSet) PostingSet {
	small, large := ps, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(PostingSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// SortedIDs returns the set's IDs in ascending order.
func (ps PostingSet) SortedIDs() []int {
	ids := make([]int, 0, len(ps))
	for id := range ps {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// String renders the set as comma-separated decimal IDs in ascending order.
// An empty set renders as the empty string.
func (ps PostingSet) String() string {
	ids := ps.SortedIDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
