// Package segmenttree implements the static interval map named as a
// sibling module in spec.md section 6: a structure built once from a set
// of [start, end) intervals, each carrying a value, answering "which
// intervals cover this point" stabbing queries. Grounded on spec.md
// section 6's contract paragraph for this module; no dedicated original
// header was retrieved beyond segmenttree_test.cpp, so the internal
// representation follows the same sorted-endpoint-plus-binary-search shape
// blockseq.Sequence uses for its own acceleration index.
package segmenttree

import (
	"sort"

	"github.com/dot5enko/mdds/mddserr"
)

// Segment is one half-open interval [Start, End) carrying a value.
type Segment[V any] struct {
	Start, End int64
	Value      V
}

// Tree is an immutable interval map built by Build. It answers stabbing
// queries in O(log n + m), where m is the number of intervals whose Start
// is at or before the query point.
type Tree[V any] struct {
	segments []Segment[V]
	starts   []int64 // segments sorted by Start, for the binary search in SearchPoint
}

// Build constructs a Tree from segments. A segment with Start >= End is
// rejected with ErrInvalidArgument since it covers no point.
func Build[V any](segments []Segment[V]) (*Tree[V], error) {
	for _, s := range segments {
		if s.Start >= s.End {
			return nil, mddserr.ErrInvalidArgument
		}
	}

	sorted := make([]Segment[V], len(segments))
	copy(sorted, segments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	starts := make([]int64, len(sorted))
	for i, s := range sorted {
		starts[i] = s.Start
	}

	return &Tree[V]{segments: sorted, starts: starts}, nil
}

// SearchPoint returns every segment covering point, in ascending Start
// order.
func (t *Tree[V]) SearchPoint(point int64) []Segment[V] {
	// Every segment covering point has Start <= point, so the search space
	// is a prefix of the sorted-by-start array; scan it for End > point.
	upper := sort.Search(len(t.starts), func(i int) bool { return t.starts[i] > point })

	var out []Segment[V]
	for i := 0; i < upper; i++ {
		if t.segments[i].End > point {
			out = append(out, t.segments[i])
		}
	}
	return out
}

// SearchRange returns every segment that overlaps [start, end).
func (t *Tree[V]) SearchRange(start, end int64) []Segment[V] {
	var out []Segment[V]
	for _, s := range t.segments {
		if s.Start < end && s.End > start {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the number of segments in the tree.
func (t *Tree[V]) Len() int {
	return len(t.segments)
}
