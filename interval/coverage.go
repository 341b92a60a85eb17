package interval

import (
	"fmt"
	"sort"
	"strings"
)

// Coverage is a union of closed intervals, stored as a sorted sequence of
// disjoint intervals.  After every operation, for consecutive stored
// intervals x and y, x.Hi+1 < y.Lo holds: overlapping and adjacent intervals
// are merged.
//
// The zero value is an empty Coverage.  Copies made by assignment may share
// storage, but Insert never modifies storage it may share, so each copy keeps
// its own contents.  A Coverage is not safe for concurrent mutation; use
// Clone to hand a copy to another goroutine.
type Coverage struct {
	// ranges is the normalized interval list.  Never aliased outside this
	// package.
	ranges []Interval
}

func checkValid(fn string, iv Interval) {
	if iv.Lo > iv.Hi {
		panic(fmt.Sprintf("interval.%s: invalid interval [%d, %d]", fn, iv.Lo, iv.Hi))
	}
}

// merge returns the single interval covering a and b, which must overlap or
// be adjacent.
func merge(a, b Interval) Interval {
	u, more := a.Union(b)
	if more == nil {
		return u
	}
	if !a.touches(b) {
		panic(fmt.Sprintf("internal error: interval.merge called on disjoint %v and %v", a, b))
	}
	// Adjacent: Union keeps them apart, but together they are one run.
	return a.span(b)
}

// NewCoverage builds a Coverage from ranges, which may be in any order and
// may overlap.  ranges is not modified.  It panics if any interval has
// Lo > Hi.
func NewCoverage(ranges []Interval) Coverage {
	if len(ranges) == 0 {
		return Coverage{}
	}
	sorted := make([]Interval, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	flattened := sorted[:0]
	for _, iv := range sorted {
		checkValid("NewCoverage", iv)
		if n := len(flattened); n > 0 && flattened[n-1].touches(iv) {
			flattened[n-1] = merge(flattened[n-1], iv)
			continue
		}
		flattened = append(flattened, iv)
	}
	return Coverage{ranges: flattened[:len(flattened):len(flattened)]}
}

// search returns the index of a stored interval that overlaps or is adjacent
// to iv, with found=true.  If there is none, it returns the position where iv
// would be inserted.
//
// Stored intervals are disjoint and non-adjacent, so the ones touching iv form
// a contiguous run, everything before the run sorts below iv and everything
// after it sorts above.  That makes "touches" usable as equality in a binary
// search.
func search(ranges []Interval, iv Interval) (idx int, found bool) {
	idx = sort.Search(len(ranges), func(i int) bool {
		return ranges[i].touches(iv) || iv.Less(ranges[i])
	})
	return idx, idx < len(ranges) && ranges[idx].touches(iv)
}

// insertFlattened returns ranges with iv merged in.  It never writes to the
// backing array of ranges, which copies of the Coverage may share.
func insertFlattened(ranges []Interval, iv Interval) []Interval {
	idx, found := search(ranges, iv)
	if !found {
		out := make([]Interval, 0, len(ranges)+1)
		out = append(out, ranges[:idx]...)
		out = append(out, iv)
		return append(out, ranges[idx:]...)
	}
	existing := ranges[idx]
	// The capacity limit makes append allocate instead of shifting in place.
	ranges = append(ranges[:idx:idx], ranges[idx+1:]...)
	// The merged interval may now reach a neighbor that existing did not.
	return insertFlattened(ranges, merge(existing, iv))
}

// Insert adds iv to the coverage, merging it with every stored interval it
// overlaps or is adjacent to.  It panics if iv.Lo > iv.Hi.
func (c *Coverage) Insert(iv Interval) {
	checkValid("Coverage.Insert", iv)
	c.ranges = insertFlattened(c.ranges, iv)
}

// Ranges returns a copy of the normalized intervals in ascending order.
func (c Coverage) Ranges() []Interval {
	if len(c.ranges) == 0 {
		return nil
	}
	r := make([]Interval, len(c.ranges))
	copy(r, c.ranges)
	return r
}

// Len returns the number of stored (merged) intervals.
func (c Coverage) Len() int { return len(c.ranges) }

// Bounds returns [first.Lo, last.Hi].  ok is false if the coverage is empty.
// Positions inside the bounds are not necessarily covered; see Gaps.
func (c Coverage) Bounds() (b Interval, ok bool) {
	if len(c.ranges) == 0 {
		return Interval{}, false
	}
	return Interval{c.ranges[0].Lo, c.ranges[len(c.ranges)-1].Hi}, true
}

// Gaps returns the uncovered runs strictly between consecutive stored
// intervals.  Nothing before the first or after the last interval is
// included, so a coverage with fewer than two intervals has no gaps.
func (c Coverage) Gaps() Coverage {
	var gaps []Interval
	for i := 1; i < len(c.ranges); i++ {
		lo, hi := c.ranges[i-1].Hi+1, c.ranges[i].Lo-1
		if lo <= hi {
			gaps = append(gaps, Interval{lo, hi})
		}
	}
	return Coverage{ranges: gaps}
}

// AreaCovered returns the number of covered positions.
func (c Coverage) AreaCovered() PosType {
	var area PosType
	for _, r := range c.ranges {
		area += r.Width()
	}
	return area
}

// Contains checks whether any position of iv is covered.
func (c Coverage) Contains(iv Interval) bool {
	idx := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].Hi >= iv.Lo })
	return idx < len(c.ranges) && c.ranges[idx].Intersects(iv)
}

// ContainsPos checks whether pos is covered.
func (c Coverage) ContainsPos(pos PosType) bool {
	return c.Contains(Interval{pos, pos})
}

// Clip returns the part of the coverage that lies inside bound.
func (c Coverage) Clip(bound Interval) Coverage {
	var clipped []Interval
	idx := sort.Search(len(c.ranges), func(i int) bool { return c.ranges[i].Hi >= bound.Lo })
	for ; idx < len(c.ranges) && c.ranges[idx].Lo <= bound.Hi; idx++ {
		if r, ok := c.ranges[idx].Intersection(bound); ok {
			clipped = append(clipped, r)
		}
	}
	return Coverage{ranges: clipped}
}

// Clone returns a Coverage that shares nothing with c.
func (c Coverage) Clone() Coverage {
	return Coverage{ranges: c.Ranges()}
}

// Equal checks whether c and other cover the same positions.
func (c Coverage) Equal(other Coverage) bool {
	if len(c.ranges) != len(other.ranges) {
		return false
	}
	for i := range c.ranges {
		if c.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}

// String renders the coverage as e.g. "{0-5 8-20}".
func (c Coverage) String() string {
	strs := make([]string, len(c.ranges))
	for i, r := range c.ranges {
		strs[i] = r.String()
	}
	return "{" + strings.Join(strs, " ") + "}"
}
