package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// PosType is the coordinate type of Interval and Coverage.
type PosType = int64

// PosTypeMax is the maximum value that can be represented by a PosType.
const PosTypeMax = math.MaxInt64

// Interval is the closed range [Lo, Hi].  Lo <= Hi for every Interval built by
// New or ParseInterval.
type Interval struct {
	Lo PosType
	Hi PosType
}

// New returns the interval [lo, hi].  It returns an errors.Invalid error if
// lo > hi.
func New(lo, hi PosType) (Interval, error) {
	if lo > hi {
		return Interval{}, errors.E(errors.Invalid, fmt.Sprintf("interval.New: %d is greater than %d", lo, hi))
	}
	return Interval{lo, hi}, nil
}

func minPos(x, y PosType) PosType {
	if x < y {
		return x
	}
	return y
}

func maxPos(x, y PosType) PosType {
	if x < y {
		return y
	}
	return x
}

// Width returns the number of integers in i.
func (i Interval) Width() PosType {
	return i.Hi - i.Lo + 1
}

// Contains checks whether pos is in i.
func (i Interval) Contains(pos PosType) bool {
	return i.Lo <= pos && pos <= i.Hi
}

// Intersects checks if i and j share at least one integer.
func (i Interval) Intersects(j Interval) bool {
	return maxPos(i.Lo, j.Lo) <= minPos(i.Hi, j.Hi)
}

// Intersection computes i ∩ j.  ok is false if the intervals are disjoint.
func (i Interval) Intersection(j Interval) (r Interval, ok bool) {
	r = Interval{maxPos(i.Lo, j.Lo), minPos(i.Hi, j.Hi)}
	if r.Lo > r.Hi {
		return Interval{}, false
	}
	return r, true
}

// Union merges i and j.  If the intervals overlap, the merged interval is
// returned and more is nil.  Otherwise the smaller of the two (by Compare) is
// returned first, and the other one is returned in more.
//
// Adjacent intervals such as [0, 0] and [1, 12] are not merged.
func (i Interval) Union(j Interval) (first Interval, more *Interval) {
	l, r := i, j
	if r.Less(l) {
		l, r = r, l
	}
	if l.Hi >= r.Lo {
		return Interval{l.Lo, maxPos(l.Hi, r.Hi)}, nil
	}
	return l, &r
}

// span returns the smallest interval containing both i and j.
func (i Interval) span(j Interval) Interval {
	return Interval{minPos(i.Lo, j.Lo), maxPos(i.Hi, j.Hi)}
}

// touches is true if i and j overlap or are adjacent, i.e. if their union is
// a single run of integers.
func (i Interval) touches(j Interval) bool {
	return (i.Lo <= j.Hi && j.Lo <= i.Hi) ||
		(i.Hi < j.Lo && i.Hi+1 == j.Lo) ||
		(j.Hi < i.Lo && j.Hi+1 == i.Lo)
}

// Compare orders intervals by (Lo, Hi).  It returns -1, 0 or 1.
func (i Interval) Compare(j Interval) int {
	switch {
	case i.Lo < j.Lo:
		return -1
	case i.Lo > j.Lo:
		return 1
	case i.Hi < j.Hi:
		return -1
	case i.Hi > j.Hi:
		return 1
	}
	return 0
}

// Less is i.Compare(j) < 0.
func (i Interval) Less(j Interval) bool {
	return i.Compare(j) < 0
}

// String renders i as "lo-hi", or just "lo" for a single position.
func (i Interval) String() string {
	if i.Lo == i.Hi {
		return strconv.FormatInt(i.Lo, 10)
	}
	return strconv.FormatInt(i.Lo, 10) + "-" + strconv.FormatInt(i.Hi, 10)
}

// ParseInterval parses an interval string of one of the forms
//   [lo]-[hi]
//   [lo]..[hi]
//   [pos]
// Either endpoint may be negative, e.g. "-5--1" is [-5, -1].
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Interval{}, errors.E(errors.Invalid, "interval.ParseInterval: empty interval string")
	}
	var loStr, hiStr string
	if dotPos := strings.Index(s, ".."); dotPos != -1 {
		loStr, hiStr = s[:dotPos], s[dotPos+2:]
	} else if dashPos := strings.IndexByte(s[1:], '-'); dashPos != -1 {
		// Skip s[0] so that a leading minus sign is part of lo.
		loStr, hiStr = s[:dashPos+1], s[dashPos+2:]
	} else {
		loStr, hiStr = s, s
	}
	lo, err := strconv.ParseInt(strings.TrimSpace(loStr), 10, 64)
	if err != nil {
		return Interval{}, errors.E(errors.Invalid, err, fmt.Sprintf("interval.ParseInterval: bad start in %q", s))
	}
	hi, err := strconv.ParseInt(strings.TrimSpace(hiStr), 10, 64)
	if err != nil {
		return Interval{}, errors.E(errors.Invalid, err, fmt.Sprintf("interval.ParseInterval: bad end in %q", s))
	}
	return New(lo, hi)
}
