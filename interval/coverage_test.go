package interval

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoverage(t *testing.T) {
	tests := []struct {
		in   []Interval
		want []Interval
	}{
		{[]Interval{{0, 2}, {1, 10}, {8, 20}}, []Interval{{0, 20}}},
		{[]Interval{{0, 2}, {1, 5}, {8, 20}}, []Interval{{0, 5}, {8, 20}}},
		{[]Interval{{8, 20}, {1, 5}, {0, 2}}, []Interval{{0, 5}, {8, 20}}},
		{[]Interval{{0, 5}, {6, 7}}, []Interval{{0, 7}}},
		{[]Interval{{5, 5}, {5, 5}, {5, 5}}, []Interval{{5, 5}}},
		{[]Interval{{-10, -5}, {20, 30}, {-4, 0}, {2, 19}}, []Interval{{-10, 0}, {2, 30}}},
		{nil, nil},
	}
	for _, tt := range tests {
		c := NewCoverage(tt.in)
		assert.Equal(t, tt.want, c.Ranges(), "input %v", tt.in)
	}
}

func TestNewCoverageDoesNotModifyInput(t *testing.T) {
	in := []Interval{{8, 20}, {0, 2}, {1, 5}}
	NewCoverage(in)
	assert.Equal(t, []Interval{{8, 20}, {0, 2}, {1, 5}}, in)
}

func TestInsert(t *testing.T) {
	c := NewCoverage([]Interval{{0, 2}, {5, 7}, {10, 12}, {20, 25}})

	c.Insert(Interval{15, 16})
	assert.Equal(t, []Interval{{0, 2}, {5, 7}, {10, 12}, {15, 16}, {20, 25}}, c.Ranges())

	// Bridges three stored intervals at once.
	c.Insert(Interval{1, 11})
	assert.Equal(t, []Interval{{0, 12}, {15, 16}, {20, 25}}, c.Ranges())

	// Adjacent on both sides.
	c.Insert(Interval{17, 19})
	assert.Equal(t, []Interval{{0, 12}, {15, 25}}, c.Ranges())

	c.Insert(Interval{-3, -2})
	assert.Equal(t, []Interval{{-3, -2}, {0, 12}, {15, 25}}, c.Ranges())

	c.Insert(Interval{-100, 100})
	assert.Equal(t, []Interval{{-100, 100}}, c.Ranges())
}

func TestInsertIdempotent(t *testing.T) {
	var c Coverage
	c.Insert(Interval{3, 9})
	c.Insert(Interval{20, 22})
	before := c.Ranges()
	c.Insert(Interval{20, 22})
	c.Insert(Interval{3, 9})
	c.Insert(Interval{4, 5})
	assert.Equal(t, before, c.Ranges())
}

func TestInsertInvalidPanics(t *testing.T) {
	var c Coverage
	assert.Panics(t, func() { c.Insert(Interval{3, 2}) })
	assert.Panics(t, func() { NewCoverage([]Interval{{0, 1}, {3, 2}}) })
}

func TestMergeDisjointPanics(t *testing.T) {
	assert.Panics(t, func() { merge(Interval{0, 1}, Interval{3, 4}) })
	expect.EQ(t, merge(Interval{0, 1}, Interval{2, 4}), Interval{0, 4})
	expect.EQ(t, merge(Interval{0, 3}, Interval{2, 4}), Interval{0, 4})
}

func TestQueries(t *testing.T) {
	c := NewCoverage([]Interval{{0, 2}, {1, 5}, {8, 20}})

	gaps := c.Gaps()
	assert.Equal(t, []Interval{{6, 7}}, gaps.Ranges())

	b, ok := c.Bounds()
	require.True(t, ok)
	expect.EQ(t, b, Interval{0, 20})

	expect.EQ(t, c.AreaCovered(), PosType(19))
	expect.EQ(t, NewCoverage([]Interval{{0, 20}}).AreaCovered(), PosType(21))
	expect.EQ(t, c.Len(), 2)

	expect.True(t, c.ContainsPos(0))
	expect.True(t, c.ContainsPos(5))
	expect.False(t, c.ContainsPos(6))
	expect.False(t, c.ContainsPos(21))
	expect.False(t, c.ContainsPos(-1))
	expect.True(t, c.Contains(Interval{6, 8}))
	expect.False(t, c.Contains(Interval{6, 7}))
	expect.False(t, c.Contains(Interval{21, 30}))
}

func TestEmptyCoverage(t *testing.T) {
	var c Coverage
	_, ok := c.Bounds()
	expect.False(t, ok)
	expect.EQ(t, c.Gaps().Len(), 0)
	expect.EQ(t, c.AreaCovered(), PosType(0))
	expect.False(t, c.ContainsPos(0))
	expect.EQ(t, c.String(), "{}")

	one := NewCoverage([]Interval{{4, 9}})
	expect.EQ(t, one.Gaps().Len(), 0)
}

func TestClip(t *testing.T) {
	c := NewCoverage([]Interval{{-5, 2}, {5, 7}, {10, 30}})
	tests := []struct {
		bound Interval
		want  []Interval
	}{
		{Interval{0, 20}, []Interval{{0, 2}, {5, 7}, {10, 20}}},
		{Interval{3, 4}, nil},
		{Interval{6, 6}, []Interval{{6, 6}}},
		{Interval{-100, 100}, []Interval{{-5, 2}, {5, 7}, {10, 30}}},
		{Interval{31, 40}, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Clip(tt.bound).Ranges(), "bound %v", tt.bound)
	}
}

func TestClone(t *testing.T) {
	c := NewCoverage([]Interval{{0, 2}, {8, 9}})
	d := c.Clone()
	d.Insert(Interval{3, 7})
	assert.Equal(t, []Interval{{0, 2}, {8, 9}}, c.Ranges())
	assert.Equal(t, []Interval{{0, 9}}, d.Ranges())
	expect.False(t, c.Equal(d))
	expect.True(t, c.Equal(c.Clone()))
}

func TestInsertIntoCopy(t *testing.T) {
	a := NewCoverage([]Interval{{0, 1}, {10, 11}, {20, 21}, {20, 21}})
	b := a
	b.Insert(Interval{5, 6})
	assert.Equal(t, []Interval{{0, 1}, {10, 11}, {20, 21}}, a.Ranges())
	assert.Equal(t, []Interval{{0, 1}, {5, 6}, {10, 11}, {20, 21}}, b.Ranges())

	// Merging removes stored intervals from b only.
	c := b
	c.Insert(Interval{2, 19})
	assert.Equal(t, []Interval{{0, 21}}, c.Ranges())
	assert.Equal(t, []Interval{{0, 1}, {5, 6}, {10, 11}, {20, 21}}, b.Ranges())
	assert.Equal(t, []Interval{{0, 1}, {10, 11}, {20, 21}}, a.Ranges())

	// A sequence of inserts into one copy leaves its source alone.
	d := a
	for _, iv := range []Interval{{30, 31}, {12, 12}, {-5, -1}, {13, 19}} {
		d.Insert(iv)
	}
	assert.Equal(t, []Interval{{-5, 1}, {10, 21}, {30, 31}}, d.Ranges())
	assert.Equal(t, []Interval{{0, 1}, {10, 11}, {20, 21}}, a.Ranges())
}

func TestChecksum(t *testing.T) {
	a := NewCoverage([]Interval{{0, 2}, {1, 5}, {8, 20}})
	b := NewCoverage([]Interval{{8, 10}, {0, 5}, {9, 20}, {3, 3}})
	c := NewCoverage([]Interval{{0, 5}, {8, 21}})
	expect.EQ(t, a.Checksum(), b.Checksum())
	expect.True(t, a.Checksum() != c.Checksum())
}

// checkNormalized verifies the ordering and disjointness invariants.
func checkNormalized(t *testing.T, c Coverage) {
	r := c.Ranges()
	for i := range r {
		require.True(t, r[i].Lo <= r[i].Hi, "%v", c)
		if i > 0 {
			require.True(t, r[i-1].Hi+1 < r[i].Lo, "%v", c)
		}
	}
}

// TestRandomCoverage compares Coverage against a brute-force set of
// positions.
func TestRandomCoverage(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	const (
		nIter    = 500
		posRange = 60
	)
	for iter := 0; iter < nIter; iter++ {
		nInterval := r.Intn(12)
		covered := map[PosType]bool{}
		var inserted Coverage
		var all []Interval
		for i := 0; i < nInterval; i++ {
			lo := PosType(r.Intn(posRange)) - posRange/2
			hi := lo + PosType(r.Intn(8))
			iv := Interval{lo, hi}
			all = append(all, iv)
			for pos := lo; pos <= hi; pos++ {
				covered[pos] = true
			}
			inserted.Insert(iv)
			checkNormalized(t, inserted)
		}
		batch := NewCoverage(all)
		checkNormalized(t, batch)
		require.Equal(t, batch.Ranges(), inserted.Ranges())
		require.Equal(t, PosType(len(covered)), batch.AreaCovered())

		b, ok := batch.Bounds()
		require.Equal(t, len(covered) > 0, ok)
		if !ok {
			continue
		}
		gaps := batch.Gaps()
		checkNormalized(t, gaps)
		for pos := b.Lo; pos <= b.Hi; pos++ {
			inCover, inGap := batch.ContainsPos(pos), gaps.ContainsPos(pos)
			require.Equal(t, covered[pos], inCover, "pos %d in %v", pos, batch)
			require.True(t, inCover != inGap, "pos %d: cover %v gaps %v", pos, batch, gaps)
		}
		require.Equal(t, b.Width(), batch.AreaCovered()+gaps.AreaCovered())

		// Reinserting in any order changes nothing.
		r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		for _, iv := range all {
			inserted.Insert(iv)
		}
		require.Equal(t, batch.Ranges(), inserted.Ranges())
	}
}

func TestRangesSorted(t *testing.T) {
	c := NewCoverage([]Interval{{30, 31}, {10, 12}, {-2, 0}, {20, 21}})
	r := c.Ranges()
	expect.True(t, sort.SliceIsSorted(r, func(i, j int) bool { return r[i].Less(r[j]) }))
	r[0] = Interval{100, 200}
	assert.Equal(t, Interval{-2, 0}, c.Ranges()[0])
}
