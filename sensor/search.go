package sensor

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/coverage/grid"
	"github.com/grailbio/coverage/interval"
)

// TuningMultiplier scales X in TuningFrequency.
const TuningMultiplier = 4000000

// SearchOpts defines behavior of FindBeacon.
type SearchOpts struct {
	// Parallelism is the number of row-scanning jobs.  0 = runtime.NumCPU().
	Parallelism int
}

// DefaultSearchOpts is the default SearchOpts value.
var DefaultSearchOpts = SearchOpts{}

// firstUncovered returns the smallest position in window not in c, which must
// already be clipped to window.
func firstUncovered(c interval.Coverage, window interval.Interval) (interval.PosType, bool) {
	bounds, ok := c.Bounds()
	if !ok || bounds.Lo > window.Lo {
		return window.Lo, true
	}
	if gaps := c.Gaps(); gaps.Len() > 0 {
		return gaps.Ranges()[0].Lo, true
	}
	if bounds.Hi < window.Hi {
		return bounds.Hi + 1, true
	}
	return 0, false
}

// FindBeacon returns the position in the window x window square that no
// sensor covers.  If there are several, the one with the smallest Y (and then
// the smallest X) is returned.  It returns an errors.NotExist error if every
// position is covered, and an errors.Invalid error if window.Lo > window.Hi.
func FindBeacon(sensors []Sensor, window interval.Interval, opts SearchOpts) (grid.Coord, error) {
	if window.Lo > window.Hi {
		return grid.Coord{}, errors.E(errors.Invalid, fmt.Sprintf("sensor.FindBeacon: empty window %d..%d", window.Lo, window.Hi))
	}
	nRow := window.Width()
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if int64(parallelism) > nRow {
		parallelism = int(nRow)
	}

	var (
		mu    sync.Mutex
		found bool
		best  grid.Coord
	)
	// done reports whether a row at or before y has already been found, so
	// later rows need not be scanned.
	done := func(y int64) bool {
		mu.Lock()
		defer mu.Unlock()
		return found && best.Y <= y
	}
	log.Debug.Printf("sensor.FindBeacon: scanning %d row(s) with %d job(s)", nRow, parallelism)
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startRow := window.Lo + (int64(jobIdx)*nRow)/int64(parallelism)
		endRow := window.Lo + (int64(jobIdx+1)*nRow)/int64(parallelism)
		for y := startRow; y < endRow; y++ {
			if done(y) {
				break
			}
			c, _ := RowCoverage(sensors, y)
			x, ok := firstUncovered(c.Clip(window), window)
			if !ok {
				continue
			}
			mu.Lock()
			if !found || y < best.Y {
				found = true
				best = grid.Coord{X: x, Y: y}
			}
			mu.Unlock()
			break
		}
		return nil
	})
	if err != nil {
		return grid.Coord{}, err
	}
	if !found {
		return grid.Coord{}, errors.E(errors.NotExist, fmt.Sprintf("sensor.FindBeacon: every position in %v x %v is covered", window, window))
	}
	return best, nil
}

// TuningFrequency combines a beacon position into a single number.
func TuningFrequency(c grid.Coord) int64 {
	return c.X*TuningMultiplier + c.Y
}
