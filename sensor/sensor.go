// Package sensor answers questions about a field of sensors, each of which
// reports the closest beacon by Manhattan distance.  The positions a sensor
// rules out on one row form a single interval, so a row's exclusion zone is
// an interval.Coverage.
package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/coverage/grid"
	"github.com/grailbio/coverage/interval"
	"github.com/grailbio/coverage/util"
	pkgerrors "github.com/pkg/errors"
)

// Sensor is a sensor position and the closest beacon it detected.
type Sensor struct {
	Pos    grid.Coord
	Beacon grid.Coord
}

const sensorFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

// Parse parses one line of the form
//   Sensor at x=2, y=18: closest beacon is at x=-2, y=15
// Errors are of kind errors.Invalid.
func Parse(line string) (Sensor, error) {
	var s Sensor
	line = strings.TrimSpace(line)
	n, err := fmt.Sscanf(line, sensorFormat, &s.Pos.X, &s.Pos.Y, &s.Beacon.X, &s.Beacon.Y)
	if err != nil {
		return Sensor{}, errors.E(errors.Invalid, pkgerrors.Wrapf(err, "sensor.Parse: %q (%d of 4 fields read)", line, n))
	}
	// Sscanf stops after the last field and ignores anything left over.
	if canonical := fmt.Sprintf(sensorFormat, s.Pos.X, s.Pos.Y, s.Beacon.X, s.Beacon.Y); canonical != line {
		return Sensor{}, errors.E(errors.Invalid, fmt.Sprintf("sensor.Parse: %q does not match %q", line, canonical))
	}
	return s, nil
}

// ParseAll parses one sensor per nonblank line.
func ParseAll(r io.Reader) ([]Sensor, error) {
	var sensors []Sensor
	scanner := bufio.NewScanner(r)
	lineIdx := 0
	for scanner.Scan() {
		lineIdx++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := Parse(line)
		if err != nil {
			return nil, errors.E(err, fmt.Sprintf("line %d", lineIdx))
		}
		sensors = append(sensors, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sensors, nil
}

// Load reads sensors from path; see ParseAll.  Paths ending in .gz are
// decompressed.
func Load(ctx context.Context, path string) (sensors []Sensor, err error) {
	err = util.ReadPath(ctx, path, func(r io.Reader) error {
		sensors, err = ParseAll(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Printf("%s loaded, %d sensor(s).", path, len(sensors))
	return sensors, nil
}

// Radius is the Manhattan distance to the closest beacon.  No other beacon is
// within this distance.
func (s Sensor) Radius() int64 {
	return s.Pos.Manhattan(s.Beacon)
}

// Covers checks whether c is within the sensor's radius.
func (s Sensor) Covers(c grid.Coord) bool {
	return s.Pos.Manhattan(c) <= s.Radius()
}

// RowSpan returns the positions on row y within the sensor's radius.  ok is
// false if the row is out of reach.
func (s Sensor) RowSpan(y int64) (span interval.Interval, ok bool) {
	dy := y - s.Pos.Y
	if dy < 0 {
		dy = -dy
	}
	halfWidth := s.Radius() - dy
	if halfWidth < 0 {
		return interval.Interval{}, false
	}
	return interval.Interval{Lo: s.Pos.X - halfWidth, Hi: s.Pos.X + halfWidth}, true
}

// beaconKey orders beacons for de-duplication in an llrb.Tree.
type beaconKey grid.Coord

// Compare compares two beaconKey objects for use in llrb.
func (k beaconKey) Compare(c2 llrb.Comparable) int {
	return grid.Coord(k).Compare(grid.Coord(c2.(beaconKey)))
}

// RowCoverage returns the positions on row y within range of at least one
// sensor, and the number of distinct beacons on that row.  Every such beacon
// is inside the coverage.
func RowCoverage(sensors []Sensor, y int64) (c interval.Coverage, nBeacon int) {
	spans := make([]interval.Interval, 0, len(sensors))
	beacons := llrb.Tree{}
	for _, s := range sensors {
		span, ok := s.RowSpan(y)
		if !ok {
			continue
		}
		spans = append(spans, span)
		if s.Beacon.Y == y {
			beacons.Insert(beaconKey(s.Beacon))
		}
	}
	return interval.NewCoverage(spans), beacons.Len()
}

// ExcludedCount returns the number of positions on row y that cannot hold a
// beacon: those within some sensor's radius, minus the known beacons.
func ExcludedCount(sensors []Sensor, y int64) int64 {
	c, nBeacon := RowCoverage(sensors, y)
	return c.AreaCovered() - int64(nBeacon)
}
