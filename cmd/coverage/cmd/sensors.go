package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/coverage/interval"
	"github.com/grailbio/coverage/sensor"
)

const (
	defaultRow = 2000000
	defaultMax = 4000000
)

type sensorsOpts struct {
	// row is the row whose excluded positions are counted.
	row int64
	// max bounds the beacon search to [0, max] in both coordinates.
	max    int64
	search sensor.SearchOpts
}

func sensors(ctx context.Context, out io.Writer, path string, opts sensorsOpts) error {
	ss, err := sensor.Load(ctx, path)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "Part 1: %d\n", sensor.ExcludedCount(ss, opts.row)); err != nil {
		return err
	}
	beacon, err := sensor.FindBeacon(ss, interval.Interval{Lo: 0, Hi: opts.max}, opts.search)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Part 2: %d\n", sensor.TuningFrequency(beacon))
	return err
}
