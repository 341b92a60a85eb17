package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/grailbio/base/tsv"
	"github.com/grailbio/coverage/interval"
)

type coverOpts struct {
	// halfOpen reads [lo, hi) intervals instead of [lo, hi].
	halfOpen bool
	// gaps adds "gap" rows to the cover output.
	gaps bool
	// clip, if nonempty, restricts the output to one interval; see
	// interval.ParseInterval for the format.
	clip string
}

func (o coverOpts) loadOpts() interval.LoadOpts {
	return interval.LoadOpts{HalfOpen: o.halfOpen}
}

func writeRow(w *tsv.Writer, kind string, iv interval.Interval) error {
	w.WriteString(kind)
	w.WriteInt64(iv.Lo)
	w.WriteInt64(iv.Hi)
	w.WriteInt64(iv.Width())
	return w.EndLine()
}

func cover(ctx context.Context, out io.Writer, path string, opts coverOpts) error {
	c, err := interval.NewCoverageFromPath(ctx, path, opts.loadOpts())
	if err != nil {
		return err
	}
	if opts.clip != "" {
		bound, err := interval.ParseInterval(opts.clip)
		if err != nil {
			return err
		}
		c = c.Clip(bound)
	}
	w := tsv.NewWriter(out)
	w.WriteString("kind\tlo\thi\twidth")
	if err := w.EndLine(); err != nil {
		return err
	}
	for _, r := range c.Ranges() {
		if err := writeRow(w, "range", r); err != nil {
			return err
		}
	}
	if opts.gaps {
		for _, r := range c.Gaps().Ranges() {
			if err := writeRow(w, "gap", r); err != nil {
				return err
			}
		}
	}
	if b, ok := c.Bounds(); ok {
		if err := writeRow(w, "bounds", b); err != nil {
			return err
		}
	}
	w.WriteString("area\t\t")
	w.WriteInt64(c.AreaCovered())
	if err := w.EndLine(); err != nil {
		return err
	}
	return w.Flush()
}

func checksum(ctx context.Context, out io.Writer, paths []string, opts coverOpts) error {
	for _, path := range paths {
		c, err := interval.NewCoverageFromPath(ctx, path, opts.loadOpts())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%016x\t%s\n", c.Checksum(), path); err != nil {
			return err
		}
	}
	return nil
}
