package interval

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/coverage/util"
)

// LoadOpts defines behavior of this package's coverage-loading functions.
type LoadOpts struct {
	// HalfOpen interprets each line as a half-open [lo, hi) interval instead
	// of the default closed [lo, hi].  Empty half-open intervals are dropped.
	HalfOpen bool
}

// getTokens identifies up to the first len(tokens) tokens from curLine,
// returning the number of tokens saved.  Any (group of) characters <= ' ' is
// treated as a delimiter.
func getTokens(tokens [][]byte, curLine []byte) int {
	posEnd := 0
	lineLen := len(curLine)
	for tokenIdx := range tokens {
		pos := posEnd
		for ; pos != lineLen; pos++ {
			if curLine[pos] > ' ' {
				break
			}
		}
		if pos == lineLen {
			return tokenIdx
		}
		posEnd = pos
		for ; posEnd != lineLen; posEnd++ {
			if curLine[posEnd] <= ' ' {
				break
			}
		}
		tokens[tokenIdx] = curLine[pos:posEnd]
	}
	return len(tokens)
}

func parseEndpoint(token []byte, lineIdx int) (PosType, error) {
	v, err := strconv.ParseInt(gunsafe.BytesToString(token), 10, 64)
	if err != nil {
		return 0, errors.E(errors.Invalid, err, fmt.Sprintf("interval.NewCoverageFromReader: line %d", lineIdx))
	}
	return v, nil
}

// NewCoverageFromReader loads intervals, one per line, as two
// whitespace-separated integers.  Columns past the second are ignored, as are
// blank lines and lines starting with '#'.  The intervals need not be sorted.
func NewCoverageFromReader(reader io.Reader, opts LoadOpts) (Coverage, error) {
	scanner := bufio.NewScanner(reader)
	var (
		tokens    [2][]byte
		intervals []Interval
		lineIdx   int
	)
	for scanner.Scan() {
		lineIdx++
		curLine := scanner.Bytes()
		nToken := getTokens(tokens[:], curLine)
		if nToken == 0 || tokens[0][0] == '#' {
			continue
		}
		if nToken != 2 {
			return Coverage{}, errors.E(errors.Invalid, fmt.Sprintf("interval.NewCoverageFromReader: line %d has fewer tokens than expected", lineIdx))
		}
		lo, err := parseEndpoint(tokens[0], lineIdx)
		if err != nil {
			return Coverage{}, err
		}
		hi, err := parseEndpoint(tokens[1], lineIdx)
		if err != nil {
			return Coverage{}, err
		}
		if hi < lo {
			return Coverage{}, errors.E(errors.Invalid, fmt.Sprintf("interval.NewCoverageFromReader: line %d: start %d is greater than end %d", lineIdx, lo, hi))
		}
		if opts.HalfOpen {
			if hi == lo {
				continue
			}
			hi--
		}
		iv := Interval{lo, hi}
		intervals = append(intervals, iv)
	}
	if err := scanner.Err(); err != nil {
		return Coverage{}, err
	}
	c := NewCoverage(intervals)
	log.Debug.Printf("interval.NewCoverageFromReader: %d interval(s) read, %d after merging", len(intervals), c.Len())
	return c, nil
}

// NewCoverageFromPath is a wrapper for NewCoverageFromReader that takes a
// path instead of an io.Reader.  Paths ending in .gz are decompressed.
func NewCoverageFromPath(ctx context.Context, path string, opts LoadOpts) (c Coverage, err error) {
	err = util.ReadPath(ctx, path, func(r io.Reader) error {
		c, err = NewCoverageFromReader(r, opts)
		return err
	})
	if err != nil {
		return Coverage{}, err
	}
	log.Printf("%s loaded, %d position(s) covered.", path, c.AreaCovered())
	return c, nil
}
