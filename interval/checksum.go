package interval

import (
	"encoding/binary"

	"blainsmith.com/go/seahash"
)

// Checksum returns a seahash digest of the normalized intervals.  Two
// coverages of the same positions have the same checksum regardless of the
// order or overlap of the intervals they were built from.
func (c Coverage) Checksum() uint64 {
	h := seahash.New()
	var buf [16]byte
	for _, r := range c.ranges {
		binary.LittleEndian.PutUint64(buf[:8], uint64(r.Lo))
		binary.LittleEndian.PutUint64(buf[8:], uint64(r.Hi))
		h.Write(buf[:]) // nolint: errcheck
	}
	return h.Sum64()
}
