package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Checksum computes the xxHash64 of the given bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over a sequence of typed values.
//
// Values are fed as fixed-width little-endian words so the result depends only on
// the values and their order, never on formatting.
type Digest struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewDigest creates an empty digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Float64 feeds the IEEE-754 bit pattern of v.
func (d *Digest) Float64(v float64) {
	d.Uint64(math.Float64bits(v))
}

// Uint64 feeds v as 8 little-endian bytes.
func (d *Digest) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], v)
	_, _ = d.d.Write(d.buf[:])
}

// String feeds a length-prefixed string.
func (d *Digest) String(s string) {
	d.Uint64(uint64(len(s)))
	_, _ = d.d.WriteString(s)
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
