package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize bounds the output buffer when the decompressed size is unknown.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// ErrLZ4SizeOutOfRange is returned by DecompressSized for a size that no LZ4 block of
// the given length can decode to.
var ErrLZ4SizeOutOfRange = errors.New("compress: lz4 decompressed size out of range")

// LZ4MaxDecodedSize returns the largest size an LZ4 block of n bytes can decode to.
// Every input byte yields at most 255 output bytes.
func LZ4MaxDecodedSize(n int) int {
	return n*255 + 16
}

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression, the fastest to decompress.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block using a pooled lz4.Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes a single LZ4 block.
//
// The block format does not record the decompressed size, so decoding starts with a
// buffer four times the input and doubles it on ErrInvalidSourceShortBuffer, up to
// lz4MaxDecompressedSize.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := len(data) * 4; size <= lz4MaxDecompressedSize; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSized decodes a single LZ4 block whose decompressed size is known.
// A size outside [0, LZ4MaxDecodedSize(len(data))] is rejected before allocating.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if size < 0 || size > LZ4MaxDecodedSize(len(data)) {
		return nil, fmt.Errorf("%w: %d bytes from a %d byte block", ErrLZ4SizeOutOfRange, size, len(data))
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}
