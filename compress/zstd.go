package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in codecs.
//
// The implementation is selected at build time: the pure-Go klauspost/compress encoder
// by default, or the cgo libzstd binding when built with the "gozstd" tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default compression level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
