// Package compress provides the compression codecs applied to encoded report payloads.
//
// Four algorithms are available, identified by Type:
//   - TypeNone: no compression
//   - TypeZstd: best ratio, moderate speed
//   - TypeS2: balanced speed and ratio
//   - TypeLZ4: fastest decompression
//
// Selection reports are small (a few kilobytes, dominated by the sampled curve and the
// scatter points), so the choice mostly matters for archives holding many reports.
// Zstd is the usual pick for archival, None for debugging.
//
// Usage:
//
//	codec, err := compress.CreateCodec(compress.TypeZstd, "report")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// Zstd uses the pure-Go klauspost/compress implementation unless the package is built
// with cgo and the "gozstd" build tag, which switches to the libzstd binding.
//
// All codecs are safe for concurrent use. Encoders and decoders that are costly to
// create are pooled.
package compress
