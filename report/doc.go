// Package report encodes fit results and selection reports into a compact binary
// envelope, so a selection can be archived and inspected later without refitting.
//
// # Envelope Layout
//
// Every envelope starts with a fixed 20-byte header, always little-endian:
//
//	offset  size  field
//	0       4     magic "PVFR"
//	4       1     version (1)
//	5       1     record kind (1 = selection report, 2 = fit result)
//	6       1     compression type (see compress.Type)
//	7       1     flags (bit 0: payload is big-endian)
//	8       4     uncompressed payload length
//	12      8     xxHash64 of the uncompressed payload
//	20      ...   payload, compressed with the header's compression type
//
// Floats are stored as IEEE-754 bit patterns, so NaN and infinities survive a round
// trip. Strings are prefixed by their uvarint byte length. Decoding verifies the magic,
// version, payload length and checksum before parsing the payload.
//
// Decoded fit results carry the model type and coefficients; the formula and the
// estimator are rebuilt from them.
package report
