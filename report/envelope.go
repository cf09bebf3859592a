package report

import (
	"errors"
	"fmt"

	"github.com/arloliu/pvfit/compress"
	"github.com/arloliu/pvfit/internal/endian"
	"github.com/arloliu/pvfit/internal/hash"
)

// Magic identifies a report envelope.
const Magic = "PVFR"

// Version is the envelope version written by this package.
const Version uint8 = 1

// HeaderSize is the size of the fixed envelope header in bytes.
const HeaderSize = 20

const flagBigEndian uint8 = 0x01

var (
	// ErrInvalidEnvelope is returned for data that is not a well-formed envelope.
	ErrInvalidEnvelope = errors.New("report: invalid envelope")
	// ErrChecksumMismatch is returned when the payload does not match its checksum.
	ErrChecksumMismatch = errors.New("report: checksum mismatch")
	// ErrUnsupportedVersion is returned for envelopes written by a newer version.
	ErrUnsupportedVersion = errors.New("report: unsupported version")
)

// Kind identifies the record stored in an envelope.
type Kind uint8

const (
	KindSelection Kind = 1 // KindSelection is an analysis.SelectionReport.
	KindFit       Kind = 2 // KindFit is a regression.FitResult.
)

func (k Kind) String() string {
	switch k {
	case KindSelection:
		return "selection"
	case KindFit:
		return "fit"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Header is the decoded fixed header of an envelope.
type Header struct {
	Version     uint8
	Kind        Kind
	Compression compress.Type
	BigEndian   bool
	PayloadSize uint32
	Checksum    uint64
}

// Engine returns the byte order of the payload.
func (h Header) Engine() endian.Engine {
	return endian.ForFlag(h.BigEndian)
}

// ReadHeader parses and validates the header of data without touching the payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidEnvelope, len(data))
	}
	if string(data[:4]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrInvalidEnvelope, data[:4])
	}

	le := endian.Little()
	h := Header{
		Version:     data[4],
		Kind:        Kind(data[5]),
		Compression: compress.Type(data[6]),
		BigEndian:   data[7]&flagBigEndian != 0,
		PayloadSize: le.Uint32(data[8:12]),
		Checksum:    le.Uint64(data[12:20]),
	}

	if h.Version == 0 || h.Version > Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Kind != KindSelection && h.Kind != KindFit {
		return Header{}, fmt.Errorf("%w: unknown record kind %d", ErrInvalidEnvelope, h.Kind)
	}
	if !h.Compression.Valid() {
		return Header{}, fmt.Errorf("%w: unknown compression %d", ErrInvalidEnvelope, uint8(h.Compression))
	}
	if data[7]&^flagBigEndian != 0 {
		return Header{}, fmt.Errorf("%w: unknown flags %#x", ErrInvalidEnvelope, data[7])
	}

	return h, nil
}

// seal wraps a raw payload into an envelope.
func seal(kind Kind, payload []byte, cfg *encoderConfig) ([]byte, error) {
	if uint64(len(payload)) > uint64(^uint32(0)) {
		return nil, fmt.Errorf("report: payload of %d bytes is too large", len(payload))
	}

	codec, err := compress.CreateCodec(cfg.compression, "report")
	if err != nil {
		return nil, err
	}
	packed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("report: %s compression: %w", cfg.compression, err)
	}

	var flags uint8
	if cfg.bigEndian {
		flags |= flagBigEndian
	}

	le := endian.Little()
	out := make([]byte, 0, HeaderSize+len(packed))
	out = append(out, Magic...)
	out = append(out, Version, uint8(kind), uint8(cfg.compression), flags)
	out = le.AppendUint32(out, uint32(len(payload))) //nolint:gosec
	out = le.AppendUint64(out, hash.Checksum(payload))
	out = append(out, packed...)

	return out, nil
}

// open validates an envelope of the expected kind and returns its raw payload.
func open(data []byte, want Kind) ([]byte, Header, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, Header{}, err
	}
	if h.Kind != want {
		return nil, Header{}, fmt.Errorf("%w: envelope holds a %s record, want %s", ErrInvalidEnvelope, h.Kind, want)
	}

	payload, err := decompress(h, data[HeaderSize:])
	if err != nil {
		return nil, Header{}, fmt.Errorf("%w: %w", ErrInvalidEnvelope, err)
	}
	if uint64(len(payload)) != uint64(h.PayloadSize) {
		return nil, Header{}, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrInvalidEnvelope, len(payload), h.PayloadSize)
	}
	if sum := hash.Checksum(payload); sum != h.Checksum {
		return nil, Header{}, fmt.Errorf("%w: got %016x, want %016x", ErrChecksumMismatch, sum, h.Checksum)
	}

	return payload, h, nil
}

func decompress(h Header, packed []byte) ([]byte, error) {
	codec, err := compress.CreateCodec(h.Compression, "report")
	if err != nil {
		return nil, err
	}

	// LZ4 blocks do not record their size but the header does.
	if lz4, ok := codec.(compress.LZ4Compressor); ok {
		if uint64(h.PayloadSize) > uint64(compress.LZ4MaxDecodedSize(len(packed))) {
			return nil, fmt.Errorf("payload size %d exceeds what %d packed bytes can hold", h.PayloadSize, len(packed))
		}

		return lz4.DecompressSized(packed, int(h.PayloadSize))
	}

	return codec.Decompress(packed)
}
