package report

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/pvfit/internal/endian"
	"github.com/arloliu/pvfit/internal/pool"
)

// payloadWriter appends fixed-width values and length-prefixed strings to a pooled buffer.
type payloadWriter struct {
	engine endian.Engine
	buf    *pool.ByteBuffer
}

func newPayloadWriter(engine endian.Engine) *payloadWriter {
	return &payloadWriter{engine: engine, buf: pool.GetReportBuffer()}
}

func (w *payloadWriter) u8(v uint8) {
	w.buf.B = append(w.buf.B, v)
}

func (w *payloadWriter) u32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

func (w *payloadWriter) f64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

func (w *payloadWriter) str(s string) {
	w.buf.Grow(binary.MaxVarintLen64 + len(s))
	w.buf.B = binary.AppendUvarint(w.buf.B, uint64(len(s)))
	w.buf.B = append(w.buf.B, s...)
}

// count writes a slice length.
func (w *payloadWriter) count(n int) error {
	if n < 0 || uint64(n) > uint64(math.MaxUint32) {
		return fmt.Errorf("report: length %d out of range", n)
	}
	w.u32(uint32(n)) //nolint:gosec

	return nil
}

// bytes returns a copy of the payload and releases the buffer.
func (w *payloadWriter) bytes() []byte {
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	w.release()

	return out
}

func (w *payloadWriter) release() {
	if w.buf != nil {
		pool.PutReportBuffer(w.buf)
		w.buf = nil
	}
}

// payloadReader reads values written by payloadWriter. The first failure sticks: later
// reads return zero values and err reports the original problem.
type payloadReader struct {
	engine endian.Engine
	data   []byte
	off    int
	err    error
}

func newPayloadReader(engine endian.Engine, data []byte) *payloadReader {
	return &payloadReader{engine: engine, data: data}
}

func (r *payloadReader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidEnvelope}, args...)...)
	}
}

func (r *payloadReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || len(r.data)-r.off < n {
		r.fail("truncated payload at offset %d", r.off)
		return nil
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b
}

func (r *payloadReader) u8() uint8 {
	b := r.take(1)
	if b == nil {
		return 0
	}

	return b[0]
}

func (r *payloadReader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}

	return r.engine.Uint32(b)
}

func (r *payloadReader) f64() float64 {
	b := r.take(8)
	if b == nil {
		return 0
	}

	return math.Float64frombits(r.engine.Uint64(b))
}

func (r *payloadReader) str() string {
	if r.err != nil {
		return ""
	}
	n, size := binary.Uvarint(r.data[r.off:])
	if size <= 0 {
		r.fail("bad string length at offset %d", r.off)
		return ""
	}
	r.off += size
	if n > uint64(len(r.data)-r.off) {
		r.fail("string of %d bytes overruns payload at offset %d", n, r.off)
		return ""
	}

	return string(r.take(int(n)))
}

// count reads a slice length and checks that at least minSize bytes per element remain,
// so a corrupted length cannot trigger a huge allocation.
func (r *payloadReader) count(minSize int) int {
	n := int(r.u32())
	if r.err != nil {
		return 0
	}
	if n*minSize > len(r.data)-r.off {
		r.fail("%d elements overrun payload at offset %d", n, r.off)
		return 0
	}

	return n
}

// done reports the sticky error, or an error when bytes are left over.
func (r *payloadReader) done() error {
	if r.err != nil {
		return r.err
	}
	if r.off != len(r.data) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEnvelope, len(r.data)-r.off)
	}

	return nil
}
