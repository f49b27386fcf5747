// Package stream adapts a radix64 engine to incremental io.
//
// The package feeds fixed-size chunks through the engine's
// EncodeInto/DecodeInto entry points, buffering whatever partial group is
// left at a chunk boundary (1-2 bytes for encoding, 1-3 symbols for
// decoding) until the next chunk or end of stream. There is no
// backpressure beyond chunk-at-a-time processing, and no whitespace
// filtering: the byte stream handed to a Decoder must already be clean
// symbol data.
package stream

import (
	"io"

	"github.com/drogus/radix64/radix64"
)

// encodeChunk is the number of input bytes encoded per flush. A multiple
// of 3 so flushed chunks never produce padding mid-stream.
const encodeChunk = 768

// Encoder incrementally encodes written bytes to an underlying writer.
// It holds back a partial 3-byte group between writes; Close encodes the
// leftover group, padded or not per the engine's policy.
type Encoder struct {
	eng  *radix64.Engine
	w    io.Writer
	buf  [3]byte
	nbuf int
	out  [encodeChunk / 3 * 4]byte
	err  error
}

// NewEncoder returns a writer that encodes everything written to it with
// eng and forwards the symbols to w. The caller must Close the returned
// encoder to flush the final group; closing does not close w.
func NewEncoder(eng *radix64.Engine, w io.Writer) io.WriteCloser {
	return &Encoder{eng: eng, w: w}
}

// Write encodes p. A write error from the underlying writer is sticky:
// every call after a failure returns the same error.
func (e *Encoder) Write(p []byte) (n int, err error) {
	if e.err != nil {
		return 0, e.err
	}

	// Top up a partial group left over from the previous write.
	if e.nbuf > 0 {
		var i int
		for i = 0; i < len(p) && e.nbuf < 3; i++ {
			e.buf[e.nbuf] = p[i]
			e.nbuf++
		}
		n += i
		p = p[i:]
		if e.nbuf < 3 {
			return n, nil
		}
		m, _ := e.eng.EncodeInto(e.out[:], e.buf[:])
		if _, e.err = e.w.Write(e.out[:m]); e.err != nil {
			return n, e.err
		}
		e.nbuf = 0
	}

	// Whole groups straight from p, one chunk at a time.
	for len(p) >= 3 {
		nn := encodeChunk
		if nn > len(p) {
			nn = len(p) / 3 * 3
		}
		m, _ := e.eng.EncodeInto(e.out[:], p[:nn])
		if _, e.err = e.w.Write(e.out[:m]); e.err != nil {
			return n, e.err
		}
		n += nn
		p = p[nn:]
	}

	// Hold back the trailing partial group for the next write or Close.
	copy(e.buf[:], p)
	e.nbuf = len(p)
	n += len(p)
	return n, nil
}

// Close flushes any buffered partial group. It does not close the
// underlying writer.
func (e *Encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		m, _ := e.eng.EncodeInto(e.out[:], e.buf[:e.nbuf])
		e.nbuf = 0
		if _, e.err = e.w.Write(e.out[:m]); e.err != nil {
			return e.err
		}
	}
	return e.err
}
