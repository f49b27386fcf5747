package stream

import (
	"bytes"
	"errors"
	"io"

	"github.com/drogus/radix64/radix64"
)

// decodeChunk is the symbol buffer size; a multiple of 4 so interior
// decodes always cover whole groups.
const decodeChunk = 1024

// Decoder incrementally decodes symbols from an underlying reader.
//
// Interior groups are decoded as they arrive; the last buffered group is
// held back until the source is exhausted, since it may be the stream's
// padded tail, and is then decoded under the engine's full padding
// policy. Decode errors carry stream-absolute offsets, so the position
// reported for a bad symbol is the same regardless of how the source
// chunks its reads.
type Decoder struct {
	eng     *radix64.Engine
	r       io.Reader
	err     error // sticky result error; io.EOF once the tail is delivered
	readErr error // deferred error from the underlying reader
	eof     bool
	out     []byte // decoded bytes not yet returned
	outbuf  [decodeChunk / 4 * 3]byte
	in      []byte // buffered symbols not yet decoded
	inbuf   [decodeChunk]byte
	off     int64 // stream offset of in[0], in symbols
	pad     byte
	hasPad  bool
}

// NewDecoder returns a reader that decodes the symbol stream r with eng.
func NewDecoder(eng *radix64.Engine, r io.Reader) io.Reader {
	pad, hasPad := eng.Alphabet().Padding()
	return &Decoder{eng: eng, r: r, pad: pad, hasPad: hasPad}
}

func (d *Decoder) Read(p []byte) (int, error) {
	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.advance()
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

// advance refills the symbol buffer and decodes the next run of groups,
// leaving the result in d.out or a terminal error in d.err.
func (d *Decoder) advance() {
	// Compact the remainder to the front of the buffer, then refill until
	// more than one group is buffered or the source ends.
	if len(d.in) > 0 {
		copy(d.inbuf[:], d.in)
	}
	d.in = d.inbuf[:len(d.in)]
	for !d.eof && len(d.in) <= 4 {
		nn, err := d.r.Read(d.inbuf[len(d.in):])
		d.in = d.inbuf[:len(d.in)+nn]
		if err == io.EOF {
			d.eof = true
		} else if err != nil {
			d.eof = true
			d.readErr = err
		}
	}

	if !d.eof {
		// Decode full groups, holding back the last buffered group: it
		// may turn out to be the padded tail of the stream.
		nd := len(d.in) / 4 * 4
		if nd == len(d.in) {
			nd -= 4
		}
		// Padding may only appear in the stream's final group.
		if d.hasPad {
			if i := bytes.IndexByte(d.in[:nd], d.pad); i >= 0 {
				d.err = &radix64.InvalidByteError{Offset: int(d.off) + i, Byte: d.pad}
				return
			}
		}
		w, err := d.eng.DecodeInto(d.outbuf[:], d.in[:nd])
		d.out = d.outbuf[:w]
		if err != nil {
			d.err = d.remap(err)
			return
		}
		d.in = d.in[nd:]
		d.off += int64(nd)
		return
	}

	// Source exhausted. If it failed, surface its error rather than
	// second-guessing the truncated tail.
	if d.readErr != nil {
		d.err = d.readErr
		return
	}
	if len(d.in) == 0 {
		d.err = io.EOF
		return
	}
	w, err := d.eng.DecodeInto(d.outbuf[:], d.in)
	d.out = d.outbuf[:w]
	if err != nil {
		d.err = d.remap(err)
		return
	}
	d.in = nil
	d.err = io.EOF
}

// remap shifts engine error offsets from buffer-relative to
// stream-absolute.
func (d *Decoder) remap(err error) error {
	var ib *radix64.InvalidByteError
	if errors.As(err, &ib) {
		return &radix64.InvalidByteError{Offset: int(d.off) + ib.Offset, Byte: ib.Byte}
	}
	var ls *radix64.InvalidLastSymbolError
	if errors.As(err, &ls) {
		return &radix64.InvalidLastSymbolError{Offset: int(d.off) + ls.Offset, Byte: ls.Byte}
	}
	return err
}
