package radix64

import (
	"encoding/binary"
	"slices"
)

// EncodedLen returns the number of symbols produced by encoding n input
// bytes under the engine's padding policy.
func (e *Engine) EncodedLen(n int) int {
	if e.cfg.EncodePadding {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// Encode returns the encoding of src. Encoding is total: it succeeds for
// every byte sequence.
func (e *Engine) Encode(src []byte) []byte {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.encode(dst, src)
	return dst
}

// EncodeToString returns the encoding of src as a string.
func (e *Engine) EncodeToString(src []byte) string {
	return string(e.Encode(src))
}

// AppendEncode appends the encoding of src to dst and returns the
// extended buffer.
func (e *Engine) AppendEncode(dst, src []byte) []byte {
	n := e.EncodedLen(len(src))
	dst = slices.Grow(dst, n)
	e.encode(dst[len(dst):][:n], src)
	return dst[:len(dst)+n]
}

// EncodeInto encodes src into the fixed-capacity buffer dst and returns
// the number of symbols written. If dst cannot hold EncodedLen(len(src))
// bytes, it returns ErrOutputTooSmall and writes nothing.
func (e *Engine) EncodeInto(dst, src []byte) (int, error) {
	n := e.EncodedLen(len(src))
	if len(dst) < n {
		return 0, ErrOutputTooSmall
	}
	return e.encode(dst[:n], src), nil
}

// encode writes exactly EncodedLen(len(src)) symbols to dst, which the
// caller has already sized. It returns the number of symbols written.
//
// The wide loop reads an 8-byte big-endian window and emits 8 symbols for
// its top 6 bytes, amortizing bounds checks; the group loop and the tail
// produce identical output for the remainder, so results never depend on
// which loop handled a given group.
func (e *Engine) encode(dst, src []byte) int {
	alpha := &e.alphabet.symbols
	di, si := 0, 0

	for len(src)-si >= 8 {
		v := binary.BigEndian.Uint64(src[si:])
		dst[di+0] = alpha[v>>58&0x3F]
		dst[di+1] = alpha[v>>52&0x3F]
		dst[di+2] = alpha[v>>46&0x3F]
		dst[di+3] = alpha[v>>40&0x3F]
		dst[di+4] = alpha[v>>34&0x3F]
		dst[di+5] = alpha[v>>28&0x3F]
		dst[di+6] = alpha[v>>22&0x3F]
		dst[di+7] = alpha[v>>16&0x3F]
		si += 6
		di += 8
	}

	n := len(src) / 3 * 3
	for si < n {
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di+0] = alpha[v>>18&0x3F]
		dst[di+1] = alpha[v>>12&0x3F]
		dst[di+2] = alpha[v>>6&0x3F]
		dst[di+3] = alpha[v&0x3F]
		si += 3
		di += 4
	}

	switch len(src) - si {
	case 1:
		v := uint32(src[si]) << 16
		dst[di+0] = alpha[v>>18&0x3F]
		dst[di+1] = alpha[v>>12&0x3F]
		di += 2
		if e.cfg.EncodePadding {
			dst[di+0] = e.alphabet.pad
			dst[di+1] = e.alphabet.pad
			di += 2
		}
	case 2:
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8
		dst[di+0] = alpha[v>>18&0x3F]
		dst[di+1] = alpha[v>>12&0x3F]
		dst[di+2] = alpha[v>>6&0x3F]
		di += 3
		if e.cfg.EncodePadding {
			dst[di] = e.alphabet.pad
			di++
		}
	}
	return di
}
