package radix64

import "slices"

// DecodedLen returns the maximum number of bytes that decoding n symbols
// can produce. The actual count is smaller when the input ends in padding.
func (e *Engine) DecodedLen(n int) int {
	if e.cfg.DecodePadding == PadRequireCanonical {
		return n / 4 * 3
	}
	return n * 3 / 4
}

// Decode decodes src and returns the decoded bytes.
//
// On malformed input it returns nil and one of ErrInvalidLength,
// ErrInvalidPadding, InvalidByteError, or InvalidLastSymbolError. Errors
// always identify the earliest offending position, independent of the
// internal batch size used for throughput.
func (e *Engine) Decode(src []byte) ([]byte, error) {
	n, err := e.analyze(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, decodedCount(n))
	if _, err := e.decode(dst, src, n); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeString decodes the symbol string s.
func (e *Engine) DecodeString(s string) ([]byte, error) {
	return e.Decode([]byte(s))
}

// AppendDecode appends the decoding of src to dst and returns the
// extended buffer. On error the original dst is returned unchanged.
func (e *Engine) AppendDecode(dst, src []byte) ([]byte, error) {
	n, err := e.analyze(src)
	if err != nil {
		return dst, err
	}
	need := decodedCount(n)
	grown := slices.Grow(dst, need)
	w, err := e.decode(grown[len(grown):][:need], src, n)
	if err != nil {
		return dst, err
	}
	return grown[:len(grown)+w], nil
}

// DecodeInto decodes src into the fixed-capacity buffer dst and returns
// the number of bytes written. If dst cannot hold the decoded output it
// returns ErrOutputTooSmall before writing anything; on malformed input
// the returned count covers the bytes decoded before the error.
func (e *Engine) DecodeInto(dst, src []byte) (int, error) {
	n, err := e.analyze(src)
	if err != nil {
		return 0, err
	}
	need := decodedCount(n)
	if len(dst) < need {
		return 0, ErrOutputTooSmall
	}
	return e.decode(dst[:need], src, n)
}

// decodedCount returns the exact decoded size of n significant symbols.
// n%4 == 1 is excluded by analyze.
func decodedCount(n int) int {
	b := n / 4 * 3
	switch n % 4 {
	case 2:
		b++
	case 3:
		b += 2
	}
	return b
}

// analyze validates the overall shape of src under the engine's padding
// policy and returns the count of significant (non-pad) symbols. Length
// is validated before any symbol is looked up, so shape errors never
// depend on input content.
func (e *Engine) analyze(src []byte) (int, error) {
	if e.cfg.DecodePadding == PadRequireNone {
		// Pad symbols are not stripped here; the decode loop reports them
		// as invalid bytes at their exact offset.
		if len(src)%4 == 1 {
			return 0, ErrInvalidLength
		}
		return len(src), nil
	}

	n, pads := len(src), 0
	if e.alphabet.hasPad {
		for n > 0 && src[n-1] == e.alphabet.pad {
			n--
			pads++
		}
	}

	switch e.cfg.DecodePadding {
	case PadRequireCanonical:
		if len(src)%4 != 0 {
			if pads == 0 && len(src)%4 == 1 {
				return 0, ErrInvalidLength
			}
			return 0, ErrInvalidPadding
		}
		if pads > 2 {
			return 0, ErrInvalidPadding
		}

	case PadAllowMissing:
		if pads == 0 {
			if n%4 == 1 {
				return 0, ErrInvalidLength
			}
			return n, nil
		}
		if len(src)%4 != 0 || pads > 2 {
			return 0, ErrInvalidPadding
		}

	case PadForgiving:
		if pads == 0 {
			if n%4 == 1 {
				return 0, ErrInvalidLength
			}
			return n, nil
		}
		// A pad run may be truncated but never longer than the canonical
		// count for the tail, and never follows a full group.
		switch n % 4 {
		case 2:
			if pads > 2 {
				return 0, ErrInvalidPadding
			}
		case 3:
			if pads > 1 {
				return 0, ErrInvalidPadding
			}
		default:
			return 0, ErrInvalidPadding
		}
	}
	return n, nil
}

// decode converts the first n symbols of src into dst, which the caller
// has sized to at least decodedCount(n) bytes. It returns the number of
// bytes written before the first error, if any.
//
// The fast loop advances 8 symbols at a time, packing morsels into a
// 48-bit accumulator emitted big-endian; it only asserts that a chunk is
// entirely valid and bails to the group loop otherwise, which re-examines
// the chunk and attributes the exact failing offset. The fast loop never
// reaches the final partial group, so trailing-bit validation happens in
// exactly one place.
func (e *Engine) decode(dst, src []byte, n int) (int, error) {
	table := &e.decTable
	si, di := 0, 0
	full := n / 4 * 4

	for full-si >= 8 {
		m0 := table[src[si+0]]
		m1 := table[src[si+1]]
		m2 := table[src[si+2]]
		m3 := table[src[si+3]]
		m4 := table[src[si+4]]
		m5 := table[src[si+5]]
		m6 := table[src[si+6]]
		m7 := table[src[si+7]]
		if m0|m1|m2|m3|m4|m5|m6|m7 >= 0x40 {
			break
		}
		v := uint64(m0)<<42 | uint64(m1)<<36 | uint64(m2)<<30 | uint64(m3)<<24 |
			uint64(m4)<<18 | uint64(m5)<<12 | uint64(m6)<<6 | uint64(m7)
		dst[di+0] = byte(v >> 40)
		dst[di+1] = byte(v >> 32)
		dst[di+2] = byte(v >> 24)
		dst[di+3] = byte(v >> 16)
		dst[di+4] = byte(v >> 8)
		dst[di+5] = byte(v)
		si += 8
		di += 6
	}

	for full-si >= 4 {
		m0 := table[src[si+0]]
		if m0 == invalidSymbol {
			return di, &InvalidByteError{Offset: si, Byte: src[si]}
		}
		m1 := table[src[si+1]]
		if m1 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 1, Byte: src[si+1]}
		}
		m2 := table[src[si+2]]
		if m2 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 2, Byte: src[si+2]}
		}
		m3 := table[src[si+3]]
		if m3 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 3, Byte: src[si+3]}
		}
		v := uint32(m0)<<18 | uint32(m1)<<12 | uint32(m2)<<6 | uint32(m3)
		dst[di+0] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		si += 4
		di += 3
	}

	switch n - si {
	case 2:
		m0 := table[src[si+0]]
		if m0 == invalidSymbol {
			return di, &InvalidByteError{Offset: si, Byte: src[si]}
		}
		m1 := table[src[si+1]]
		if m1 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 1, Byte: src[si+1]}
		}
		if e.cfg.TrailingBits == TrailingBitsReject && m1&0x0F != 0 {
			return di, &InvalidLastSymbolError{Offset: si + 1, Byte: src[si+1]}
		}
		dst[di] = m0<<2 | m1>>4
		di++
	case 3:
		m0 := table[src[si+0]]
		if m0 == invalidSymbol {
			return di, &InvalidByteError{Offset: si, Byte: src[si]}
		}
		m1 := table[src[si+1]]
		if m1 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 1, Byte: src[si+1]}
		}
		m2 := table[src[si+2]]
		if m2 == invalidSymbol {
			return di, &InvalidByteError{Offset: si + 2, Byte: src[si+2]}
		}
		if e.cfg.TrailingBits == TrailingBitsReject && m2&0x03 != 0 {
			return di, &InvalidLastSymbolError{Offset: si + 2, Byte: src[si+2]}
		}
		v := uint32(m0)<<12 | uint32(m1)<<6 | uint32(m2)
		dst[di+0] = byte(v >> 10)
		dst[di+1] = byte(v >> 2)
		di += 2
	}
	return di, nil
}
