package radix64

import (
	"errors"
	"fmt"
)

// ============================================================
// Alphabet
// ============================================================

// Alphabet is an ordered set of 64 distinct printable symbols, optionally
// accompanied by a padding symbol. The symbol at index i encodes the 6-bit
// value i. Alphabets are immutable values; deriving a padded variant with
// WithPadding returns a copy.
type Alphabet struct {
	symbols [64]byte
	pad     byte
	hasPad  bool
}

// Alphabet construction errors.
var (
	// ErrAlphabetLength is returned when the symbol string is not exactly
	// 64 bytes long.
	ErrAlphabetLength = errors.New("radix64: alphabet must contain exactly 64 symbols")
)

// DuplicateSymbolError is returned when a symbol occurs more than once in
// an alphabet.
type DuplicateSymbolError struct {
	Byte byte
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("radix64: duplicate alphabet symbol %q", e.Byte)
}

// UnprintableSymbolError is returned when a symbol falls outside the
// printable ASCII range accepted for alphabets (0x21-0x7E).
type UnprintableSymbolError struct {
	Byte byte
}

func (e *UnprintableSymbolError) Error() string {
	return fmt.Sprintf("radix64: unprintable alphabet symbol 0x%02x", e.Byte)
}

// ReservedSymbolError is returned when the padding symbol collides with
// one of the 64 data symbols.
type ReservedSymbolError struct {
	Byte byte
}

func (e *ReservedSymbolError) Error() string {
	return fmt.Sprintf("radix64: padding symbol %q is already a data symbol", e.Byte)
}

// NewAlphabet builds an Alphabet from a 64-byte symbol string. The
// returned alphabet has no padding symbol; use WithPadding to attach one.
//
// Symbols must be distinct single bytes in the printable ASCII range
// 0x21-0x7E. The range excludes space and every value the decode table
// reserves internally, so any accepted alphabet is safe to decode against.
func NewAlphabet(symbols string) (Alphabet, error) {
	var a Alphabet
	if len(symbols) != 64 {
		return a, ErrAlphabetLength
	}
	var seen [256]bool
	for i := 0; i < 64; i++ {
		c := symbols[i]
		if c < '!' || c > '~' {
			return Alphabet{}, &UnprintableSymbolError{Byte: c}
		}
		if seen[c] {
			return Alphabet{}, &DuplicateSymbolError{Byte: c}
		}
		seen[c] = true
		a.symbols[i] = c
	}
	return a, nil
}

// WithPadding returns a copy of the alphabet carrying pad as its padding
// symbol. The padding symbol must be printable and distinct from all 64
// data symbols.
func (a Alphabet) WithPadding(pad byte) (Alphabet, error) {
	if pad < '!' || pad > '~' {
		return Alphabet{}, &UnprintableSymbolError{Byte: pad}
	}
	for _, c := range a.symbols {
		if c == pad {
			return Alphabet{}, &ReservedSymbolError{Byte: pad}
		}
	}
	a.pad = pad
	a.hasPad = true
	return a, nil
}

// Symbols returns the 64 data symbols in order.
func (a Alphabet) Symbols() string {
	return string(a.symbols[:])
}

// Padding returns the padding symbol and whether one is configured.
func (a Alphabet) Padding() (byte, bool) {
	return a.pad, a.hasPad
}

// String returns the data symbols, followed by the padding symbol if one
// is configured.
func (a Alphabet) String() string {
	if a.hasPad {
		return string(a.symbols[:]) + string(a.pad)
	}
	return string(a.symbols[:])
}

// ============================================================
// Standard Alphabets
// ============================================================

const (
	stdSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// StdAlphabet is the RFC 4648 section 4 alphabet with '=' padding.
var StdAlphabet = mustAlphabet(stdSymbols, '=')

// URLAlphabet is the RFC 4648 section 5 URL- and filename-safe alphabet
// with '=' padding.
var URLAlphabet = mustAlphabet(urlSymbols, '=')

func mustAlphabet(symbols string, pad byte) Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	a, err = a.WithPadding(pad)
	if err != nil {
		panic(err)
	}
	return a
}
