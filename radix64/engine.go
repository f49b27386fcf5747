package radix64

import (
	"errors"
	"fmt"
)

// ============================================================
// Padding Policy
// ============================================================

// DecodePadding selects how a decoder treats padding symbols.
type DecodePadding uint8

const (
	// PadRequireCanonical requires the input to be padded to a multiple of
	// four symbols with exactly the pad count the tail length dictates.
	PadRequireCanonical DecodePadding = iota

	// PadAllowMissing accepts either fully canonical padding or none at
	// all. A partial pad run is rejected.
	PadAllowMissing

	// PadRequireNone treats the padding symbol as any other non-alphabet
	// byte; its presence anywhere yields InvalidByteError.
	PadRequireNone

	// PadForgiving accepts canonical padding, absent padding, or a
	// truncated trailing pad run, while still validating that pads only
	// trail the final symbols and that the tail can represent whole bytes.
	PadForgiving
)

// String returns the policy name.
func (p DecodePadding) String() string {
	switch p {
	case PadRequireCanonical:
		return "require-canonical"
	case PadAllowMissing:
		return "allow-missing"
	case PadRequireNone:
		return "require-none"
	case PadForgiving:
		return "forgiving"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}

// TrailingBits selects how a decoder treats nonzero unused bits in the
// final symbol of a 2- or 3-symbol tail group.
type TrailingBits uint8

const (
	// TrailingBitsReject rejects nonzero unused bits with
	// InvalidLastSymbolError. Only canonical tails decode.
	TrailingBitsReject TrailingBits = iota

	// TrailingBitsIgnore discards the unused bits.
	TrailingBitsIgnore
)

// String returns the policy name.
func (t TrailingBits) String() string {
	switch t {
	case TrailingBitsReject:
		return "reject"
	case TrailingBitsIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Config holds the padding and canonicality policy of an Engine.
//
// The zero value is the strictest configuration: padding is not emitted,
// decoding requires canonical padding, and nonzero trailing bits are
// rejected. Both canonicality knobs are plain fields so callers choose
// them explicitly; the package never infers a lenient mode.
type Config struct {
	// EncodePadding emits padding symbols to complete the final group.
	// Requires the alphabet to carry a padding symbol.
	EncodePadding bool

	// DecodePadding selects the decode-side padding policy.
	DecodePadding DecodePadding

	// TrailingBits selects whether non-canonical trailing bits decode.
	TrailingBits TrailingBits
}

// ============================================================
// Engine
// ============================================================

// invalidSymbol marks decode table entries with no corresponding 6-bit
// value. It lies outside 0-63, so a single unsigned comparison classifies
// a lookup.
const invalidSymbol = 0xFF

// ErrPadSymbolRequired is returned by NewEngine when the configuration
// needs a padding symbol but the alphabet has none.
var ErrPadSymbolRequired = errors.New("radix64: config requires an alphabet with a padding symbol")

// Engine composes an Alphabet, a Config, and the decode table derived from
// them. It is immutable after construction: one Engine value may be shared
// across goroutines and used for the lifetime of the process without
// synchronization. Encode and decode calls retain no state.
type Engine struct {
	alphabet Alphabet
	cfg      Config
	decTable [256]byte
}

// NewEngine builds an Engine from an alphabet and a policy configuration.
//
// Construction fails if the configuration emits or requires padding while
// the alphabet carries no padding symbol. Building the 256-entry decode
// table happens once here; lookups afterwards are branch-free.
func NewEngine(a Alphabet, cfg Config) (*Engine, error) {
	if !a.hasPad {
		if cfg.EncodePadding || cfg.DecodePadding == PadRequireCanonical {
			return nil, ErrPadSymbolRequired
		}
	}
	e := &Engine{alphabet: a, cfg: cfg}
	for i := range e.decTable {
		e.decTable[i] = invalidSymbol
	}
	for v, c := range a.symbols {
		e.decTable[c] = byte(v)
	}
	return e, nil
}

// MustEngine is like NewEngine but panics on error. It is intended for
// package-level engine variables built from known-good alphabets.
func MustEngine(a Alphabet, cfg Config) *Engine {
	e, err := NewEngine(a, cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the engine's alphabet.
func (e *Engine) Alphabet() Alphabet {
	return e.alphabet
}

// Config returns the engine's policy configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// ============================================================
// Ready-Made Engines
// ============================================================

var (
	// Std encodes with the standard alphabet and padding, and decodes
	// strictly: canonical padding required, trailing bits rejected.
	Std = MustEngine(StdAlphabet, Config{
		EncodePadding: true,
		DecodePadding: PadRequireCanonical,
		TrailingBits:  TrailingBitsReject,
	})

	// RawStd encodes with the standard alphabet and no padding, and
	// rejects any padding symbol on decode.
	RawStd = MustEngine(StdAlphabet, Config{
		EncodePadding: false,
		DecodePadding: PadRequireNone,
		TrailingBits:  TrailingBitsReject,
	})

	// URL is Std with the URL-safe alphabet.
	URL = MustEngine(URLAlphabet, Config{
		EncodePadding: true,
		DecodePadding: PadRequireCanonical,
		TrailingBits:  TrailingBitsReject,
	})

	// RawURL is RawStd with the URL-safe alphabet.
	RawURL = MustEngine(URLAlphabet, Config{
		EncodePadding: false,
		DecodePadding: PadRequireNone,
		TrailingBits:  TrailingBitsReject,
	})

	// StdLenient emits padding but accepts padded, unpadded, and
	// truncated-pad input, and ignores non-canonical trailing bits.
	StdLenient = MustEngine(StdAlphabet, Config{
		EncodePadding: true,
		DecodePadding: PadForgiving,
		TrailingBits:  TrailingBitsIgnore,
	})
)
