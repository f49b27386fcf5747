// Package radix64 implements a configurable base64 codec.
//
// Unlike a fixed encoding, radix64 separates the three things that vary
// between base64 dialects and lets each be chosen independently:
//   - The Alphabet: 64 printable symbols plus an optional padding symbol
//   - The encode policy: whether padding is emitted
//   - The decode policy: whether padding is required, forbidden, optional,
//     or forgivingly accepted, and whether nonzero unused trailing bits in
//     the final symbol are rejected
//
// An Engine bundles an Alphabet with a Config and owns the derived
// 256-entry decode table. Engines are immutable after construction and
// safe for unsynchronized concurrent use; encode and decode calls keep no
// state between invocations.
//
// # Ready-Made Engines
//
// The common dialects are exposed as package-level engines:
//
//	Std        standard alphabet, padded, strict canonical decoding
//	RawStd     standard alphabet, unpadded, padding forbidden on decode
//	URL        URL-safe alphabet, padded, strict canonical decoding
//	RawURL     URL-safe alphabet, unpadded, padding forbidden on decode
//	StdLenient standard alphabet, padded encode, forgiving decode
//
// # Custom Engines
//
//	alpha, err := radix64.NewAlphabet("...64 symbols...")
//	alpha, err = alpha.WithPadding('=')
//	eng, err := radix64.NewEngine(alpha, radix64.Config{
//		EncodePadding: true,
//		DecodePadding: radix64.PadRequireCanonical,
//		TrailingBits:  radix64.TrailingBitsReject,
//	})
//
// # Errors
//
// Encoding is total: every byte sequence encodes. Decoding reports the
// first malformed position deterministically via InvalidByteError and
// InvalidLastSymbolError, or the sentinels ErrInvalidLength and
// ErrInvalidPadding when the overall shape is wrong. The fixed-capacity
// variants EncodeInto and DecodeInto report ErrOutputTooSmall instead of
// growing the destination.
package radix64
