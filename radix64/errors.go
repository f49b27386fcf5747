package radix64

import (
	"errors"
	"fmt"
)

// Decoding errors. All decode failures are terminal for the call; nothing
// is retried or repaired inside the engine.
var (
	// ErrInvalidLength is returned when the symbol count cannot correspond
	// to any whole number of decoded bytes under the active padding policy.
	ErrInvalidLength = errors.New("radix64: encoded length cannot represent whole bytes")

	// ErrInvalidPadding is returned when padding is present, absent, or
	// shaped in a way the padding policy does not accept.
	ErrInvalidPadding = errors.New("radix64: malformed padding")

	// ErrOutputTooSmall is returned by EncodeInto and DecodeInto when the
	// destination buffer cannot hold the result.
	ErrOutputTooSmall = errors.New("radix64: output buffer too small")
)

// InvalidByteError reports a byte that is neither a data symbol nor a
// padding symbol valid in its position. Offset is the index of the first
// such byte in the input.
type InvalidByteError struct {
	Offset int
	Byte   byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("radix64: invalid symbol %q at offset %d", e.Byte, e.Offset)
}

// InvalidLastSymbolError reports a final symbol whose unused trailing bits
// are nonzero while the engine is configured with TrailingBitsReject.
type InvalidLastSymbolError struct {
	Offset int
	Byte   byte
}

func (e *InvalidLastSymbolError) Error() string {
	return fmt.Sprintf("radix64: non-canonical trailing bits in symbol %q at offset %d", e.Byte, e.Offset)
}
