// Package armor wraps binary payloads in a plain-text envelope built on
// radix64 encoding, for carrying byte data through channels that only
// pass printable text (logs, tickets, config files, chat).
//
// An armored block looks like:
//
//	@armor{v=1 enc=std alg=zstd len=1834 crc=9a3c51b0}
//	KLUv/QBYbQcAhk0... (radix64 lines wrapped at a fixed width)
//	@end
//
// The header records the alphabet dialect, the payload transform, and the
// size and CRC-32 of the original payload; both are verified on decode.
// With alg=zstd the payload is compressed before encoding.
package armor

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
)

// Version is the armor envelope version.
const Version uint8 = 1

// DefaultMaxEncodedSize bounds the armored body a Decode call will buffer
// (64 MiB). Override with WithMaxEncodedSize.
const DefaultMaxEncodedSize = 64 << 20

// Compression selects the payload transform applied before encoding.
type Compression uint8

const (
	CompressNone Compression = 0
	CompressZstd Compression = 1
)

// String returns the wire name of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressNone:
		return "none"
	case CompressZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a wire name back into a Compression.
func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "none":
		return CompressNone, true
	case "zstd":
		return CompressZstd, true
	default:
		return 0, false
	}
}

// Header carries the parsed attributes of an armored block.
type Header struct {
	Version     uint8
	URLSafe     bool        // enc=url: URL-safe alphabet
	Compression Compression // alg
	Len         int         // payload size in bytes, before compression
	CRC         uint32      // CRC-32 (IEEE) of the payload
}

// ErrUnsupportedCompression is returned when an Options value names a
// compression algorithm this package does not implement.
var ErrUnsupportedCompression = errors.New("armor: unsupported compression")

// ErrLengthMismatch is returned when the decoded payload size differs
// from the header's len attribute.
var ErrLengthMismatch = errors.New("armor: payload length differs from header")

// ParseError reports a malformed armored envelope.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "armor: " + e.Reason
}

// CRCMismatchError reports a payload that does not match the header CRC.
type CRCMismatchError struct {
	Expected uint32
	Got      uint32
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("armor: crc mismatch: header %08x, payload %08x", e.Expected, e.Got)
}

// crcTable is the IEEE CRC-32 table.
var crcTable = crc32.MakeTable(crc32.IEEE)

// computeCRC computes CRC-32 IEEE of the given bytes.
func computeCRC(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// Shared zstd codecs. With a nil writer/reader, EncodeAll and DecodeAll
// are safe for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)
