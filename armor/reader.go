package armor

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/drogus/radix64/radix64"
)

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	maxEncoded int
}

// WithMaxEncodedSize caps the number of body symbols Decode will buffer
// (default: DefaultMaxEncodedSize).
func WithMaxEncodedSize(n int) DecodeOption {
	return func(c *decodeConfig) {
		c.maxEncoded = n
	}
}

// Decode reads one armored block from r and returns the payload and the
// parsed header. The payload is decoded with the engine the header names,
// decompressed if alg says so, and verified against the header's len and
// crc attributes.
func Decode(r io.Reader, opts ...DecodeOption) ([]byte, *Header, error) {
	cfg := decodeConfig{maxEncoded: DefaultMaxEncodedSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	br := bufio.NewReader(r)
	headerLine, err := br.ReadString('\n')
	if err != nil && (err != io.EOF || headerLine == "") {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	hdr, err := parseHeader(headerLine)
	if err != nil {
		return nil, nil, err
	}

	var symbols bytes.Buffer
	for {
		line, err := br.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "@end" {
			break
		}
		if err != nil {
			return nil, hdr, &ParseError{Reason: "missing @end trailer"}
		}
		symbols.WriteString(trimmed)
		if symbols.Len() > cfg.maxEncoded {
			return nil, hdr, &ParseError{Reason: "armored body too large"}
		}
	}

	eng := radix64.Std
	if hdr.URLSafe {
		eng = radix64.URL
	}
	body, err := eng.Decode(symbols.Bytes())
	if err != nil {
		return nil, hdr, fmt.Errorf("decode body: %w", err)
	}

	if hdr.Compression == CompressZstd {
		body, err = zstdDecoder.DecodeAll(body, nil)
		if err != nil {
			return nil, hdr, fmt.Errorf("decompress body: %w", err)
		}
	}

	if len(body) != hdr.Len {
		return nil, hdr, ErrLengthMismatch
	}
	if got := computeCRC(body); got != hdr.CRC {
		return nil, hdr, &CRCMismatchError{Expected: hdr.CRC, Got: got}
	}
	return body, hdr, nil
}

// parseHeader parses the @armor{...} header line.
func parseHeader(line string) (*Header, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "@armor{") {
		return nil, &ParseError{Reason: "expected @armor{ header"}
	}
	end := strings.LastIndex(line, "}")
	if end < 0 {
		return nil, &ParseError{Reason: "missing closing } in header"}
	}

	hdr := &Header{Version: Version}
	for _, pair := range strings.Fields(line[len("@armor{"):end]) {
		eq := strings.Index(pair, "=")
		if eq < 0 {
			return nil, &ParseError{Reason: "malformed header field " + strconv.Quote(pair)}
		}
		key, val := pair[:eq], pair[eq+1:]
		switch key {
		case "v":
			n, err := strconv.Atoi(val)
			if err != nil || n != int(Version) {
				return nil, &ParseError{Reason: "unsupported version " + strconv.Quote(val)}
			}
			hdr.Version = uint8(n)
		case "enc":
			switch val {
			case "std":
			case "url":
				hdr.URLSafe = true
			default:
				return nil, &ParseError{Reason: "unknown alphabet " + strconv.Quote(val)}
			}
		case "alg":
			c, ok := ParseCompression(val)
			if !ok {
				return nil, &ParseError{Reason: "unknown compression " + strconv.Quote(val)}
			}
			hdr.Compression = c
		case "len":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return nil, &ParseError{Reason: "invalid len " + strconv.Quote(val)}
			}
			hdr.Len = n
		case "crc":
			u, err := strconv.ParseUint(val, 16, 32)
			if err != nil {
				return nil, &ParseError{Reason: "invalid crc " + strconv.Quote(val)}
			}
			hdr.CRC = uint32(u)
		default:
			// Unknown attributes are skipped for forward compatibility.
		}
	}
	return hdr, nil
}
