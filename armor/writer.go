package armor

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/drogus/radix64/radix64"
)

// defaultCols is the line width of the armored body.
const defaultCols = 76

// Options configures Encode.
type Options struct {
	// URLSafe selects the URL-safe alphabet (enc=url).
	URLSafe bool

	// Compression selects the payload transform (alg).
	Compression Compression

	// Cols is the body line width; 0 means 76.
	Cols int
}

// Encode writes payload to w as a single armored block.
func Encode(w io.Writer, payload []byte, opts Options) error {
	cols := opts.Cols
	if cols <= 0 {
		cols = defaultCols
	}

	eng, encName := radix64.Std, "std"
	if opts.URLSafe {
		eng, encName = radix64.URL, "url"
	}

	body := payload
	switch opts.Compression {
	case CompressNone:
	case CompressZstd:
		body = zstdEncoder.EncodeAll(payload, nil)
	default:
		return ErrUnsupportedCompression
	}

	var header strings.Builder
	header.WriteString("@armor{v=")
	header.WriteString(strconv.Itoa(int(Version)))
	header.WriteString(" enc=")
	header.WriteString(encName)
	header.WriteString(" alg=")
	header.WriteString(opts.Compression.String())
	header.WriteString(" len=")
	header.WriteString(strconv.Itoa(len(payload)))
	header.WriteString(" crc=")
	fmt.Fprintf(&header, "%08x", computeCRC(payload))
	header.WriteString("}\n")

	if _, err := io.WriteString(w, header.String()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	symbols := eng.Encode(body)
	for len(symbols) > 0 {
		n := cols
		if n > len(symbols) {
			n = len(symbols)
		}
		if _, err := w.Write(symbols[:n]); err != nil {
			return fmt.Errorf("write body: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("write body: %w", err)
		}
		symbols = symbols[n:]
	}

	if _, err := io.WriteString(w, "@end\n"); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}
	return nil
}
