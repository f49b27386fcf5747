package armor

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/drogus/radix64/radix64"
)

func TestRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":        nil,
		"short":        []byte("hello armor"),
		"binary":       {0x00, 0xFF, 0x80, 0x7F, 0x0A, 0x0D},
		"compressible": bytes.Repeat([]byte("abcabcabc"), 500),
	}

	for name, payload := range payloads {
		for _, opts := range []Options{
			{},
			{URLSafe: true},
			{Compression: CompressZstd},
			{URLSafe: true, Compression: CompressZstd, Cols: 40},
		} {
			t.Run(name+"/"+opts.Compression.String(), func(t *testing.T) {
				var buf bytes.Buffer
				if err := Encode(&buf, payload, opts); err != nil {
					t.Fatalf("Encode failed: %v", err)
				}

				got, hdr, err := Decode(&buf)
				if err != nil {
					t.Fatalf("Decode failed: %v", err)
				}
				if !bytes.Equal(got, payload) {
					t.Errorf("payload mismatch: got %d bytes, want %d", len(got), len(payload))
				}
				if hdr.Len != len(payload) {
					t.Errorf("header len = %d, want %d", hdr.Len, len(payload))
				}
				if hdr.URLSafe != opts.URLSafe || hdr.Compression != opts.Compression {
					t.Errorf("header attrs = %+v", hdr)
				}
			})
		}
	}
}

func TestEncode_Layout(t *testing.T) {
	payload := make([]byte, 100)
	rand.New(rand.NewSource(20)).Read(payload)

	var buf bytes.Buffer
	if err := Encode(&buf, payload, Options{Cols: 32}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "@armor{v=1 enc=std alg=none len=100 crc=") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[len(lines)-1] != "@end" {
		t.Errorf("unexpected trailer: %q", lines[len(lines)-1])
	}
	for i, line := range lines[1 : len(lines)-1] {
		if len(line) > 32 {
			t.Errorf("body line %d exceeds wrap width: %d symbols", i, len(line))
		}
	}
}

func TestEncode_UnsupportedCompression(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []byte("x"), Options{Compression: Compression(9)})
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Errorf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	armored := func(payload []byte, opts Options) string {
		var buf bytes.Buffer
		if err := Encode(&buf, payload, opts); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		return buf.String()
	}

	good := armored([]byte("payload under test"), Options{})

	tests := []struct {
		name  string
		in    string
		check func(t *testing.T, err error)
	}{
		{
			name: "not an armor block",
			in:   "PGh0bWw+\n",
			check: func(t *testing.T, err error) {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("want ParseError, got %v", err)
				}
			},
		},
		{
			name: "missing trailer",
			in:   strings.TrimSuffix(good, "@end\n"),
			check: func(t *testing.T, err error) {
				var pe *ParseError
				if !errors.As(err, &pe) || !strings.Contains(pe.Reason, "@end") {
					t.Errorf("want trailer ParseError, got %v", err)
				}
			},
		},
		{
			name: "unsupported version",
			in:   strings.Replace(good, "v=1", "v=9", 1),
			check: func(t *testing.T, err error) {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Errorf("want ParseError, got %v", err)
				}
			},
		},
		{
			name: "corrupted body symbol",
			in:   strings.Replace(good, "\n@end", "!AAA\n@end", 1),
			check: func(t *testing.T, err error) {
				var ib *radix64.InvalidByteError
				if !errors.As(err, &ib) || ib.Byte != '!' {
					t.Errorf("want InvalidByteError('!'), got %v", err)
				}
			},
		},
		{
			name: "length mismatch",
			in:   strings.Replace(good, "len=18", "len=19", 1),
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrLengthMismatch) {
					t.Errorf("want ErrLengthMismatch, got %v", err)
				}
			},
		},
		{
			name: "crc mismatch",
			in:   replaceCRC(good, "deadbeef"),
			check: func(t *testing.T, err error) {
				var ce *CRCMismatchError
				if !errors.As(err, &ce) {
					t.Errorf("want CRCMismatchError, got %v", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			tt.check(t, err)
		})
	}
}

// replaceCRC swaps the crc attribute of the header for v.
func replaceCRC(block, v string) string {
	i := strings.Index(block, "crc=")
	if i < 0 {
		return block
	}
	return block[:i+4] + v + block[i+4+8:]
}

func TestDecode_SizeLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, bytes.Repeat([]byte("x"), 4096), Options{}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	_, _, err := Decode(&buf, WithMaxEncodedSize(64))
	var pe *ParseError
	if !errors.As(err, &pe) || !strings.Contains(pe.Reason, "too large") {
		t.Errorf("want size ParseError, got %v", err)
	}
}

func TestDecode_SkipsUnknownHeaderFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []byte("fwd"), Options{}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	in := strings.Replace(buf.String(), " alg=none", " alg=none note=hi", 1)
	got, _, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(got) != "fwd" {
		t.Errorf("payload = %q", got)
	}
}
