package radix64

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestNewEngine_PadRequired(t *testing.T) {
	bare, err := NewAlphabet(stdSymbols)
	if err != nil {
		t.Fatalf("NewAlphabet failed: %v", err)
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"encode padding without pad symbol", Config{EncodePadding: true, DecodePadding: PadRequireNone}, true},
		{"canonical decode without pad symbol", Config{DecodePadding: PadRequireCanonical}, true},
		{"unpadded config on bare alphabet", Config{DecodePadding: PadRequireNone}, false},
		{"forgiving decode on bare alphabet", Config{DecodePadding: PadForgiving}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(bare, tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrPadSymbolRequired) {
					t.Errorf("expected ErrPadSymbolRequired, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestEngine_Accessors(t *testing.T) {
	if Std.Alphabet().Symbols() != stdSymbols {
		t.Errorf("Std alphabet = %q", Std.Alphabet().Symbols())
	}
	cfg := Std.Config()
	if !cfg.EncodePadding || cfg.DecodePadding != PadRequireCanonical || cfg.TrailingBits != TrailingBitsReject {
		t.Errorf("unexpected Std config: %+v", cfg)
	}
	if RawStd.Config().EncodePadding {
		t.Error("RawStd must not emit padding")
	}
}

func TestPolicyNames(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{PadRequireCanonical.String(), "require-canonical"},
		{PadAllowMissing.String(), "allow-missing"},
		{PadRequireNone.String(), "require-none"},
		{PadForgiving.String(), "forgiving"},
		{TrailingBitsReject.String(), "reject"},
		{TrailingBitsIgnore.String(), "ignore"},
		{DecodePadding(99).String(), "unknown(99)"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

// TestEngine_ConcurrentUse exercises a single shared engine from many
// goroutines. Engines are immutable, so this must be race-free.
func TestEngine_ConcurrentUse(t *testing.T) {
	payload := bytes.Repeat([]byte("concurrent payload \x00\xff"), 40)
	want := Std.EncodeToString(payload)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := Std.EncodeToString(payload)
				if got != want {
					t.Errorf("concurrent encode mismatch")
					return
				}
				back, err := Std.DecodeString(got)
				if err != nil || !bytes.Equal(back, payload) {
					t.Errorf("concurrent decode mismatch: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
