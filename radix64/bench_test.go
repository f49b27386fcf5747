package radix64

import (
	"math/rand"
	"testing"
)

func benchPayload(n int) []byte {
	src := make([]byte, n)
	rand.New(rand.NewSource(3)).Read(src)
	return src
}

func BenchmarkEncode(b *testing.B) {
	src := benchPayload(8 << 10)
	dst := make([]byte, Std.EncodedLen(len(src)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Std.EncodeInto(dst, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	src := benchPayload(8 << 10)
	enc := Std.Encode(src)
	dst := make([]byte, Std.DecodedLen(len(enc)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Std.DecodeInto(dst, enc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Unpadded(b *testing.B) {
	src := benchPayload(8<<10 + 1)
	enc := RawStd.Encode(src)
	dst := make([]byte, RawStd.DecodedLen(len(enc)))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := RawStd.DecodeInto(dst, enc); err != nil {
			b.Fatal(err)
		}
	}
}
