package pgtext_test

import (
	"testing"

	"github.com/AndrewDonelson/pgtext"
)

// ── format benchmarks ─────────────────────────────────────────────────────────

func BenchmarkFormat_Int64(b *testing.B) {
	c := pgtext.IntCodecOf[int64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Format(int64(i))
	}
}

func BenchmarkFormat_Float64(b *testing.B) {
	c := pgtext.FloatCodecOf[float64]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Format(float64(i) * 1.5)
	}
}

func BenchmarkFormatInto_Int64(b *testing.B) {
	c := pgtext.IntCodecOf[int64]()
	buf := make([]byte, c.SizeHint(0))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pgtext.FormatInto(c, buf, int64(i))
	}
}

// ── parse benchmarks ──────────────────────────────────────────────────────────

func BenchmarkParse_Int64(b *testing.B) {
	c := pgtext.IntCodecOf[int64]()
	in := pgtext.NewText("-9223372036854775808")
	var dst int64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Parse(in, &dst)
	}
}

func BenchmarkParse_Bool(b *testing.B) {
	c := pgtext.BoolCodec()
	in := pgtext.NewText("t")
	var dst bool
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Parse(in, &dst)
	}
}

func BenchmarkParse_PointerReuse(b *testing.B) {
	c := pgtext.PtrCodecOf(pgtext.IntCodecOf[int]())
	in := pgtext.NewText("12345")
	dst := new(int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Parse(in, &dst)
	}
}

// ── registry benchmarks ───────────────────────────────────────────────────────

func BenchmarkFor_Builtin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = pgtext.For[int64]()
	}
}

func BenchmarkFor_DerivedWrapper(b *testing.B) {
	// Derivation happens once; steady state is a read-locked map hit.
	for i := 0; i < b.N; i++ {
		_, _ = pgtext.For[*int64]()
	}
}

func BenchmarkFormatValue_Dynamic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = pgtext.FormatValue(int64(i))
	}
}
