package ticks_test

import (
	"testing"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/axisgrid/ticks"
)

// benchmarkGenerate runs Generate over [start, end] with opts, failing on errors.
func benchmarkGenerate(b *testing.B, start, end string, opts ...ticks.Option) {
	a, e := decimal.MustParse(start), decimal.MustParse(end)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ticks.Generate(a, e, opts...); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Decimal10 measures a typical value axis.
func BenchmarkGenerate_Decimal10(b *testing.B) {
	benchmarkGenerate(b, "-3.7", "1234.5", ticks.WithMaxCount(10))
}

// BenchmarkGenerate_Fractional measures a sub-unit axis.
func BenchmarkGenerate_Fractional(b *testing.B) {
	benchmarkGenerate(b, "0.0001", "0.0097", ticks.WithMaxCount(8))
}

// BenchmarkGenerate_Radix12 exercises the common-divisor mantissa path.
func BenchmarkGenerate_Radix12(b *testing.B) {
	benchmarkGenerate(b, "0", "1440", ticks.WithMaxCount(12), ticks.WithRadix(12))
}

// BenchmarkGenerate_Expand measures expand mode with the full mantissa set.
func BenchmarkGenerate_Expand(b *testing.B) {
	benchmarkGenerate(b, "13", "987", ticks.WithMaxCount(6), ticks.WithExpand())
}
