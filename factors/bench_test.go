package factors_test

import (
	"testing"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/axisgrid/factors"
)

// BenchmarkFind_HighlyComposite measures divisor enumeration of 720720.
func BenchmarkFind_HighlyComposite(b *testing.B) {
	n := decimal.MustNew(720720, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = factors.Find(n)
	}
}

// BenchmarkFindCommon_Small measures the radix path of the tick generator.
func BenchmarkFindCommon_Small(b *testing.B) {
	r, l := decimal.MustNew(12, 0), decimal.MustNew(36, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = factors.FindCommon(r, l)
	}
}
