package label_test

import (
	"testing"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/axisgrid/label"
)

func BenchmarkNumber_SI(b *testing.B) {
	v := decimal.MustParse("2500000")
	for i := 0; i < b.N; i++ {
		_, _ = label.Number(v, label.SI)
	}
}

func BenchmarkNumber_Grouped(b *testing.B) {
	v := decimal.MustParse("1234567.5")
	for i := 0; i < b.N; i++ {
		_, _ = label.Number(v, label.Grouped)
	}
}
