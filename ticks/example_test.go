package ticks_test

import (
	"fmt"

	"github.com/govalues/decimal"

	"github.com/katalvlaran/axisgrid/ticks"
)

// ExampleGenerate lays out at most four intervals over [0.1, 0.3]. Decimal
// arithmetic keeps every tick exact.
func ExampleGenerate() {
	start := decimal.MustNew(1, 1) // 0.1
	end := decimal.MustNew(3, 1)   // 0.3

	ts, err := ticks.Generate(start, end, ticks.WithMaxCount(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, tk := range ts {
		fmt.Println(tk.Trim(0))
	}
	// Output:
	// 0.1
	// 0.15
	// 0.2
	// 0.25
	// 0.3
}

// ExampleWithExpand grows [1.5, 8.7] to the enclosing even boundaries.
func ExampleWithExpand() {
	ts, err := ticks.GenerateFloat64(1.5, 8.7, ticks.WithMaxCount(5), ticks.WithExpand())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(ts), ts[0].Trim(0), ts[len(ts)-1].Trim(0))
	// Output:
	// 6 0 10
}

// ExampleWithRadix spaces a minutes axis on divisors of 60.
func ExampleWithRadix() {
	ts, _ := ticks.Generate(decimal.MustNew(0, 0), decimal.MustNew(60, 0),
		ticks.WithMaxCount(4), ticks.WithRadix(60))
	fmt.Println(ts)
	// Output:
	// [0 15 30 45 60]
}
