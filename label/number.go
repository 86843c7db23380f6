package label

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/govalues/decimal"
)

var thousand = decimal.MustNew(1000, 0)

// siExponents maps the prefixes humanize.ComputeSI returns to powers of ten.
// Micro is listed under both the micro sign and the Greek mu.
var siExponents = map[string]int{
	"y": -24, "z": -21, "a": -18, "f": -15, "p": -12, "n": -9, "\u00b5": -6, "\u03bc": -6, "m": -3,
	"": 0, "k": 3, "M": 6, "G": 9, "T": 12, "P": 15, "E": 18, "Z": 21, "Y": 24,
}

// Number renders v in the given unit system.
func Number(v decimal.Decimal, system UnitSystem) (string, error) {
	switch system {
	case Plain:
		return plain(v), nil
	case SI:
		return si(v)
	case Grouped:
		return grouped(v)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownUnitSystem, system)
	}
}

// Numbers renders every value of vs, typically the output of ticks.Generate.
func Numbers(vs []decimal.Decimal, system UnitSystem) ([]string, error) {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		s, err := Number(v, system)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func plain(v decimal.Decimal) string {
	return v.Trim(0).String()
}

// si takes only the prefix from humanize; the float mantissa it computes is
// not exact, so the decimal is rescaled by powers of 1000 instead.
func si(v decimal.Decimal) (string, error) {
	f, ok := v.Float64()
	if !ok {
		return plain(v), nil
	}
	_, prefix := humanize.ComputeSI(f)
	exp, ok := siExponents[prefix]
	if !ok {
		return plain(v), nil
	}

	m := v
	var err error
	for ; exp > 0; exp -= 3 {
		if m, err = m.Quo(thousand); err != nil {
			return "", fmt.Errorf("label: scaling %s: %w", v, err)
		}
	}
	for ; exp < 0; exp += 3 {
		if m, err = m.Mul(thousand); err != nil {
			return "", fmt.Errorf("label: scaling %s: %w", v, err)
		}
	}

	return plain(m) + prefix, nil
}

// grouped uses BigComma because the integer part of a decimal may exceed
// the int64 range.
func grouped(v decimal.Decimal) (string, error) {
	whole, frac, _ := strings.Cut(plain(v.Abs()), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "", fmt.Errorf("label: cannot group %s", v)
	}

	out := humanize.BigComma(n)
	if frac != "" {
		out += "." + frac
	}
	if v.IsNeg() {
		out = "-" + out
	}

	return out, nil
}
