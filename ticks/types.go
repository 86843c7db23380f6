package ticks

import (
	"errors"
	"math"

	"github.com/govalues/decimal"
)

// Sentinel errors for tick generation.
var (
	// ErrInvalidInterval indicates end ≤ start or a NaN/infinite bound.
	ErrInvalidInterval = errors.New("ticks: interval must be finite and with a positive length")
	// ErrInvalidMinInterval indicates a negative, NaN or infinite minimum interval.
	ErrInvalidMinInterval = errors.New("ticks: minimum tick interval must be finite and non-negative")
	// ErrInvalidMaxCount indicates a negative maximum count.
	ErrInvalidMaxCount = errors.New("ticks: max count must be greater than or equal to zero")
	// ErrInvalidRadix indicates a radix below 2.
	ErrInvalidRadix = errors.New("ticks: radix must be an integer greater than 1")
	// ErrNoConstraint indicates neither a minimum interval nor a max count was given.
	ErrNoConstraint = errors.New("ticks: must specify either a minimum tick interval or a maximum interval count")
	// ErrArithmetic wraps a decimal overflow or division failure.
	ErrArithmetic = errors.New("ticks: decimal arithmetic failed")
)

// DefaultRadix is the numeric base used when WithRadix is not given.
const DefaultRadix = 10

// Option customizes a single Generate call.
type Option func(*config)

// config is the resolved set of tick constraints.
// Defaults: minInterval 0, no max count, radix 10, expand off.
type config struct {
	minInterval    decimal.Decimal
	minIntervalErr error
	maxCount       int
	hasMaxCount    bool
	radix          int
	expand         bool
}

func newConfig(opts []Option) config {
	cfg := config{radix: DefaultRadix}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMinInterval sets the minimum distance between two ticks.
func WithMinInterval(d decimal.Decimal) Option {
	return func(c *config) {
		c.minInterval = d
		c.minIntervalErr = nil
	}
}

// WithMinIntervalFloat64 is WithMinInterval for a float spacing. NaN and
// infinite values are reported by Generate as ErrInvalidMinInterval.
func WithMinIntervalFloat64(f float64) Option {
	return func(c *config) {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			c.minIntervalErr = ErrInvalidMinInterval
			return
		}
		d, err := decimal.NewFromFloat64(f)
		if err != nil {
			c.minIntervalErr = err
			return
		}
		c.minInterval = d
		c.minIntervalErr = nil
	}
}

// WithMaxCount limits the number of intervals between ticks. A count of 0
// makes Generate return no ticks.
func WithMaxCount(n int) Option {
	return func(c *config) {
		c.maxCount = n
		c.hasMaxCount = true
	}
}

// WithRadix sets the base of the spacing magnitude, e.g. 2 for binary axes
// or 60 for sexagesimal ones.
func WithRadix(r int) Option {
	return func(c *config) {
		c.radix = r
	}
}

// WithExpand grows the interval to the nearest clean boundaries instead of
// clipping ticks to the requested bounds.
func WithExpand() Option {
	return func(c *config) {
		c.expand = true
	}
}

// candidate is one mantissa's tick layout, in scaled units while searching
// and in axis units once chosen.
type candidate struct {
	start    decimal.Decimal
	end      decimal.Decimal
	interval decimal.Decimal
	count    decimal.Decimal
}
