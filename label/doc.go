// Package label turns tick values into axis label text.
//
// Numbers are rendered in one of three unit systems:
//
//   - Plain:   the exact decimal with trailing zeros trimmed ("2.5", "-10").
//   - SI:      a metric prefix picked by go-humanize, mantissa kept exact
//     ("1.5k", "250m", "2.5M").
//   - Grouped: thousands separators on the integer part ("1,234,567.5").
//
// Dates are rendered with strftime directives ("%b %Y" gives "Jan 2021").
// Layouts are checked before formatting; an empty layout or an unsupported
// directive fails with ErrBadLayout.
package label
