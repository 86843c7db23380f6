package label

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for label formatting.
var (
	// ErrUnknownUnitSystem indicates a unit system outside Plain, SI, Grouped.
	ErrUnknownUnitSystem = errors.New("label: unknown unit system")
	// ErrBadLayout indicates an empty date layout or an unsupported directive.
	ErrBadLayout = errors.New("label: bad date layout")
)

// UnitSystem selects how numeric labels are written.
type UnitSystem int

const (
	// Plain writes the decimal as is.
	Plain UnitSystem = iota
	// SI scales by a power of 1000 and appends the metric prefix.
	SI
	// Grouped separates thousands with commas.
	Grouped
)

var systemNames = [...]string{"plain", "si", "grouped"}

// String returns the lower-case name used by ParseUnitSystem.
func (s UnitSystem) String() string {
	if s < Plain || s > Grouped {
		return fmt.Sprintf("UnitSystem(%d)", int(s))
	}

	return systemNames[s]
}

// ParseUnitSystem maps "plain", "si" or "grouped" (any case) to a UnitSystem.
func ParseUnitSystem(name string) (UnitSystem, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range systemNames {
		if s == n {
			return UnitSystem(i), nil
		}
	}

	return Plain, fmt.Errorf("%w: %q", ErrUnknownUnitSystem, name)
}
