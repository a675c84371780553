package domain

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (paise for INR).
type Money int64

// MinorPerMajor is the number of minor units in one major unit.
const MinorPerMajor = 100

// MaxMajor is the largest major amount that fits in Money.
const MaxMajor = math.MaxInt64 / MinorPerMajor

// FromMajor converts an amount already known to be within MaxMajor.
// Untrusted input goes through ParseMajor.
func FromMajor(major int64) Money {
	return Money(major * MinorPerMajor)
}

// ParseMajor converts major units, rejecting amounts that would overflow.
func ParseMajor(major int64) (Money, error) {
	if major > MaxMajor || major < -MaxMajor {
		return 0, fmt.Errorf("amount %d is out of range", major)
	}
	return FromMajor(major), nil
}

func (m Money) Major() int64 {
	return int64(m) / MinorPerMajor
}
