package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"portfolio/internal/domain"
)

// ParsePrice reads a display price such as "₹8,000" or "₹65,000+" in major
// units. All non-digit characters are dropped before parsing.
func ParsePrice(s string) (domain.Money, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	if digits == "" {
		return 0, fmt.Errorf("price %q has no digits", s)
	}

	major, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", s, err)
	}

	amount, err := domain.ParseMajor(major)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return amount, nil
}
