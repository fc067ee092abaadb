package scoring

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IsBlank reports whether a user entry is empty or whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseUserValue converts what a student typed into a number. "(123)" and
// "-123" are negative; thousands separators, currency symbols and spaces are
// ignored. Anything that still does not parse is zero.
func ParseUserValue(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ',', '$', '₱', '€', '£', ' ', '\u00a0':
			return -1
		}
		return r
	}, s)
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return v.Neg()
	}
	return v
}

// CheckField reports whether user matches expected within tolerance. A
// blank entry matches only an expected zero; it never silently counts as a
// zero against a non-zero amount.
func CheckField(user string, expected, tolerance decimal.Decimal) bool {
	p := DefaultPolicy()
	p.Tolerance = tolerance
	return p.CheckField(user, expected)
}

// CheckField compares using the policy's tolerance and zero epsilon.
func (p Policy) CheckField(user string, expected decimal.Decimal) bool {
	p = p.normalized()
	if IsBlank(user) {
		return expected.Abs().LessThan(p.ZeroEpsilon)
	}
	return ParseUserValue(user).Sub(expected).Abs().LessThanOrEqual(p.Tolerance)
}

// CheckAbs compares ignoring sign, for contra amounts that students may
// enter either as a positive number or as a deduction.
func (p Policy) CheckAbs(user string, expected decimal.Decimal) bool {
	if IsBlank(user) {
		return p.CheckField(user, expected)
	}
	return p.CheckField(ParseUserValue(user).Abs().String(), expected.Abs())
}
