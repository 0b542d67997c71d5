package decimal

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a decimal string to a Decimal. The accepted form is
// an optional leading + or -, an integer part, an optional . followed
// by a fractional part, and an optional e or E exponent suffix.
// Surrounding whitespace is trimmed and leading zeros are dropped. An
// empty string, a bare sign, a dot without fractional digits, or an
// exponent without a mantissa fails with ErrInvalidNumber.
//
// The scale of the result is the number of fractional digits minus the
// exponent, so "1.50" keeps scale 2 and "1.5e3" has scale -2.
func Parse(s string) (*Decimal, error) {
	s = strings.TrimSpace(s)

	mant := s
	var exp int64
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.ParseInt(s[i+1:], 10, 64)
		if err != nil {
			return nil, ErrInvalidNumber
		}
		mant = s[:i]
		exp = e
	}

	if mant == "" {
		return nil, ErrInvalidNumber
	}

	sign := ""
	switch mant[0] {
	case '+':
		mant = mant[1:]
	case '-':
		sign = "-"
		mant = mant[1:]
	}

	ip := mant
	fp := ""
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		ip = mant[:i]
		fp = mant[i+1:]
		if fp == "" {
			return nil, ErrInvalidNumber
		}
	}

	if len(ip)+len(fp) == 0 {
		return nil, ErrInvalidNumber
	}
	if !digitsOnly(ip) || !digitsOnly(fp) {
		return nil, ErrInvalidNumber
	}

	d := &Decimal{scale: int64(len(fp)) - exp}
	if _, ok := d.coef.SetString(sign+ip+fp, 10); !ok {
		return nil, ErrInvalidNumber
	}

	return d, nil
}

// digitsOnly reports whether s is entirely ASCII digits. big.Int's
// SetString accepts a leading sign of its own, so the parts are
// checked before the signed coefficient string is assembled.
func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FromFloat64 converts a native float through its shortest round
// tripping decimal text, so FromFloat64(x).Float64() == x for every
// finite x. NaN and infinities fail with ErrInvalidNumber.
func FromFloat64(f float64) (*Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrInvalidNumber
	}
	return Parse(strconv.FormatFloat(f, 'g', -1, 64))
}
