package decimal

import (
	"math/big"
	"strconv"
	"strings"
)

// String renders the value without an exponent. A positive scale
// produces exactly that many fractional digits; a scale of zero or
// less appends |scale| zeros. A zero coefficient renders as "0" when
// scale <= 0 and as "0." followed by scale zeros otherwise.
func (d *Decimal) String() string {
	sign := ""
	digits := d.coef.String()
	if d.coef.Sign() < 0 {
		sign = "-"
		digits = digits[1:]
	}

	if d.scale <= 0 {
		if d.coef.Sign() == 0 {
			return "0"
		}
		return sign + digits + strings.Repeat("0", int(-d.scale))
	}

	n := int(d.scale)
	if len(digits) <= n {
		digits = strings.Repeat("0", n-len(digits)+1) + digits
	}
	dot := len(digits) - n

	return sign + digits[:dot] + "." + digits[dot:]
}

// Fixed rounds half away from zero to exactly n fractional digits and
// renders. A negative n fails with ErrInvalidNumber.
func (d *Decimal) Fixed(n int64) (string, error) {
	if n < 0 {
		return "", ErrInvalidNumber
	}
	return d.Clone().rescale(n, ModeRound, true).String(), nil
}

// Float64 converts to the nearest native float. Precision may be lost;
// values beyond the float range collapse to ±Inf.
func (d *Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Int truncates toward zero to an arbitrary precision integer.
func (d *Decimal) Int() *big.Int {
	z := new(big.Int)
	if d.scale <= 0 {
		return z.Mul(&d.coef, pow10Int(-d.scale))
	}
	return z.Quo(&d.coef, pow10Int(d.scale))
}
