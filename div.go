package decimal

import "math/big"

// DefaultDigits is the number of fractional digits Div and Inverse
// produce when none is requested.
const DefaultDigits = 18

// quo divides d by x producing exactly digits fractional digits,
// rounding per mode. The dividend is shifted so that one integer
// division of the coefficients lands on the target scale. A zero
// dividend short-circuits with its scale preserved.
func (d *Decimal) quo(x *Decimal, digits int64, mode Rounding) (*Decimal, error) {
	if x.coef.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if d.coef.Sign() == 0 {
		return d.Clone(), nil
	}

	num := &d.coef
	den := &x.coef
	shift := digits - d.scale + x.scale
	if shift > 0 {
		num = new(big.Int).Mul(num, pow10Int(shift))
	} else if shift < 0 {
		den = new(big.Int).Mul(den, pow10Int(-shift))
	}

	z := &Decimal{scale: digits}
	roundQuotient(&z.coef, num, den, mode)
	return z, nil
}

// Div returns d / x to DefaultDigits fractional digits, rounded half
// away from zero, with trailing zeros stripped. A zero divisor fails
// with ErrDivisionByZero; a zero dividend returns zero with its scale
// preserved.
func (d *Decimal) Div(x *Decimal) (*Decimal, error) {
	if x.coef.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if d.coef.Sign() == 0 {
		return d.Clone(), nil
	}
	z, err := d.quo(x, DefaultDigits, ModeRound)
	if err != nil {
		return nil, err
	}
	return z.ReduceMut(), nil
}

// DivMut is Div in place. On failure the receiver is untouched.
func (d *Decimal) DivMut(x *Decimal) (*Decimal, error) {
	z, err := d.Div(x)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// DivRound returns d / x with exactly digits fractional digits rounded
// per mode. Trailing zeros are kept.
func (d *Decimal) DivRound(x *Decimal, digits int64, mode Rounding) (*Decimal, error) {
	return d.quo(x, digits, mode)
}

// DivRoundMut is DivRound in place. On failure the receiver is
// untouched.
func (d *Decimal) DivRoundMut(x *Decimal, digits int64, mode Rounding) (*Decimal, error) {
	z, err := d.quo(x, digits, mode)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// Mod returns the remainder of truncating division, so the sign
// follows the dividend. Operands align to the larger scale first. A
// zero divisor fails with ErrDivisionByZero.
func (d *Decimal) Mod(x *Decimal) (*Decimal, error) {
	if x.coef.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	a := &d.coef
	b := &x.coef
	scale := d.scale
	switch {
	case d.scale < x.scale:
		a = new(big.Int).Mul(a, pow10Int(x.scale-d.scale))
		scale = x.scale
	case d.scale > x.scale:
		b = new(big.Int).Mul(b, pow10Int(d.scale-x.scale))
	}

	z := &Decimal{scale: scale}
	z.coef.Rem(a, b)
	return z, nil
}

// ModMut is Mod in place. On failure the receiver is untouched.
func (d *Decimal) ModMut(x *Decimal) (*Decimal, error) {
	z, err := d.Mod(x)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// ModPositive is Mod with the result lifted into [0, x) by adding the
// divisor once when negative. The divisor must be positive: zero fails
// with ErrDivisionByZero, negative with ErrInvalidRange.
func (d *Decimal) ModPositive(x *Decimal) (*Decimal, error) {
	if x.coef.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	if x.coef.Sign() < 0 {
		return nil, ErrInvalidRange
	}

	z, err := d.Mod(x)
	if err != nil {
		return nil, err
	}
	if z.Sign() < 0 {
		z.AddMut(x)
	}
	return z, nil
}

// ModPositiveMut is ModPositive in place. On failure the receiver is
// untouched.
func (d *Decimal) ModPositiveMut(x *Decimal) (*Decimal, error) {
	z, err := d.ModPositive(x)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// Inverse returns 1 / d with exactly digits fractional digits, rounded
// half away from zero. Zero fails with ErrDivisionByZero.
func (d *Decimal) Inverse(digits int64) (*Decimal, error) {
	return FromInt64(1).quo(d, digits, ModeRound)
}

// InverseMut is Inverse in place. On failure the receiver is
// untouched.
func (d *Decimal) InverseMut(digits int64) (*Decimal, error) {
	z, err := d.Inverse(digits)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}
