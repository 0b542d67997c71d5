package decimal

import "math/big"

// Add returns d + x. Exact: operands align to the larger scale and the
// coefficients add.
func (d *Decimal) Add(x *Decimal) *Decimal {
	return d.Clone().AddMut(x)
}

// AddMut is Add in place.
func (d *Decimal) AddMut(x *Decimal) *Decimal {
	switch {
	case d.scale == x.scale:
		d.coef.Add(&d.coef, &x.coef)
	case d.scale < x.scale:
		d.coef.Mul(&d.coef, pow10Int(x.scale-d.scale))
		d.coef.Add(&d.coef, &x.coef)
		d.scale = x.scale
	default:
		t := new(big.Int).Mul(&x.coef, pow10Int(d.scale-x.scale))
		d.coef.Add(&d.coef, t)
	}
	return d
}

// Sub returns d - x. Exact.
func (d *Decimal) Sub(x *Decimal) *Decimal {
	return d.Clone().SubMut(x)
}

// SubMut is Sub in place.
func (d *Decimal) SubMut(x *Decimal) *Decimal {
	switch {
	case d.scale == x.scale:
		d.coef.Sub(&d.coef, &x.coef)
	case d.scale < x.scale:
		d.coef.Mul(&d.coef, pow10Int(x.scale-d.scale))
		d.coef.Sub(&d.coef, &x.coef)
		d.scale = x.scale
	default:
		t := new(big.Int).Mul(&x.coef, pow10Int(d.scale-x.scale))
		d.coef.Sub(&d.coef, t)
	}
	return d
}

// Mul returns d * x. Exact: coefficients multiply and scales add.
func (d *Decimal) Mul(x *Decimal) *Decimal {
	return d.Clone().MulMut(x)
}

// MulMut is Mul in place.
func (d *Decimal) MulMut(x *Decimal) *Decimal {
	d.coef.Mul(&d.coef, &x.coef)
	d.scale += x.scale
	return d
}

// Neg returns -d.
func (d *Decimal) Neg() *Decimal {
	return d.Clone().NegMut()
}

// NegMut is Neg in place.
func (d *Decimal) NegMut() *Decimal {
	d.coef.Neg(&d.coef)
	return d
}

// Abs returns |d|.
func (d *Decimal) Abs() *Decimal {
	return d.Clone().AbsMut()
}

// AbsMut is Abs in place.
func (d *Decimal) AbsMut() *Decimal {
	d.coef.Abs(&d.coef)
	return d
}

// Shift10 moves the decimal point n places to the right (left for
// negative n) by adjusting the scale. The coefficient is untouched and
// the shift is exact.
func (d *Decimal) Shift10(n int64) *Decimal {
	return d.Clone().Shift10Mut(n)
}

// Shift10Mut is Shift10 in place.
func (d *Decimal) Shift10Mut(n int64) *Decimal {
	d.scale -= n
	return d
}

// Cmp compares values: -1 if d < x, 0 if equal, +1 if d > x. Scale
// does not matter: 1.00 equals 1.
func (d *Decimal) Cmp(x *Decimal) int {
	switch {
	case d.scale == x.scale:
		return d.coef.Cmp(&x.coef)
	case d.scale < x.scale:
		t := new(big.Int).Mul(&d.coef, pow10Int(x.scale-d.scale))
		return t.Cmp(&x.coef)
	default:
		t := new(big.Int).Mul(&x.coef, pow10Int(d.scale-x.scale))
		return d.coef.Cmp(t)
	}
}

// Eq returns true if d == x.
func (d *Decimal) Eq(x *Decimal) bool { return d.Cmp(x) == 0 }

// Neq returns true if d != x.
func (d *Decimal) Neq(x *Decimal) bool { return d.Cmp(x) != 0 }

// Lt returns true if d < x.
func (d *Decimal) Lt(x *Decimal) bool { return d.Cmp(x) < 0 }

// Gt returns true if d > x.
func (d *Decimal) Gt(x *Decimal) bool { return d.Cmp(x) > 0 }

// Le returns true if d <= x.
func (d *Decimal) Le(x *Decimal) bool { return d.Cmp(x) <= 0 }

// Ge returns true if d >= x.
func (d *Decimal) Ge(x *Decimal) bool { return d.Cmp(x) >= 0 }

// Between returns true if lo <= d <= hi. Inverted bounds fail with
// ErrInvalidRange.
func (d *Decimal) Between(lo, hi *Decimal) (bool, error) {
	if lo.Cmp(hi) > 0 {
		return false, ErrInvalidRange
	}
	return d.Ge(lo) && d.Le(hi), nil
}

// IsCloseTo returns true if |d - x| <= tolerance. A negative tolerance
// fails with ErrNegativeTolerance.
func (d *Decimal) IsCloseTo(x, tolerance *Decimal) (bool, error) {
	if tolerance.Sign() < 0 {
		return false, ErrNegativeTolerance
	}
	return d.Sub(x).AbsMut().Le(tolerance), nil
}

// Clamp bounds the value between lo and hi. A nil bound is open.
// Inverted bounds fail with ErrInvalidRange.
func (d *Decimal) Clamp(lo, hi *Decimal) (*Decimal, error) {
	switch {
	case lo != nil && hi != nil && lo.Cmp(hi) > 0:
		return nil, ErrInvalidRange
	case lo != nil && d.Lt(lo):
		return lo.Clone(), nil
	case hi != nil && d.Gt(hi):
		return hi.Clone(), nil
	}
	return d.Clone(), nil
}

// ClampMut is Clamp in place. On failure the receiver is untouched.
func (d *Decimal) ClampMut(lo, hi *Decimal) (*Decimal, error) {
	z, err := d.Clamp(lo, hi)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}
