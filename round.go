package decimal

import "math/big"

// Rounding selects what happens to digits discarded by a rescale.
type Rounding uint8

const (
	// ModeRound rounds half away from zero: 2.5 becomes 3, -2.5
	// becomes -3.
	ModeRound Rounding = iota

	// ModeTrunc drops the discarded digits.
	ModeTrunc

	// ModeFloor rounds toward negative infinity.
	ModeFloor

	// ModeCeil rounds toward positive infinity.
	ModeCeil
)

var intOne = big.NewInt(1)

// roundQuotient sets z to x/y rounded per mode and returns z. y must
// be nonzero. x and y are left untouched; z may alias either.
func roundQuotient(z, x, y *big.Int, mode Rounding) *big.Int {
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Sign() != 0 {
		neg := (x.Sign() < 0) != (y.Sign() < 0)
		switch mode {
		case ModeTrunc:
		case ModeFloor:
			if neg {
				q.Sub(q, intOne)
			}
		case ModeCeil:
			if !neg {
				q.Add(q, intOne)
			}
		default:
			// Half away from zero: compare 2|r| against |y|,
			// a tie rounds away.
			r.Abs(r).Lsh(r, 1)
			if r.CmpAbs(y) >= 0 {
				if neg {
					q.Sub(q, intOne)
				} else {
					q.Add(q, intOne)
				}
			}
		}
	}
	return z.Set(q)
}

// rescale moves d to the target scale. Widening multiplies the
// coefficient and is exact. Narrowing divides with the given mode.
// When the scales are equal nothing happens unless force is set, in
// which case the (numerically idle) rounding pass still runs; Round,
// Floor, Ceil, Trunc and Fixed force so that the result always lands
// on the requested scale.
func (d *Decimal) rescale(target int64, mode Rounding, force bool) *Decimal {
	switch {
	case target > d.scale:
		d.coef.Mul(&d.coef, pow10Int(target-d.scale))
		d.scale = target
	case target < d.scale || force:
		roundQuotient(&d.coef, &d.coef, pow10Int(d.scale-target), mode)
		d.scale = target
	}
	return d
}

// Rescale returns the value at the given scale: exact when widening,
// rounded per mode when narrowing.
func (d *Decimal) Rescale(scale int64, mode Rounding) *Decimal {
	return d.Clone().rescale(scale, mode, false)
}

// RescaleMut is Rescale in place.
func (d *Decimal) RescaleMut(scale int64, mode Rounding) *Decimal {
	return d.rescale(scale, mode, false)
}

// Round rounds half away from zero to the given number of fractional
// digits. Negative digits round to tens, hundreds, and so on.
func (d *Decimal) Round(digits int64) *Decimal {
	return d.Clone().rescale(digits, ModeRound, true)
}

// RoundMut is Round in place.
func (d *Decimal) RoundMut(digits int64) *Decimal {
	return d.rescale(digits, ModeRound, true)
}

// Floor rounds toward negative infinity to the given number of
// fractional digits.
func (d *Decimal) Floor(digits int64) *Decimal {
	return d.Clone().rescale(digits, ModeFloor, true)
}

// FloorMut is Floor in place.
func (d *Decimal) FloorMut(digits int64) *Decimal {
	return d.rescale(digits, ModeFloor, true)
}

// Ceil rounds toward positive infinity to the given number of
// fractional digits.
func (d *Decimal) Ceil(digits int64) *Decimal {
	return d.Clone().rescale(digits, ModeCeil, true)
}

// CeilMut is Ceil in place.
func (d *Decimal) CeilMut(digits int64) *Decimal {
	return d.rescale(digits, ModeCeil, true)
}

// Trunc drops digits past the given number of fractional digits.
func (d *Decimal) Trunc(digits int64) *Decimal {
	return d.Clone().rescale(digits, ModeTrunc, true)
}

// TruncMut is Trunc in place.
func (d *Decimal) TruncMut(digits int64) *Decimal {
	return d.rescale(digits, ModeTrunc, true)
}

// Reduce strips trailing zeros from the coefficient, decrementing the
// scale for each (the scale may go negative). Zero collapses to scale
// 0.
func (d *Decimal) Reduce() *Decimal {
	return d.Clone().ReduceMut()
}

// ReduceMut is Reduce in place.
func (d *Decimal) ReduceMut() *Decimal {
	if d.coef.Sign() == 0 {
		d.scale = 0
		return d
	}

	ten := pow10Int(1)
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(&d.coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		d.coef.Set(q)
		d.scale--
	}
	return d
}
