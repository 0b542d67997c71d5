package decimal

import (
	"math/big"
)

// Decimal is an exact base 10 number stored as an arbitrary precision
// coefficient and a scale:
//
//  number = coefficient * 10 ^ -scale
//
// The zero value is ready to use and represents 0 with scale 0. A
// Decimal owns its coefficient exclusively; it never aliases a big.Int
// passed in by a caller.
type Decimal struct {
	coef  big.Int
	scale int64
}

// New returns a decimal with the given coefficient and scale. The
// coefficient is copied; nil means zero.
func New(coef *big.Int, scale int64) *Decimal {
	d := &Decimal{scale: scale}
	if coef != nil {
		d.coef.Set(coef)
	}
	return d
}

// FromInt64 returns the decimal for i with scale 0.
func FromInt64(i int64) *Decimal {
	d := &Decimal{}
	d.coef.SetInt64(i)
	return d
}

// Parts is the deconstructed form of a decimal. A value rebuilt from
// its Parts is identical to the original, trailing zeros included.
type Parts struct {
	Coef  *big.Int
	Scale int64
}

// FromParts reconstructs a decimal from a previously deconstructed
// pair. A nil coefficient fails with ErrInvalidNumber.
func FromParts(p Parts) (*Decimal, error) {
	if p.Coef == nil {
		return nil, ErrInvalidNumber
	}
	return New(p.Coef, p.Scale), nil
}

// Parts deconstructs the decimal. The returned coefficient is a copy.
func (d *Decimal) Parts() Parts {
	return Parts{
		Coef:  new(big.Int).Set(&d.coef),
		Scale: d.scale,
	}
}

// Coefficient returns a copy of the coefficient.
func (d *Decimal) Coefficient() *big.Int {
	return new(big.Int).Set(&d.coef)
}

// Scale returns the count of implied fractional digits. It may be
// negative.
func (d *Decimal) Scale() int64 {
	return d.scale
}

// Sign returns -1, 0, or +1 depending on the sign of the value.
func (d *Decimal) Sign() int {
	return d.coef.Sign()
}

// IsZero returns true if the value is numerically zero, whatever its
// scale.
func (d *Decimal) IsZero() bool {
	return d.coef.Sign() == 0
}

// Clone returns an independent copy.
func (d *Decimal) Clone() *Decimal {
	return New(&d.coef, d.scale)
}

// set overwrites d with x.
func (d *Decimal) set(x *Decimal) *Decimal {
	d.coef.Set(&x.coef)
	d.scale = x.scale
	return d
}

// From converts any decimal-like value:
//
//  nil (passed through as nil, nil)
//  *Decimal, Decimal (cloned)
//  *big.Int, big.Int (scale 0)
//  int, int32, int64
//  float64 (exact shortest decimal text; non-finite fails)
//  string (plain or scientific notation)
//  Parts
//
// Anything else fails with ErrInvalidNumber.
func From(v interface{}) (*Decimal, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case *Decimal:
		if x == nil {
			return nil, nil
		}
		return x.Clone(), nil
	case Decimal:
		return (&x).Clone(), nil
	case *big.Int:
		return New(x, 0), nil
	case big.Int:
		return New(&x, 0), nil
	case int:
		return FromInt64(int64(x)), nil
	case int32:
		return FromInt64(int64(x)), nil
	case int64:
		return FromInt64(x), nil
	case float64:
		return FromFloat64(x)
	case string:
		return Parse(x)
	case Parts:
		return FromParts(x)
	}

	return nil, ErrInvalidNumber
}

// MustFrom is From that panics on failure.
func MustFrom(v interface{}) *Decimal {
	d, err := From(v)
	if err != nil {
		panic(err)
	}
	return d
}

// MustParse is Parse that panics on failure.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsDecimal returns true if v is a Decimal.
func IsDecimal(v interface{}) bool {
	switch v.(type) {
	case *Decimal, Decimal:
		return true
	}
	return false
}

// IsDecimalLike returns true if v has a shape From accepts. The check
// is on shape only: a non-finite float or malformed string is
// decimal-like and still fails conversion.
func IsDecimalLike(v interface{}) bool {
	switch v.(type) {
	case *Decimal, Decimal, *big.Int, big.Int, int, int32, int64, float64, string, Parts:
		return true
	}
	return false
}

// Min returns a copy of the smallest of vs. Nil entries are ignored;
// if none remain the result is nil.
func Min(vs ...*Decimal) *Decimal {
	min, _ := MinMax(vs...)
	return min
}

// Max returns a copy of the largest of vs. Nil entries are ignored; if
// none remain the result is nil.
func Max(vs ...*Decimal) *Decimal {
	_, max := MinMax(vs...)
	return max
}

// MinMax returns copies of the smallest and largest of vs. Nil entries
// are ignored; if none remain both results are nil.
func MinMax(vs ...*Decimal) (min, max *Decimal) {
	for _, v := range vs {
		if v == nil {
			continue
		}
		if min == nil || v.Cmp(min) < 0 {
			min = v
		}
		if max == nil || v.Cmp(max) > 0 {
			max = v
		}
	}
	if min != nil {
		min = min.Clone()
		max = max.Clone()
	}
	return min, max
}
