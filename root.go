package decimal

import (
	"math"
	"math/big"
	"strconv"
)

// maxRootIter bounds the Newton-Raphson refinement. Convergence is
// quadratic from the native float seed, so the bound only matters for
// magnitudes far outside the float range.
const maxRootIter = 128

// Root extracts the degree-th root rounded to digits fractional
// digits. Degree must be positive (ErrInvalidRootDegree); degree 1 is
// an identity rescale. An even degree of a negative value fails with
// ErrEvenRootOfNegative; an odd degree roots the magnitude and
// re-negates.
//
// The iteration is Newton-Raphson,
//
//  x <- ((degree-1)*x + m/x^(degree-1)) / degree
//
// evaluated at a precision padded beyond the target, seeded from the
// native float root when that is finite and positive and from an order
// of magnitude estimate otherwise.
func (d *Decimal) Root(degree, digits int64) (*Decimal, error) {
	if degree <= 0 {
		return nil, ErrInvalidRootDegree
	}
	if degree == 1 {
		return d.Clone().rescale(digits, ModeRound, true), nil
	}
	if d.coef.Sign() == 0 {
		return (&Decimal{}).rescale(digits, ModeRound, true), nil
	}

	neg := d.Sign() < 0
	if neg && degree%2 == 0 {
		return nil, ErrEvenRootOfNegative
	}

	m := d.Abs()
	prec := digits + rootGuard(degree)
	tol := Pow10(-(digits + 2))

	x := rootSeed(m, degree)
	degDec := FromInt64(degree)
	degM1 := big.NewInt(degree - 1)
	degM1Dec := FromInt64(degree - 1)

	for i := 0; i < maxRootIter; i++ {
		t, err := m.quo(x.powUint(degM1, prec), prec, ModeRound)
		if err != nil {
			return nil, err
		}
		next, err := x.Mul(degM1Dec).AddMut(t).quo(degDec, prec, ModeRound)
		if err != nil {
			return nil, err
		}
		delta := next.Sub(x).AbsMut()
		x = next
		if delta.Cmp(tol) <= 0 {
			break
		}
	}

	x.rescale(digits, ModeRound, true)
	if neg {
		x.NegMut()
	}
	return x, nil
}

// RootMut is Root in place. On failure the receiver is untouched.
func (d *Decimal) RootMut(degree, digits int64) (*Decimal, error) {
	z, err := d.Root(degree, digits)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// Sqrt is Root(2, digits).
func (d *Decimal) Sqrt(digits int64) (*Decimal, error) {
	return d.Root(2, digits)
}

// SqrtMut is Sqrt in place. On failure the receiver is untouched.
func (d *Decimal) SqrtMut(digits int64) (*Decimal, error) {
	z, err := d.Sqrt(digits)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// rootSeed picks the Newton starting point for the degree-th root of
// the positive magnitude m: the native float root when it is usable,
// otherwise 10^(order/degree).
func rootSeed(m *Decimal, degree int64) *Decimal {
	g := math.Pow(m.Float64(), 1/float64(degree))
	if !math.IsNaN(g) && !math.IsInf(g, 0) && g > 0 {
		if s, err := FromFloat64(g); err == nil {
			return s
		}
	}

	ord, _ := m.Order()
	return Pow10(ord / degree)
}

// rootGuard pads the working precision; wider degrees divide their
// update steps by larger numbers and shed more digits per iteration.
func rootGuard(degree int64) int64 {
	return 8 + 2*int64(len(strconv.FormatInt(degree, 10)))
}
