package decimal

import (
	"math/big"
	"sync"
)

// The first powers of 10 and 5 are precomputed once and shared.
// Entries are read-only: they are only ever used as operands, never as
// receivers.
const powTabLen = 64

var (
	powTabOnce sync.Once
	pow10Tab   []*big.Int
	pow5Tab    []*big.Int
)

func powTabInit() {
	pow10Tab = make([]*big.Int, powTabLen)
	pow5Tab = make([]*big.Int, powTabLen)
	pow10Tab[0] = big.NewInt(1)
	pow5Tab[0] = big.NewInt(1)
	ten := big.NewInt(10)
	five := big.NewInt(5)
	for i := 1; i < powTabLen; i++ {
		pow10Tab[i] = new(big.Int).Mul(pow10Tab[i-1], ten)
		pow5Tab[i] = new(big.Int).Mul(pow5Tab[i-1], five)
	}
}

// pow10Int returns 10^n for n >= 0. Small powers come from the shared
// table and must not be mutated.
func pow10Int(n int64) *big.Int {
	powTabOnce.Do(powTabInit)
	if n < powTabLen {
		return pow10Tab[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}

// pow5Int returns 5^n for n >= 0. Small powers come from the shared
// table and must not be mutated.
func pow5Int(n int64) *big.Int {
	powTabOnce.Do(powTabInit)
	if n < powTabLen {
		return pow5Tab[n]
	}
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil)
}

// Pow10 returns 10^n exactly as a decimal (coefficient 1, scale -n).
func Pow10(n int64) *Decimal {
	d := &Decimal{scale: -n}
	d.coef.SetInt64(1)
	return d
}

// trim caps the fractional tail to prec digits so that guard precision
// stays bounded across repeated multiplication. Integer digits are
// never trimmed.
func (d *Decimal) trim(prec int64) {
	if d.scale > prec {
		d.rescale(prec, ModeRound, false)
	}
}

// powUint raises d to the non-negative integer power e by square and
// multiply, keeping at most prec fractional digits in intermediates.
func (d *Decimal) powUint(e *big.Int, prec int64) *Decimal {
	z := FromInt64(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		z.MulMut(z)
		z.trim(prec)
		if e.Bit(i) == 1 {
			z.MulMut(d)
			z.trim(prec)
		}
	}
	return z
}

// Pow raises d to a decimal exponent and rounds to digits fractional
// digits. The exponent splits into integer and fractional parts: the
// integer part goes through binary exponentiation, the fractional part
// through digit-weighted iterated 10th roots, and a negative exponent
// inverts the positive result. Guard digits carried through the
// intermediate steps are trimmed only by the final rounding.
//
// A zero exponent yields exactly 1 (scale 0) for any base, including
// zero. A zero base fails with ErrZeroNegativePower for a negative
// exponent; a negative base fails with
// ErrNegativeBaseFractionalExponent when the exponent has a fractional
// part.
func (d *Decimal) Pow(exp *Decimal, digits int64) (*Decimal, error) {
	if exp.coef.Sign() == 0 {
		return FromInt64(1), nil
	}

	neg := exp.Sign() < 0
	e := exp.Abs().ReduceMut()
	ei := e.Int()
	frac := e.Sub(New(ei, 0)).ReduceMut()

	if d.coef.Sign() == 0 {
		if neg {
			return nil, ErrZeroNegativePower
		}
		return &Decimal{}, nil
	}
	if frac.coef.Sign() != 0 && d.Sign() < 0 {
		return nil, ErrNegativeBaseFractionalExponent
	}

	prec := digits + d.powGuard(ei, frac, neg)

	z := d.powUint(ei, prec)
	if frac.coef.Sign() != 0 {
		pf, err := d.powFrac(frac, prec)
		if err != nil {
			return nil, err
		}
		z.MulMut(pf)
		z.trim(prec)
	}

	if neg {
		var err error
		z, err = FromInt64(1).quo(z, prec, ModeRound)
		if err != nil {
			return nil, err
		}
	}

	return z.rescale(digits, ModeRound, true), nil
}

// PowMut is Pow in place. On failure the receiver is untouched.
func (d *Decimal) PowMut(exp *Decimal, digits int64) (*Decimal, error) {
	z, err := d.Pow(exp, digits)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// powFrac computes d^frac for 0 < frac < 1 by walking frac's digit
// string: position k contributes (d^(10^-k))^digit, where d^(10^-k)
// is k successive 10th roots of d.
func (d *Decimal) powFrac(frac *Decimal, prec int64) (*Decimal, error) {
	digits := frac.coef.String()
	for int64(len(digits)) < frac.scale {
		digits = "0" + digits
	}

	r := d.Clone()
	z := FromInt64(1)
	for i := 0; i < len(digits); i++ {
		var err error
		r, err = r.Root(10, prec+2)
		if err != nil {
			return nil, err
		}
		if k := int64(digits[i] - '0'); k > 0 {
			z.MulMut(r.powUint(big.NewInt(k), prec))
			z.trim(prec)
		}
	}
	return z, nil
}

// powGuard estimates the extra fractional digits the intermediate
// steps need so that the final rounding is the only visible one. The
// inverse of a tiny positive result must also survive at guard
// precision, so a negative exponent widens the guard by the expected
// magnitude of the positive result.
func (d *Decimal) powGuard(ei *big.Int, frac *Decimal, neg bool) int64 {
	guard := int64(16)
	if frac.coef.Sign() != 0 {
		guard += 4 * frac.scale
	}
	if neg && ei.IsInt64() {
		if ord, err := d.Order(); err == nil {
			if ord < 0 {
				ord = -ord
			}
			mag := ei.Int64() * (ord + 1)
			if mag > 0 && mag < 1<<20 {
				guard += mag
			}
		}
	}
	return guard
}
