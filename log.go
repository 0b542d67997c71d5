package decimal

import (
	"math/big"
	"strconv"
)

// Order returns the exponent e for which the value is d = c * 10^e
// with exactly one significant digit before the decimal point, that
// is floor(log10(|d|)). Zero fails with ErrOrderUndefinedForZero.
func (d *Decimal) Order() (int64, error) {
	if d.coef.Sign() == 0 {
		return 0, ErrOrderUndefinedForZero
	}
	n := int64(len(new(big.Int).Abs(&d.coef).String()))
	return n - 1 - d.scale, nil
}

// Log returns the base logarithm of d rounded to digits fractional
// digits. The argument and base must be positive and the base must not
// be 1 (ErrLogDomain). A base strictly between 0 and 1 computes
// against the reciprocal base and negates the result.
//
// The integer part comes from a table of successive squares of the
// base consumed greedily from the top; the fractional part from
// squaring the remainder once per binary digit, the bit string then
// rescaled to decimal through a 5^bits multiplier (2*5 = 10). Guard
// precision is solved for by logGuard.
func (d *Decimal) Log(base *Decimal, digits int64) (*Decimal, error) {
	one := FromInt64(1)
	if d.Sign() <= 0 || base.Sign() <= 0 || base.Cmp(one) == 0 {
		return nil, ErrLogDomain
	}

	guard, bits := logGuard(digits, d.scale, base.scale)
	prec := digits + guard

	b := base.Clone()
	negResult := false
	if b.Cmp(one) < 0 {
		var err error
		b, err = one.quo(b, prec, ModeRound)
		if err != nil {
			return nil, err
		}
		negResult = true
		if b.Cmp(one) == 0 {
			// The base is closer to 1 than the working
			// precision can tell apart.
			return nil, ErrLogDomain
		}
	}

	n, r, err := logIntPart(d, b, prec)
	if err != nil {
		return nil, err
	}

	// Each squaring of the remainder doubles the fractional
	// logarithm; dividing the base back out is a set bit.
	acc := new(big.Int)
	for i := int64(0); i < bits; i++ {
		r.MulMut(r)
		r.trim(prec)
		acc.Lsh(acc, 1)
		if r.Cmp(b) >= 0 {
			r, err = r.quo(b, prec, ModeRound)
			if err != nil {
				return nil, err
			}
			acc.Add(acc, intOne)
		}
	}

	// acc/2^bits == acc*5^bits/10^bits.
	frac := &Decimal{scale: bits}
	frac.coef.Mul(acc, pow5Int(bits))

	z := FromInt64(n).AddMut(frac)
	if negResult {
		z.NegMut()
	}
	return z.rescale(digits, ModeRound, true), nil
}

// LogMut is Log in place. On failure the receiver is untouched.
func (d *Decimal) LogMut(base *Decimal, digits int64) (*Decimal, error) {
	z, err := d.Log(base, digits)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// logIntPart factors the positive value v as b^n * r with r in [1, b).
// b must be greater than 1. Values below 1 go through the reciprocal:
// when the reciprocal leaves remainder 1 the exponent simply negates,
// otherwise one more power of b is borrowed and the remainder corrects
// to b/r.
func logIntPart(v, b *Decimal, prec int64) (int64, *Decimal, error) {
	one := FromInt64(1)
	if v.Cmp(one) >= 0 {
		return logIntGE1(v, b, prec)
	}

	w, err := one.quo(v, prec, ModeRound)
	if err != nil {
		return 0, nil, err
	}
	m, r, err := logIntGE1(w, b, prec)
	if err != nil {
		return 0, nil, err
	}
	if r.Cmp(one) == 0 {
		return -m, r, nil
	}
	r, err = b.quo(r, prec, ModeRound)
	if err != nil {
		return 0, nil, err
	}
	return -(m + 1), r, nil
}

// logIntGE1 factors v >= 1 as b^n * r with r in [1, b), by building
// brackets b, b^2, b^4, ... up to v and consuming them greedily from
// the largest down. Greedy works because the exponents are distinct
// powers of two.
func logIntGE1(v, b *Decimal, prec int64) (int64, *Decimal, error) {
	type bracket struct {
		pow *Decimal
		exp int64
	}

	var tab []bracket
	cur := b.Clone()
	for e := int64(1); cur.Cmp(v) <= 0; e <<= 1 {
		tab = append(tab, bracket{cur.Clone(), e})
		cur.MulMut(cur)
		cur.trim(prec)
	}

	n := int64(0)
	r := v.Clone()
	r.trim(prec)
	for i := len(tab) - 1; i >= 0; i-- {
		if tab[i].pow.Cmp(r) <= 0 {
			var err error
			r, err = r.quo(tab[i].pow, prec, ModeRound)
			if err != nil {
				return 0, nil, err
			}
			n += tab[i].exp
		}
	}
	return n, r, nil
}

// logGuard solves for a guard allowance consistent with the amount of
// work it implies: more guard digits mean more fractional bits, more
// bits mean more squarings, and every squaring or bracket division can
// shed a unit in the last place. The loop is bounded and the guard is
// monotonically non-decreasing; it settles in two or three passes
// because the need only grows with the logarithm of the work.
func logGuard(digits, vScale, bScale int64) (guard, bits int64) {
	if vScale < 0 {
		vScale = -vScale
	}
	if bScale < 0 {
		bScale = -bScale
	}

	guard = 4
	for i := 0; i < 8; i++ {
		// log2(10) =~ 10/3 bits per requested decimal digit.
		bits = (digits+guard)*10/3 + 8
		ops := bits + vScale + bScale + 64
		need := int64(len(strconv.FormatInt(ops, 10))) + 4
		if need <= guard {
			break
		}
		guard = need
	}
	return guard, bits
}
