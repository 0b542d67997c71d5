package decimal

// alignBy moves d to a whole multiple of |step|: divide by |step| at
// scale 0 with the given mode, then multiply back.
func (d *Decimal) alignBy(step *Decimal, mode Rounding) (*Decimal, error) {
	if step.coef.Sign() == 0 {
		return nil, ErrInvalidStep
	}

	s := step.Abs()
	q, err := d.quo(s, 0, mode)
	if err != nil {
		return nil, err
	}
	return q.MulMut(s), nil
}

// RoundBy aligns the value to the nearest multiple of step, ties away
// from zero. A zero step fails with ErrInvalidStep.
func (d *Decimal) RoundBy(step *Decimal) (*Decimal, error) {
	return d.alignBy(step, ModeRound)
}

// RoundByMut is RoundBy in place. On failure the receiver is
// untouched.
func (d *Decimal) RoundByMut(step *Decimal) (*Decimal, error) {
	z, err := d.alignBy(step, ModeRound)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// FloorBy aligns the value to the next multiple of step toward
// negative infinity.
func (d *Decimal) FloorBy(step *Decimal) (*Decimal, error) {
	return d.alignBy(step, ModeFloor)
}

// FloorByMut is FloorBy in place. On failure the receiver is
// untouched.
func (d *Decimal) FloorByMut(step *Decimal) (*Decimal, error) {
	z, err := d.alignBy(step, ModeFloor)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// CeilBy aligns the value to the next multiple of step toward positive
// infinity.
func (d *Decimal) CeilBy(step *Decimal) (*Decimal, error) {
	return d.alignBy(step, ModeCeil)
}

// CeilByMut is CeilBy in place. On failure the receiver is untouched.
func (d *Decimal) CeilByMut(step *Decimal) (*Decimal, error) {
	z, err := d.alignBy(step, ModeCeil)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// TruncBy aligns the value to the next multiple of step toward zero.
func (d *Decimal) TruncBy(step *Decimal) (*Decimal, error) {
	return d.alignBy(step, ModeTrunc)
}

// TruncByMut is TruncBy in place. On failure the receiver is
// untouched.
func (d *Decimal) TruncByMut(step *Decimal) (*Decimal, error) {
	z, err := d.alignBy(step, ModeTrunc)
	if err != nil {
		return nil, err
	}
	return d.set(z), nil
}

// Split separates the value into a part rounded per mode to the given
// fractional digits and the exact remainder:
//
//  aligned + remainder == d
//
// for every mode.
func (d *Decimal) Split(digits int64, mode Rounding) (aligned, remainder *Decimal) {
	aligned = d.Clone().rescale(digits, mode, true)
	remainder = d.Sub(aligned)
	return aligned, remainder
}

// SplitBy separates the value into a part aligned per mode to a
// multiple of step and the exact remainder, with
// aligned + remainder == d. A zero step fails with ErrInvalidStep.
func (d *Decimal) SplitBy(step *Decimal, mode Rounding) (aligned, remainder *Decimal, err error) {
	aligned, err = d.alignBy(step, mode)
	if err != nil {
		return nil, nil, err
	}
	return aligned, d.Sub(aligned), nil
}
