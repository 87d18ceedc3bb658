package decimal64

// Equal reports whether d and e represent the same numeric value,
// regardless of their exponents.
func (d Decimal64) Equal(e Decimal64) bool {
	if d == e {
		return true
	}
	if d.sig == 0 || e.sig == 0 {
		return d.sig == 0 && e.sig == 0
	}
	if (d.sig < 0) != (e.sig < 0) {
		return false
	}
	// Order the operands so that d carries the larger exponent.
	if d.exp < e.exp {
		d, e = e, d
	}
	gap := int(d.exp) - int(e.exp)
	if gap > 17 {
		// More than 17 orders apart, the values cannot coincide.
		return false
	}
	dm, _ := d.split()
	em, _ := e.split()
	dm, shift := dm.shiftCapped(gap)
	return shift == gap && dm == em
}

// Cmp compares d and e and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal64) Cmp(e Decimal64) int {
	// Fast path: different signs.
	ds, es := d.Sign(), e.Sign()
	switch {
	case ds < es:
		return -1
	case ds > es:
		return 1
	case ds == 0:
		return 0
	}
	// Normalize both magnitudes to 18 digits, minimizing the exponents,
	// then order by exponent first and significand second.
	dm, _ := d.split()
	em, _ := e.split()
	dShift := dm.shiftTo(18)
	eShift := em.shiftTo(18)
	r := 0
	switch dExp, eExp := int(d.exp)-dShift, int(e.exp)-eShift; {
	case dExp < eExp:
		r = -1
	case dExp > eExp:
		r = 1
	default:
		switch dm, em := dm.lsh(dShift), em.lsh(eShift); {
		case dm < em:
			r = -1
		case dm > em:
			r = 1
		}
	}
	if ds < 0 {
		r = -r
	}
	return r
}

// Max returns the larger of d and e.
func (d Decimal64) Max(e Decimal64) Decimal64 {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e.
func (d Decimal64) Min(e Decimal64) Decimal64 {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
