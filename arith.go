package decimal64

import "fmt"

// renorm rounds m to 16 digits and brings exp back into range.
//
// A 17- or 18-digit magnitude is rounded half up at the 16-digit boundary.
// An exponent above expLimit is absorbed by widening the significand; if it
// cannot be absorbed, renorm reports an overflow. An exponent below MinExp
// truncates digits off the significand, flushing to zero when none remain.
func renorm(m mag, neg bool, exp int) (Decimal64, error) {
	if m == 0 {
		return Decimal64{}, nil
	}
	if m.hasPrec(17) {
		if m.hasPrec(18) {
			m = (m + 50) / 100
			exp += 2
		} else {
			m = (m + 5) / 10
			exp++
		}
		if m > maxSig { // rounding carried into a 17th digit
			m /= 10
			exp++
		}
	}
	if exp > expLimit {
		shift := m.shiftTo(MaxDigits)
		if shift > exp-expLimit {
			shift = exp - expLimit
		}
		if shift > 0 {
			m = m.lsh(shift)
			exp -= shift
		}
		if exp > expLimit {
			return Decimal64{}, errExponentOverflow
		}
	}
	if exp < MinExp {
		m = m.scale(exp - MinExp)
		if m == 0 {
			return Decimal64{}, nil
		}
		exp = MinExp
	}
	s := int64(m)
	if neg {
		s = -s
	}
	return Decimal64{sig: s, exp: int16(exp)}, nil
}

// renormSigned is renorm over a signed significand.
func renormSigned(s int64, exp int) (Decimal64, error) {
	if s < 0 {
		return renorm(mag(-s), true, exp)
	}
	return renorm(mag(s), false, exp)
}

// Add returns the sum d + e.
func (d Decimal64) Add(e Decimal64) (Decimal64, error) {
	f, err := d.add(e)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v + %v]: %w", d, e, err)
	}
	return f, nil
}

// Sub returns the difference d - e.
func (d Decimal64) Sub(e Decimal64) (Decimal64, error) {
	f, err := d.add(e.Neg())
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v - %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal64) add(e Decimal64) (Decimal64, error) {
	switch {
	case d.sig == 0:
		return e, nil
	case e.sig == 0:
		return d, nil
	}
	// Order the operands so that d carries the larger exponent.
	if d.exp < e.exp {
		d, e = e, d
	}
	gap := int(d.exp) - int(e.exp)
	if gap > 32 {
		// e is too many orders below d to reach a 16-digit result.
		return d, nil
	}
	dm, dneg := d.split()
	em, eneg := e.split()
	dm, shift := dm.shiftCapped(gap)
	gap -= shift
	if gap > MaxDigits {
		return d, nil
	}
	em = em.scale(-gap)
	if em == 0 {
		return d, nil
	}
	x := int64(dm)
	if dneg {
		x = -x
	}
	y := int64(em)
	if eneg {
		y = -y
	}
	return renormSigned(x+y, int(d.exp)-shift)
}

// Mul returns the product d * e.
func (d Decimal64) Mul(e Decimal64) (Decimal64, error) {
	f, err := d.mul(e)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal64) mul(e Decimal64) (Decimal64, error) {
	if d.sig == 0 || e.sig == 0 {
		return Decimal64{}, nil
	}
	dm, dneg := d.split()
	em, eneg := e.split()
	neg := dneg != eneg
	exp := int(d.exp) + int(e.exp)

	// Split both significands at the 8-digit boundary so that every
	// partial product stays within 64 bits.
	const half = 8
	hd, ld := dm.quoRem(pow10[half])
	he, le := em.quoRem(pow10[half])
	hp := hd * he
	mp := hd*le + ld*he
	lp := ld * le

	var m mag
	switch {
	case hp != 0:
		shift := hp.shiftTo(17)
		if shift > 2*half {
			shift = 2 * half
		}
		m = hp.lsh(shift) + mp.scale(shift-half) + lp.scale(shift-2*half)
		exp += 2*half - shift
	case mp != 0:
		shift := mp.shiftTo(17)
		if shift > half {
			shift = half
		}
		m = mp.lsh(shift) + lp.scale(shift-half)
		exp += half - shift
	default:
		m = lp
	}
	return renorm(m, neg, exp)
}

// Quo returns the quotient d / e.
// It returns an error if e is zero.
func (d Decimal64) Quo(e Decimal64) (Decimal64, error) {
	f, err := d.quo(e)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return f, nil
}

func (d Decimal64) quo(e Decimal64) (Decimal64, error) {
	if e.sig == 0 {
		return Decimal64{}, errDivisionByZero
	}
	if d.sig == 0 {
		return Decimal64{}, nil
	}
	dm, dneg := d.split()
	em, eneg := e.split()
	neg := dneg != eneg

	mainShift := dm.shiftTo(18)
	q, r := dm.lsh(mainShift).quoRem(em)
	exp := int(d.exp) - int(e.exp) - mainShift
	// Refine the quotient chunk by chunk until the remainder is exhausted
	// or the quotient holds 18 digits.
	for r != 0 {
		shift := 18 - q.prec()
		if s := 18 - r.prec(); s < shift {
			shift = s
		}
		if shift <= 0 {
			break
		}
		var c mag
		c, r = r.lsh(shift).quoRem(em)
		q = q.lsh(shift) + c
		exp -= shift
	}
	return renorm(q, neg, exp)
}

// Pow returns d raised to the integer power n.
func (d Decimal64) Pow(n int) (Decimal64, error) {
	f, err := d.pow(n)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v^%v]: %w", d, n, err)
	}
	return f, nil
}

func (d Decimal64) pow(n int) (Decimal64, error) {
	if n < 0 {
		f, err := d.pow(-n)
		if err != nil {
			return Decimal64{}, err
		}
		return One.quo(f)
	}
	f := One
	var err error
	for n > 0 {
		if n&1 != 0 {
			if f, err = f.mul(d); err != nil {
				return Decimal64{}, err
			}
		}
		if n >>= 1; n > 0 {
			if d, err = d.mul(d); err != nil {
				return Decimal64{}, err
			}
		}
	}
	return f, nil
}

// Lsh returns d * 10^n, shifting the decimal point n digits to the right.
func (d Decimal64) Lsh(n int) (Decimal64, error) {
	m, neg := d.split()
	f, err := renorm(m, neg, int(d.exp)+n)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v << %v]: %w", d, n, err)
	}
	return f, nil
}

// Rsh returns d / 10^n, shifting the decimal point n digits to the left.
func (d Decimal64) Rsh(n int) (Decimal64, error) {
	m, neg := d.split()
	f, err := renorm(m, neg, int(d.exp)-n)
	if err != nil {
		return Decimal64{}, fmt.Errorf("computing [%v >> %v]: %w", d, n, err)
	}
	return f, nil
}

// RoundingMode determines how [Decimal64.Rounded] resolves the digits that
// fall outside the requested scale.
type RoundingMode int

const (
	// RoundHalfEven rounds to the nearest value, choosing the even
	// neighbor on ties (banker's rounding).
	RoundHalfEven RoundingMode = iota
	// RoundHalfUp rounds to the nearest value, choosing the neighbor
	// away from zero on ties.
	RoundHalfUp
	// RoundTowardZero discards the excess digits (truncation).
	RoundTowardZero
	// RoundAwayFromZero rounds away from zero whenever digits are lost.
	RoundAwayFromZero
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	case RoundTowardZero:
		return "toward-zero"
	case RoundAwayFromZero:
		return "away-from-zero"
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	}
	return "unknown"
}

// Rounded returns d rounded per mode to the given number of digits after
// the decimal point. The result is a no-op if d already has scale digits
// or fewer after the point.
//
// Rounded panics if scale is negative.
func (d Decimal64) Rounded(mode RoundingMode, scale int) Decimal64 {
	if scale < 0 {
		panic(fmt.Sprintf("%q.Rounded(%v, %v) failed: %v", d, mode, scale, errScaleRange))
	}
	shift := -(int(d.exp) + scale)
	if d.sig == 0 || shift <= 0 {
		return d
	}
	m, neg := d.split()
	var q mag
	roundUp := false
	if shift < len(pow10) {
		var rem mag
		q, rem = m.quoRem(pow10[shift])
		half := halfpow10[shift]
		switch mode {
		case RoundHalfEven:
			roundUp = rem > half || (rem == half && q.isOdd())
		case RoundHalfUp:
			roundUp = rem >= half
		case RoundAwayFromZero:
			roundUp = rem != 0
		case RoundFloor:
			roundUp = neg && rem != 0
		case RoundCeiling:
			roundUp = !neg && rem != 0
		}
	} else {
		// Not a single digit of d survives the shift, and the discarded
		// digits are always below the halfway mark.
		switch mode {
		case RoundAwayFromZero:
			roundUp = true
		case RoundFloor:
			roundUp = neg
		case RoundCeiling:
			roundUp = !neg
		}
	}
	if roundUp {
		q++
	}
	f, _ := renorm(q, neg, -scale) // cannot overflow: the exponent is at most 1
	return f
}

// Round returns d rounded to scale digits after the decimal point using
// half-to-even rounding.
//
// Round panics if scale is negative.
func (d Decimal64) Round(scale int) Decimal64 {
	return d.Rounded(RoundHalfEven, scale)
}

// Trunc returns d truncated toward zero at scale digits after the decimal
// point.
//
// Trunc panics if scale is negative.
func (d Decimal64) Trunc(scale int) Decimal64 {
	return d.Rounded(RoundTowardZero, scale)
}

// Ceil returns d rounded toward positive infinity at scale digits after
// the decimal point.
//
// Ceil panics if scale is negative.
func (d Decimal64) Ceil(scale int) Decimal64 {
	return d.Rounded(RoundCeiling, scale)
}

// Floor returns d rounded toward negative infinity at scale digits after
// the decimal point.
//
// Floor panics if scale is negative.
func (d Decimal64) Floor(scale int) Decimal64 {
	return d.Rounded(RoundFloor, scale)
}

// Decompose splits d into its integral and fractional parts.
// The integral part keeps the sign of d; the fractional part is always in
// the interval [0, 1).
func (d Decimal64) Decompose() (integral, fractional Decimal64) {
	if d.exp >= 0 {
		return d, Decimal64{}
	}
	m, neg := d.split()
	shift := -int(d.exp)
	var q, r mag
	if shift < len(pow10) {
		q, r = m.quoRem(pow10[shift])
	} else {
		q, r = 0, m
	}
	integral, _ = renorm(q, neg, 0)
	fractional, _ = renorm(r, false, int(d.exp))
	return integral, fractional
}
