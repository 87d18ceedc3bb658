package decimal64

// mag is the unsigned magnitude of a significand.
// Intermediate results may hold up to 18 decimal digits.
type mag uint64

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]mag{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// halfpow10 is a cache of halved powers of 10, where halfpow10[x] = 10^x / 2.
var halfpow10 = [...]mag{
	0,
	5,
	50,
	500,
	5_000,
	50_000,
	500_000,
	5_000_000,
	50_000_000,
	500_000_000,
	5_000_000_000,
	50_000_000_000,
	500_000_000_000,
	5_000_000_000_000,
	50_000_000_000_000,
	500_000_000_000_000,
	5_000_000_000_000_000,
	50_000_000_000_000_000,
	500_000_000_000_000_000,
	5_000_000_000_000_000_000,
}

// lsh (Left Shift) calculates x * 10^shift.
// The caller guarantees the result stays within 19 digits.
func (x mag) lsh(shift int) mag {
	if shift <= 0 {
		return x
	}
	return x * pow10[shift]
}

// scale calculates x * 10^shift for a non-negative shift and ⌊x / 10^-shift⌋
// for a negative one. Shifts at or below -20 flush to zero.
func (x mag) scale(shift int) mag {
	switch {
	case shift >= 0:
		return x * pow10[shift]
	case shift <= -len(pow10):
		return 0
	}
	return x / pow10[-shift]
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// The caller guarantees y is not zero.
func (x mag) quoRem(y mag) (q, r mag) {
	q = x / y
	r = x - q*y
	return q, r
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x mag) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in x.
// ntz assumes that 0 has no trailing zeros.
func (x mag) ntz() int {
	left, right := 1, x.prec()
	for left < right {
		mid := (left + right) / 2
		if x%pow10[mid] == 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left - 1
}

// hasPrec returns true if x has given number of digits or more.
// hasPrec assumes that 0 has no digits.
//
// x.hasPrec(p) is significantly faster than x.prec() >= p.
func (x mag) hasPrec(prec int) bool {
	switch {
	case prec < 1:
		return true
	case prec > len(pow10):
		return false
	}
	return x >= pow10[prec-1]
}

func (x mag) isOdd() bool {
	return x&1 != 0
}

// shiftTo returns the left shift that widens x to exactly target decimal
// digits. The result is negative if x already has more than target digits.
func (x mag) shiftTo(target int) int {
	return target - x.prec()
}

// shiftCapped widens x toward 17 digits, stopping at limit, and reports
// the shift actually applied.
func (x mag) shiftCapped(limit int) (mag, int) {
	shift := x.shiftTo(17)
	if shift > limit {
		shift = limit
	}
	if shift <= 0 {
		return x, 0
	}
	return x * pow10[shift], shift
}
