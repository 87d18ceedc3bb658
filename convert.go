package decimal64

import (
	"fmt"
	"math"
	"strconv"
)

// NewFromInt64 converts an int64 to a decimal, rounding half up when the
// input needs more than 16 digits.
func NewFromInt64(i int64) Decimal64 {
	neg := i < 0
	m := mag(i)
	if neg {
		m = -m
	}
	exp := 0
	if m.hasPrec(19) {
		m = (m + 500) / 1000
		exp = 3
	}
	d, _ := renorm(m, neg, exp) // cannot overflow: the exponent is at most 3
	return d
}

// NewFromFloat64 converts a float64 to the nearest 16-digit decimal.
// It returns an error if f is NaN or infinite, or if its magnitude is too
// large to represent.
func NewFromFloat64(f float64) (Decimal64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal64{}, fmt.Errorf("converting %v: %w", f, errNonFinite)
	}
	// The shortest round-trip representation carries at most 17
	// significant digits, which the parser then rounds to 16.
	d, err := parse(strconv.FormatFloat(f, 'e', -1, 64))
	if err != nil {
		return Decimal64{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// Int64 returns d truncated toward zero, clamped to the int64 range.
func (d Decimal64) Int64() int64 {
	m, neg := d.split()
	e := int(d.exp)
	if e < 0 {
		m = m.scale(e)
	} else if e > 0 {
		if e >= len(pow10) || m > mag(math.MaxInt64)/pow10[e] {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		m *= pow10[e]
	}
	if neg {
		return -int64(m)
	}
	return int64(m)
}

// Uint64 returns d truncated toward zero, clamped to the uint64 range.
// Negative values clamp to 0.
func (d Decimal64) Uint64() uint64 {
	if d.sig < 0 {
		return 0
	}
	m := mag(d.sig)
	e := int(d.exp)
	if e < 0 {
		return uint64(m.scale(e))
	}
	if e > 0 {
		if e >= len(pow10) || m > mag(math.MaxUint64)/pow10[e] {
			return math.MaxUint64
		}
		m *= pow10[e]
	}
	return uint64(m)
}

// Float64 returns the nearest binary floating-point value to d.
func (d Decimal64) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}
