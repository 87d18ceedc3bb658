package decimal64

import (
	"errors"
	"fmt"
)

// Decimal64 is a fixed-precision decimal floating-point number.
// It represents Significand * 10^Exponent, where the significand holds at
// most 16 decimal digits and the exponent lies in [MinExp, MaxExp].
// Zero is the unique value with a zero significand.
//
// The zero value of the type is the decimal 0 and is ready to use.
type Decimal64 struct {
	sig int64 // significand, |sig| <= maxSig
	exp int16 // exponent, MinExp <= exp <= MaxExp
}

const (
	// MaxDigits is the maximum number of significant digits a Decimal64
	// can hold.
	MaxDigits = 16

	// MinExp and MaxExp bound the exponent of a Decimal64.
	MinExp = -256
	MaxExp = 255
)

const (
	maxSig   = 9_999_999_999_999_999 // largest 16-digit significand
	expLimit = 253                   // exponent ceiling after renormalization
)

var (
	errSignificandRange = errors.New("significand out of range")
	errExponentRange    = errors.New("exponent out of range")
	errExponentOverflow = errors.New("exponent overflow")
	errDivisionByZero   = errors.New("division by zero")
	errInvalidDecimal   = errors.New("invalid decimal")
	errScaleRange       = errors.New("scale out of range")
	errNonFinite        = errors.New("non-finite number")
)

var (
	// Zero is the decimal 0.
	Zero = Decimal64{}
	// One is the decimal 1.
	One = MustNew(1, 0)
	// Ten is the decimal 10.
	Ten = MustNew(10, 0)
	// Pi is the circle constant π truncated to 16 digits.
	Pi = MustNew(3_141_592_653_589_793, -15)
	// Tau is the circle constant 2π truncated to 16 digits.
	Tau = MustNew(6_283_185_307_179_586, -15)
)

// New returns a decimal equal to significand * 10^exponent.
// It returns an error if the significand needs more than [MaxDigits] digits
// or the exponent falls outside the [MinExp, MaxExp] range.
func New(significand int64, exponent int) (Decimal64, error) {
	switch {
	case significand < -maxSig || maxSig < significand:
		return Decimal64{}, fmt.Errorf("New(%v, %v) failed: %w", significand, exponent, errSignificandRange)
	case exponent < MinExp || MaxExp < exponent:
		return Decimal64{}, fmt.Errorf("New(%v, %v) failed: %w", significand, exponent, errExponentRange)
	case significand == 0:
		return Decimal64{}, nil
	}
	return Decimal64{sig: significand, exp: int16(exponent)}, nil
}

// MustNew is like [New] but panics if the arguments are out of range.
func MustNew(significand int64, exponent int) Decimal64 {
	d, err := New(significand, exponent)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", significand, exponent, err))
	}
	return d
}

// Significand returns the integer digit sequence of d.
func (d Decimal64) Significand() int64 {
	return d.sig
}

// Exponent returns the power of ten by which the significand of d is scaled.
func (d Decimal64) Exponent() int {
	return int(d.exp)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal64) Sign() int {
	switch {
	case d.sig < 0:
		return -1
	case d.sig > 0:
		return 1
	}
	return 0
}

// IsZero returns true if d is 0.
func (d Decimal64) IsZero() bool {
	return d.sig == 0
}

// IsNeg returns true if d is less than 0.
// It is a single comparison on the significand.
func (d Decimal64) IsNeg() bool {
	return d.sig < 0
}

// IsPos returns true if d is greater than 0.
func (d Decimal64) IsPos() bool {
	return d.sig > 0
}

// Neg returns d with its sign flipped.
func (d Decimal64) Neg() Decimal64 {
	return Decimal64{sig: -d.sig, exp: d.exp}
}

// Abs returns the absolute value of d.
func (d Decimal64) Abs() Decimal64 {
	if d.sig < 0 {
		return Decimal64{sig: -d.sig, exp: d.exp}
	}
	return d
}

// CopySign returns d with the same sign as e.
// CopySign(d, 0) returns d unchanged.
func (d Decimal64) CopySign(e Decimal64) Decimal64 {
	if e.sig != 0 && (d.sig < 0) != (e.sig < 0) {
		return d.Neg()
	}
	return d
}

// split separates d into an unsigned magnitude and a sign.
func (d Decimal64) split() (mag, bool) {
	if d.sig < 0 {
		return mag(-d.sig), true
	}
	return mag(d.sig), false
}
