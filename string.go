package decimal64

import "fmt"

// quads maps every 4-digit value to its zero-padded ASCII form, so the
// formatter emits four digits per step instead of one.
var quads [10_000][4]byte

func init() {
	for i := range quads {
		quads[i] = [4]byte{
			byte('0' + i/1000),
			byte('0' + i/100%10),
			byte('0' + i/10%10),
			byte('0' + i%10),
		}
	}
}

// putDigits writes the decimal digits of m into buf, ending just before
// pos, and returns the index of the first digit written.
// putDigits assumes m is not zero.
func putDigits(buf []byte, pos int, m mag) int {
	for m >= 10_000 {
		q := m / 10_000
		quad := quads[m-q*10_000]
		pos -= 4
		copy(buf[pos:], quad[:])
		m = q
	}
	quad := quads[m]
	switch {
	case m >= 1000:
		pos -= 4
		copy(buf[pos:], quad[:])
	case m >= 100:
		pos -= 3
		copy(buf[pos:], quad[1:])
	case m >= 10:
		pos -= 2
		copy(buf[pos:], quad[2:])
	default:
		pos--
		buf[pos] = quad[3]
	}
	return pos
}

// String implements the [fmt.Stringer] interface.
//
// Zero formats as "0". Other values format in plain decimal notation when
// the decimal point lands inside the digits or needs at most six leading
// zeros, and in scientific notation d.dddE±exp otherwise.
func (d Decimal64) String() string {
	if d.sig == 0 {
		return "0"
	}
	m, neg := d.split()
	e := int(d.exp)
	// Minimize the representation before laying it out.
	if nz := m.ntz(); nz > 0 {
		m = m.scale(-nz)
		e += nz
	}

	var db [20]byte
	first := putDigits(db[:], len(db), m)
	digits := db[first:]
	nd := len(digits)

	var buf [32]byte
	out := buf[:0]
	if neg {
		out = append(out, '-')
	}
	switch {
	case e >= 0 && nd+e <= MaxDigits:
		out = append(out, digits...)
		for i := 0; i < e; i++ {
			out = append(out, '0')
		}
	case e < 0 && -e < nd:
		out = append(out, digits[:nd+e]...)
		out = append(out, '.')
		out = append(out, digits[nd+e:]...)
	case e < 0 && -e-nd <= 6:
		out = append(out, '0', '.')
		for i := 0; i < -e-nd; i++ {
			out = append(out, '0')
		}
		out = append(out, digits...)
	default:
		out = append(out, digits[0])
		if nd > 1 {
			out = append(out, '.')
			out = append(out, digits[1:]...)
		}
		out = append(out, 'E')
		ex := e + nd - 1
		if ex < 0 {
			out = append(out, '-')
			ex = -ex
		} else {
			out = append(out, '+')
		}
		quad := quads[ex]
		switch {
		case ex >= 100:
			out = append(out, quad[1:]...)
		case ex >= 10:
			out = append(out, quad[2:]...)
		default:
			out = append(out, quad[3])
		}
	}
	return string(out)
}

// Parse converts a string to a decimal.
//
// The input must match
//
//	ws* sign? digits? ('.' digits?)? (('e' | 'E') sign? digit{1,3})?
//
// with at least one digit overall. Up to 18 significant digits are
// retained; surplus integer digits shift the exponent up and surplus
// fractional digits are dropped. The accumulated value is then rounded
// and renormalized to 16 digits.
func Parse(s string) (Decimal64, error) {
	d, err := parse(s)
	if err != nil {
		return Decimal64{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

func parse(s string) (Decimal64, error) {
	pos := 0
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t' || s[pos] == '\n' || s[pos] == '\r') {
		pos++
	}
	neg := false
	if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
		neg = s[pos] == '-'
		pos++
	}

	var m mag
	digits := 0 // significant digits accumulated in m
	seen := false
	exp := 0

	// Integer part. Leading zeros carry no information, and digits past
	// the 18-digit cap only move the decimal point.
	for pos < len(s) && '0' <= s[pos] && s[pos] <= '9' {
		seen = true
		switch {
		case m == 0 && s[pos] == '0':
		case digits < 18:
			m = m*10 + mag(s[pos]-'0')
			digits++
		default:
			exp++
		}
		pos++
	}

	// Fractional part. While the significand is still zero, leading
	// fractional zeros cost exponent rather than digit slots.
	if pos < len(s) && s[pos] == '.' {
		pos++
		for pos < len(s) && '0' <= s[pos] && s[pos] <= '9' {
			seen = true
			switch {
			case m == 0 && s[pos] == '0':
				exp--
			case digits < 18:
				m = m*10 + mag(s[pos]-'0')
				digits++
				exp--
			}
			pos++
		}
	}
	if !seen {
		return Decimal64{}, fmt.Errorf("no digits: %w", errInvalidDecimal)
	}

	// Exponent suffix, at most 3 digits.
	if pos < len(s) && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		eneg := false
		if pos < len(s) && (s[pos] == '+' || s[pos] == '-') {
			eneg = s[pos] == '-'
			pos++
		}
		ev, ed := 0, 0
		for pos < len(s) && '0' <= s[pos] && s[pos] <= '9' {
			if ed == 3 {
				return Decimal64{}, fmt.Errorf("exponent longer than 3 digits: %w", errInvalidDecimal)
			}
			ev = ev*10 + int(s[pos]-'0')
			ed++
			pos++
		}
		if ed == 0 {
			return Decimal64{}, fmt.Errorf("no exponent digits: %w", errInvalidDecimal)
		}
		if eneg {
			ev = -ev
		}
		exp += ev
	}
	if pos != len(s) {
		return Decimal64{}, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidDecimal)
	}
	return renorm(m, neg, exp)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) Decimal64 {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d Decimal64) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *Decimal64) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}
