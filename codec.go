package decimal64

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
)

// The interchange form of a decimal is a single 64-bit word holding the
// significand in the top 55 bits and the exponent as a 9-bit
// two's-complement field in the low bits. The sign of the word equals the
// sign of the significand, so a negativity test on the packed form is a
// single comparison against zero.
const (
	expBits = 9
	expMask = 1<<expBits - 1
)

// pack encodes d into its 64-bit interchange word.
func (d Decimal64) pack() int64 {
	return d.sig<<expBits | int64(d.exp)&expMask
}

// unpack decodes a word produced by pack.
func unpack(w int64) (Decimal64, error) {
	sig := w >> expBits
	exp := int(w & expMask)
	if exp > MaxExp {
		exp -= 1 << expBits // sign-extend the 9-bit field
	}
	return New(sig, exp)
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface,
// packing d into eight big-endian bytes.
func (d Decimal64) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, 8))
}

// AppendBinary appends the packed form of d to b and returns the extended
// slice.
func (d Decimal64) AppendBinary(b []byte) ([]byte, error) {
	return binary.BigEndian.AppendUint64(b, uint64(d.pack())), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
func (d *Decimal64) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("unmarshaling %v byte(s) into %T: %w", len(data), d, errInvalidDecimal)
	}
	f, err := unpack(int64(binary.BigEndian.Uint64(data)))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", d, err)
	}
	*d = f
	return nil
}

// Scan implements the [sql.Scanner] interface.
func (d *Decimal64) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = NewFromInt64(value)
	case float64:
		*d, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("scanning %T into %T: %w", value, d, errInvalidDecimal)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
func (d Decimal64) Value() (driver.Value, error) {
	return d.String(), nil
}
