/*
Package decimal64 implements immutable fixed-precision decimal
floating-point numbers that fit in a single 64-bit word.
It targets workloads, such as monetary calculations, where the binary
rounding error of float64 is unacceptable but an arbitrary-precision
decimal type is too slow.

# Representation

[Decimal64] is a struct with two fields:

  - Significand: a signed integer holding the decimal digits of the value,
    limited to 16 digits.
  - Exponent: the power of ten by which the significand is scaled,
    in the range [-256, 255].

The numerical value of a decimal is Significand * 10^Exponent.
For example, a significand of -3333 and an exponent of -3 represent -3.333.
Zero is the unique value with a zero significand.

The same numeric value can have multiple representations.
For example, significand 33 with exponent -1 and significand 330 with
exponent -2 both represent 3.3. [Decimal64.Equal] and [Decimal64.Cmp]
compare numeric values, not representations.

For interchange, [Decimal64.MarshalBinary] packs both fields into one
64-bit word whose sign, read as a two's-complement integer, equals the
sign of the significand.

# Constraints

Results are always rounded to 16 significant digits, using half-up
rounding at the digit that does not fit. Addition discards an operand
whose magnitude is more than 32 orders below the other; division keeps at
most 18 digits of quotient before rounding.

Subnormal handling is one-sided: a result whose exponent falls below -256
has digits truncated off its significand and flushes to zero when none
remain, which is never an error. A result whose exponent exceeds 253
after maximal widening of the significand is an overflow error.

Special values such as NaN, Infinity, or negative zero are not supported.
Arithmetic always produces either a valid decimal or an error.

# Conversions

The package provides functions and methods for converting decimals:

  - from/to string:
    [Parse], [Decimal64.String].
  - from/to float64:
    [NewFromFloat64], [Decimal64.Float64].
  - from/to int64:
    [New], [NewFromInt64], [Decimal64.Int64], [Decimal64.Uint64].

[Decimal64.Int64] and [Decimal64.Uint64] clamp out-of-range values to the
bounds of the target type instead of returning an error.

# Rounding

In addition to the implicit rounding described above, the package rounds
explicitly through [Decimal64.Rounded], which takes a [RoundingMode] and a
scale, and through the shorthands [Decimal64.Round] (half to even),
[Decimal64.Trunc], [Decimal64.Ceil], and [Decimal64.Floor].

# Errors

Arithmetic methods are pure and panic-free: division by zero and exponent
overflow are reported as errors, not panics. The Must variants
([MustNew], [MustParse], [Decimal64.MustAdd], and friends) are the opt-in
panicking form for initializing package-level values. Rounding to a
negative scale is outside the contract of [Decimal64.Rounded] and panics.
*/
package decimal64
