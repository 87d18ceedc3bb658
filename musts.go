package decimal64

import "fmt"

// MustAdd is like [Decimal64.Add] but panics if computing error.
func (d Decimal64) MustAdd(e Decimal64) Decimal64 {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Decimal64.Sub] but panics if computing error.
func (d Decimal64) MustSub(e Decimal64) Decimal64 {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Decimal64.Mul] but panics if computing error.
func (d Decimal64) MustMul(e Decimal64) Decimal64 {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Decimal64.Quo] but panics if computing error.
func (d Decimal64) MustQuo(e Decimal64) Decimal64 {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}
