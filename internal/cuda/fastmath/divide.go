// Package fastmath provides float32 division with a build-time choice between
// exact IEEE division and the reduced-precision reciprocal form used by fast
// device math. Build with -tags fastmath to select the approximate form.
package fastmath

import "math"

// Divider is implemented by both division strategies.
type Divider interface {
	Div(a, b float32) float32
	DivComplex(z complex64, s float32) complex64
}

var (
	_ Divider = Exact{}
	_ Divider = Approx{}
)

// Exact divides with correctly rounded float32 division.
type Exact struct{}

func (Exact) Div(a, b float32) float32 {
	return a / b
}

func (Exact) DivComplex(z complex64, s float32) complex64 {
	return complex(real(z)/s, imag(z)/s)
}

// approxLimit is the divisor magnitude above which the fast reciprocal
// underflows; the result is then 0, or NaN for an infinite dividend.
const approxLimit = 0x1p126

// Approx multiplies by the float32 reciprocal of the divisor. The result is
// within 2 ulp of the exact quotient for divisors up to approxLimit.
type Approx struct{}

func (Approx) Div(a, b float32) float32 {
	if overLimit(b) {
		return underflow(a)
	}
	return a * (1 / b)
}

func (Approx) DivComplex(z complex64, s float32) complex64 {
	if overLimit(s) {
		return complex(underflow(real(z)), underflow(imag(z)))
	}
	r := 1 / s
	return complex(real(z)*r, imag(z)*r)
}

func overLimit(b float32) bool {
	m := math.Abs(float64(b))
	return m > approxLimit && m <= math.MaxFloat32
}

func underflow(a float32) float32 {
	if math.IsInf(float64(a), 0) {
		return float32(math.NaN())
	}
	return 0
}

// Div divides a by b with the strategy selected at build time.
func Div(a, b float32) float32 {
	return Selected{}.Div(a, b)
}

// DivComplex divides both components of z by s with the strategy selected at
// build time.
func DivComplex(z complex64, s float32) complex64 {
	return Selected{}.DivComplex(z, s)
}
