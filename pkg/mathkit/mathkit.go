// Package mathkit holds the integer arithmetic used for positional computations over ranges:
// overflow checked products for range sizes, and floored division for mixed-radix carries.
package mathkit

import (
	"unsafe"

	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"
)

const ErrOverflow errorkit.Error = "mathkit: integer overflow"

func MaxInt[T constraints.Signed]() T {
	var zero T
	bits := 8 * unsafe.Sizeof(zero)
	return T((1 << (bits - 1)) - 1)
}

func MinInt[T constraints.Signed]() T {
	var zero T
	bits := 8 * unsafe.Sizeof(zero)
	return T(-1 << (bits - 1))
}

// CanMulOverflow reports whether x*y would overflow T.
func CanMulOverflow[T constraints.Signed](x, y T) bool {
	if x == 0 || y == 0 {
		return false
	}
	if x == -1 {
		return y == MinInt[T]()
	}
	if y == -1 {
		return x == MinInt[T]()
	}
	p := x * y
	return p/y != x
}

// Mul multiplies two integers, and reports false when the result doesn't fit T.
func Mul[T constraints.Signed](x, y T) (T, bool) {
	if CanMulOverflow(x, y) {
		return 0, false
	}
	return x * y, true
}

// Product multiplies every number together.
// The product of no numbers is 1.
func Product[T constraints.Signed](ns ...T) (T, bool) {
	var p T = 1
	for _, n := range ns {
		var ok bool
		p, ok = Mul(p, n)
		if !ok {
			return 0, false
		}
	}
	return p, true
}

// MustProduct is Product that panics with ErrOverflow.
func MustProduct[T constraints.Signed](ns ...T) T {
	p, ok := Product(ns...)
	if !ok {
		panic(ErrOverflow.F("product of %v", ns))
	}
	return p
}

// GCD returns the greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// DivCeil divides a non-negative a by a positive b, rounding up.
func DivCeil[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// FloorDivMod returns the floored quotient and the remainder of a/b for a positive b.
// The remainder is always in [0, b), which makes it a carry step of a mixed-radix number:
//
//	FloorDivMod(7, 3)  == (2, 1)
//	FloorDivMod(-1, 3) == (-1, 2)
func FloorDivMod[T constraints.Signed](a, b T) (q, r T) {
	q, r = a/b, a%b
	if r < 0 {
		r += b
		q--
	}
	return q, r
}
