package floatx

import (
	"math"
	"reflect"
	"strconv"
)

// Float constrains a type parameter to the IEEE 754 binary floating-point
// widths Go supports. Named types with a float32 or float64 underlying type
// satisfy it too, which is how domain-specific numeric backends plug in.
type Float interface {
	~float32 | ~float64
}

// Zero returns the additive identity for F.
func Zero[F Float]() F {
	var zero F
	return zero
}

// BitSize reports the width in bits of F's underlying representation,
// either 32 or 64.
func BitSize[F Float]() int {
	var zero F
	if reflect.TypeOf(zero).Kind() == reflect.Float32 {
		return 32
	}
	return 64
}

// Typed variables, not constants: 0x1p-1022 is not representable at 32 bits,
// so a constant conversion to F would not compile for float32 backends.
var (
	smallestNormal32 float32 = 0x1p-126
	smallestNormal64 float64 = 0x1p-1022
)

// SmallestNormal returns the smallest positive normal value representable
// by F, correct for F's actual width.
func SmallestNormal[F Float]() F {
	if BitSize[F]() == 32 {
		return F(smallestNormal32)
	}
	return F(smallestNormal64)
}

// Abs returns the absolute value of f.
func Abs[F Float](f F) F {
	return F(math.Abs(float64(f)))
}

// Signbit reports whether f is negative or negative zero.
func Signbit[F Float](f F) bool {
	return math.Signbit(float64(f))
}

// IsNaN reports whether f is an IEEE 754 "not-a-number" value.
func IsNaN[F Float](f F) bool {
	return f != f
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, whether f is negative infinity.
// If sign == 0, whether f is either infinity.
func IsInf[F Float](f F, sign int) bool {
	return math.IsInf(float64(f), sign)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite[F Float](f F) bool {
	return !IsNaN(f) && !IsInf(f, 0)
}

// IsSubnormal reports whether f is a nonzero value too small to be
// represented with full precision at F's width.
func IsSubnormal[F Float](f F) bool {
	return f != 0 && IsFinite(f) && Abs(f) < SmallestNormal[F]()
}

// IsNormal reports whether f is a normal value: finite, nonzero, and not
// subnormal at F's width.
func IsNormal[F Float](f F) bool {
	return IsFinite(f) && f != 0 && Abs(f) >= SmallestNormal[F]()
}

// Format renders f in the shortest decimal form that parses back to the
// exact same value at F's width.
func Format[F Float](f F) string {
	return strconv.FormatFloat(float64(f), 'g', -1, BitSize[F]())
}

// Parse converts a decimal string to F, rounding to F's width.
func Parse[F Float](s string) (F, error) {
	f, err := strconv.ParseFloat(s, BitSize[F]())
	if err != nil {
		return Zero[F](), err
	}
	return F(f), nil
}
