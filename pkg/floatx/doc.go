// Package floatx provides the narrow floating-point backend the confloat
// core builds on: a generic Float type-set constraint, width-aware numeric
// classification queries, and shortest-round-trip formatting.
//
// Everything in this package is width-correct by construction: normality,
// subnormality, and formatting consult the actual bit width of the type
// argument instead of assuming float64, so the same generic code behaves
// correctly over float32, float64, and any named type built on either.
//
// # Architecture
//
// The package is a flat set of free generic functions over the Float
// constraint. There is no state, no allocation beyond what strconv needs for
// formatting, and every function is safe for concurrent use.
//
// A small bridge to IEEE 754 binary16 (half precision) lives in half.go,
// backed by github.com/x448/float16, for callers whose domain values must
// survive a reduced-precision wire format.
//
// # Usage
//
//	floatx.IsNormal(float32(1e-40)) // false: subnormal at 32-bit width
//	floatx.IsNormal(1e-40)          // true: normal at 64-bit width
//	floatx.Format(float32(0.1))     // "0.1", not "0.100000001490116..."
//
// # Performance Considerations
//
// Classification queries compile down to a comparison or two; BitSize uses
// reflection on a zero value, which is cheap but not free, so hot loops
// should hoist it out where it matters.
package floatx
