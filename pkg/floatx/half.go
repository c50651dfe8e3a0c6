package floatx

import "github.com/x448/float16"

// Half-precision bridge. IEEE 754 binary16 is the usual on-wire format for
// reduced-precision workloads (ML weights, sensor payloads); Go has no native
// half type, so the bridge works through github.com/x448/float16 with float32
// as the in-memory carrier.

// FitsFloat16 reports whether f converts to binary16 and back without any
// loss of precision.
func FitsFloat16(f float32) bool {
	return float16.PrecisionFromfloat32(f) == float16.PrecisionExact
}

// ToFloat16 converts f to binary16 using IEEE 754 round-to-nearest-even.
func ToFloat16(f float32) float16.Float16 {
	return float16.Fromfloat32(f)
}

// FromFloat16 converts a binary16 value to float32. The conversion is always
// exact: every binary16 value is representable in float32.
func FromFloat16(h float16.Float16) float32 {
	return h.Float32()
}
