package confloat

import "github.com/dmitrymomot/confloat/pkg/floatx"

// Policy defines what "valid" means for a floating-point domain and how a
// violation is reported. A policy is a stateless struct type selected at the
// type level; the Value wrapper instantiates its zero value to call these
// methods, so a policy carries no runtime bytes and no dynamic dispatch.
//
// IsValid must be a pure function of its input. The wrapper's guarantee —
// a constructed value stays valid until an explicit unchecked write — only
// holds if repeated checks of the same payload cannot change answer.
type Policy[F floatx.Float] interface {
	// IsValid reports whether value belongs to the policy's domain.
	IsValid(value F) bool

	// EmitError builds the error returned when value fails IsValid. The
	// offending value is passed in so the message can reference it.
	EmitError(value F) error
}

// Defaulter is an optional policy capability overriding the default payload
// produced by Default. A policy that does not implement it defaults to the
// additive identity, zero.
//
// An overridden default must satisfy the policy's own IsValid; the wrapper
// takes that on trust, so it is the policy author's responsibility.
type Defaulter[F floatx.Float] interface {
	Default() F
}
