package confloat

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/confloat/pkg/floatx"
)

// ErrViolation is the sentinel all ViolationError values match via errors.Is,
// so callers can detect a constraint failure without knowing the policy's
// float width.
var ErrViolation = errors.New("value violates policy constraint")

// ViolationError is a ready-made error type for policy authors: the
// offending value plus a human-readable constraint description. Policies are
// free to emit any error type; the wrapper forwards whatever EmitError
// returns unchanged.
type ViolationError[F floatx.Float] struct {
	Value      F
	Constraint string
}

func (e ViolationError[F]) Error() string {
	return fmt.Sprintf("value %s violates constraint: %s", floatx.Format(e.Value), e.Constraint)
}

func (e ViolationError[F]) Is(target error) bool {
	return target == ErrViolation
}

// NewViolation builds a ViolationError for value with the given constraint
// description.
func NewViolation[F floatx.Float](value F, constraint string) error {
	return ViolationError[F]{Value: value, Constraint: constraint}
}

// IsViolation reports whether err is (or wraps) a policy constraint
// violation.
func IsViolation(err error) bool {
	return errors.Is(err, ErrViolation)
}
