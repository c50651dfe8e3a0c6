package floatrule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/confloat/pkg/floatrule"
)

func TestSignPredicates(t *testing.T) {
	t.Parallel()

	t.Run("Positive", func(t *testing.T) {
		p := floatrule.Positive[float64]()
		assert.True(t, p(0.1))
		assert.False(t, p(0))
		assert.False(t, p(-0.1))
	})

	t.Run("Negative", func(t *testing.T) {
		p := floatrule.Negative[float64]()
		assert.True(t, p(-0.1))
		assert.False(t, p(0))
		assert.False(t, p(0.1))
	})

	t.Run("NonZero", func(t *testing.T) {
		p := floatrule.NonZero[float64]()
		assert.True(t, p(-5))
		assert.False(t, p(0))
		assert.False(t, p(math.Copysign(0, -1)))
	})
}

func TestClassificationPredicates(t *testing.T) {
	t.Parallel()

	t.Run("Finite", func(t *testing.T) {
		p := floatrule.Finite[float64]()
		assert.True(t, p(42))
		assert.False(t, p(math.Inf(1)))
		assert.False(t, p(math.NaN()))
	})

	t.Run("Normal is width-aware", func(t *testing.T) {
		p64 := floatrule.Normal[float64]()
		p32 := floatrule.Normal[float32]()
		assert.True(t, p64(1e-40))
		assert.False(t, p32(1e-40))
	})
}

func TestBoundPredicates(t *testing.T) {
	t.Parallel()

	t.Run("GreaterThan is strict", func(t *testing.T) {
		p := floatrule.GreaterThan(5.0)
		assert.True(t, p(5.1))
		assert.False(t, p(5.0))
	})

	t.Run("AtLeast is inclusive", func(t *testing.T) {
		p := floatrule.AtLeast(5.0)
		assert.True(t, p(5.0))
		assert.False(t, p(4.9))
	})

	t.Run("LessThan is strict", func(t *testing.T) {
		p := floatrule.LessThan(5.0)
		assert.True(t, p(4.9))
		assert.False(t, p(5.0))
	})

	t.Run("AtMost is inclusive", func(t *testing.T) {
		p := floatrule.AtMost(5.0)
		assert.True(t, p(5.0))
		assert.False(t, p(5.1))
	})

	t.Run("Between includes both endpoints", func(t *testing.T) {
		p := floatrule.Between(5.0, 7.2)
		assert.True(t, p(5.0))
		assert.True(t, p(7.2))
		assert.True(t, p(6.0))
		assert.False(t, p(4.9))
		assert.False(t, p(7.3))
	})

	t.Run("OneOf matches exact values", func(t *testing.T) {
		p := floatrule.OneOf(0.25, 0.5, 1.0)
		assert.True(t, p(0.5))
		assert.False(t, p(0.75))
		assert.False(t, floatrule.OneOf[float64]()(0))
	})
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	t.Run("And requires every predicate", func(t *testing.T) {
		p := floatrule.And(floatrule.Positive[float64](), floatrule.AtMost(1.0))
		assert.True(t, p(0.5))
		assert.False(t, p(-0.5))
		assert.False(t, p(1.5))
	})

	t.Run("And with no predicates accepts everything", func(t *testing.T) {
		assert.True(t, floatrule.And[float64]()(math.NaN()))
	})

	t.Run("Or requires at least one predicate", func(t *testing.T) {
		p := floatrule.Or(floatrule.Negative[float64](), floatrule.GreaterThan(10.0))
		assert.True(t, p(-1))
		assert.True(t, p(11))
		assert.False(t, p(5))
	})

	t.Run("Or with no predicates rejects everything", func(t *testing.T) {
		assert.False(t, floatrule.Or[float64]()(0))
	})

	t.Run("Not inverts", func(t *testing.T) {
		p := floatrule.Not(floatrule.Positive[float64]())
		assert.True(t, p(-1))
		assert.False(t, p(1))
	})
}
