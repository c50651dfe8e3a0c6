package confloat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/confloat"
)

func TestMarshalText(t *testing.T) {
	t.Parallel()

	t.Run("renders the shortest round-tripping decimal form", func(t *testing.T) {
		v, err := confloat.New[float64, positiveNormal](42.1)
		require.NoError(t, err)

		text, err := v.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "42.1", string(text))
	})

	t.Run("float32 payloads format at 32-bit width", func(t *testing.T) {
		v, err := confloat.New[float32, unitInterval](0.1)
		require.NoError(t, err)

		text, err := v.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "0.1", string(text))
	})
}

func TestUnmarshalText(t *testing.T) {
	t.Parallel()

	t.Run("parses and validates", func(t *testing.T) {
		var v confloat.Value[float64, negativeNormal]
		require.NoError(t, v.UnmarshalText([]byte("-2.5")))
		assert.Equal(t, -2.5, v.Get())
	})

	t.Run("rejects a value failing the policy", func(t *testing.T) {
		var v confloat.Value[float64, negativeNormal]
		err := v.UnmarshalText([]byte("42.1"))
		require.Error(t, err)
		assert.True(t, confloat.IsViolation(err))
	})

	t.Run("rejects unparseable input", func(t *testing.T) {
		var v confloat.Value[float64, permissive]
		assert.Error(t, v.UnmarshalText([]byte("forty-two")))
	})

	t.Run("a rejected parse leaves the destination untouched", func(t *testing.T) {
		v := confloat.Default[float64, negativeNormal]()
		require.Error(t, v.UnmarshalText([]byte("42.1")))
		assert.Equal(t, -50.0, v.Get())
	})
}
