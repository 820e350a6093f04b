package optional_test

import (
	"testing"

	"github.com/optmodel/optmodel/internal/optional"
	"github.com/stretchr/testify/assert"
)

func TestSome(t *testing.T) {
	assert := assert.New(t)

	const v uint32 = 123

	val := optional.Some(v)

	assert.True(val.Present(), "should be present")
	assert.Equal(v, val.Raw(), "should contain `v`")
}

func TestNone(t *testing.T) {
	assert := assert.New(t)

	var zeroVal uint32

	val := optional.None[uint32]()

	assert.False(val.Present(), "should not be present")
	assert.Equal(zeroVal, val.Raw(), "should contain the zero value")
}

func TestValue_Get(t *testing.T) {
	assert := assert.New(t)

	t.Run("present", func(t *testing.T) {
		const v string = "abc"

		val := optional.Some(v)

		actual, ok := val.Get()

		assert.True(ok)
		assert.Equal(v, actual)
	})

	t.Run("absent", func(t *testing.T) {
		var zeroVal string

		val := optional.None[string]()

		actual, ok := val.Get()

		assert.False(ok)
		assert.Equal(zeroVal, actual)
	})
}

func TestValue_GetOrDefault(t *testing.T) {
	assert := assert.New(t)

	t.Run("present", func(t *testing.T) {
		const v string = "abc"

		val := optional.Some(v)

		assert.Equal(v, val.GetOrDefault("def"))
	})

	t.Run("absent", func(t *testing.T) {
		const fallback string = "def"

		val := optional.None[string]()

		assert.Equal(fallback, val.GetOrDefault(fallback))
	})
}

func TestValue_ZeroValueIsAbsent(t *testing.T) {
	assert := assert.New(t)

	var val optional.Value[[]string]

	assert.False(val.Present())
	assert.Nil(val.Raw())
}
