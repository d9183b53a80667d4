package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareContent_Default(t *testing.T) {
	// Given: a zero valued square
	var square SquareContent

	// Then: it should be empty
	assert.Equal(t, Empty, square)
}

func TestSquareContent_Bytes(t *testing.T) {
	t.Run("Converts to and from bytes", func(t *testing.T) {
		assert.Equal(t, X, SquareFromByte(1))
		assert.Equal(t, byte(1), X.Byte())
		assert.Equal(t, O, SquareFromByte(O.Byte()))
		assert.Equal(t, Empty, SquareFromByte(Empty.Byte()))
	})

	t.Run("Panics on unknown byte", func(t *testing.T) {
		assert.PanicsWithValue(t, "invalid value 99", func() {
			SquareFromByte(99)
		})
	})
}

func TestSquareContent_Runes(t *testing.T) {
	t.Run("Converts to and from runes", func(t *testing.T) {
		assert.Equal(t, X, SquareFromRune('X'))
		assert.Equal(t, 'X', X.Rune())
		assert.Equal(t, 'O', O.Rune())
		assert.Equal(t, ' ', Empty.Rune())
		assert.Equal(t, Empty, SquareFromRune(' '))
		assert.Equal(t, "O", O.String())
	})

	t.Run("Panics on unknown rune", func(t *testing.T) {
		assert.Panics(t, func() {
			SquareFromRune('x')
		})
	})
}

func TestParseSquare(t *testing.T) {
	t.Run("Accepts marks in any case", func(t *testing.T) {
		square, err := ParseSquare("x")
		require.NoError(t, err)
		assert.Equal(t, X, square)

		square, err = ParseSquare(" O ")
		require.NoError(t, err)
		assert.Equal(t, O, square)
	})

	t.Run("Rejects anything else without panicking", func(t *testing.T) {
		for _, value := range []string{"", " ", "XO", "1", "-"} {
			_, err := ParseSquare(value)
			assert.ErrorIs(t, err, ErrInvalidSquare, value)
		}
	})
}
