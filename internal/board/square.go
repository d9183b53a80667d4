package board

import (
	"errors"
	"fmt"
	"strings"
)

// SquareContent is the value of a single cell. The zero value is Empty.
type SquareContent uint8

const (
	Empty SquareContent = iota
	X
	O
)

var ErrInvalidSquare = errors.New("invalid square content")

// SquareFromByte - converts 0, 1 or 2 into a square. Any other byte is a programming error.
func SquareFromByte(value byte) SquareContent {
	switch value {
	case 0:
		return Empty
	case 1:
		return X
	case 2:
		return O
	default:
		panic(fmt.Sprintf("invalid value %d", value))
	}
}

// SquareFromRune - converts ' ', 'X' or 'O' into a square. Any other rune panics.
func SquareFromRune(value rune) SquareContent {
	switch value {
	case ' ':
		return Empty
	case 'X':
		return X
	case 'O':
		return O
	default:
		panic(fmt.Sprintf("invalid character %q", value))
	}
}

// ParseSquare - parses a player mark coming from outside the process.
func ParseSquare(value string) (SquareContent, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrInvalidSquare, value)
	}
}

func (that SquareContent) Byte() byte {
	return byte(that)
}

func (that SquareContent) Rune() rune {
	switch that {
	case X:
		return 'X'
	case O:
		return 'O'
	default:
		return ' '
	}
}

func (that SquareContent) String() string {
	return string(that.Rune())
}

func isSquareRune(value rune) bool {
	return value == ' ' || value == 'X' || value == 'O'
}
