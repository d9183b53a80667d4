package board

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var ErrInvalidSize = errors.New("board data is of invalid size, has to contain 9 elements")

// Content is the 3x3 board. Copying a Content copies all cells.
type Content struct {
	cells [Cells]SquareContent
}

// New - returns a board with every square empty.
func New() Content {
	return NewInitialized(Empty)
}

// NewInitialized - returns a board with every square set to value.
func NewInitialized(value SquareContent) Content {
	var content Content
	for ix := range content.cells {
		content.cells[ix] = value
	}

	return content
}

// FromBytes - decodes the 9 byte representation produced by Bytes.
// A buffer of the wrong length is reported as ErrInvalidSize; bytes other
// than 0, 1 and 2 are a programming error and panic.
func FromBytes(data []byte) (Content, error) {
	if len(data) != Cells {
		return Content{}, fmt.Errorf("%w: got %d", ErrInvalidSize, len(data))
	}

	var content Content
	for ix, value := range data {
		content.cells[ix] = SquareFromByte(value)
	}

	return content, nil
}

// ParseCompact - decodes the 9 character form produced by CompactString.
func ParseCompact(compact string) (Content, error) {
	runes := []rune(compact)
	if len(runes) != Cells {
		return Content{}, fmt.Errorf("%w: got %d", ErrInvalidSize, len(runes))
	}

	var content Content
	for ix, value := range runes {
		if !isSquareRune(value) {
			return Content{}, fmt.Errorf("%w: %q at position %d", ErrInvalidSquare, value, ix)
		}

		content.cells[ix] = SquareFromRune(value)
	}

	return content, nil
}

func (that Content) Bytes() [Cells]byte {
	var data [Cells]byte
	for ix, square := range that.cells {
		data[ix] = square.Byte()
	}

	return data
}

// At - reads a square by raw position. Panics if ix is outside [0, Cells).
func (that Content) At(ix int) SquareContent {
	if ix < 0 || ix >= Cells {
		panic("index out of bounds")
	}

	return that.cells[ix]
}

// Put - writes a square by raw position. Panics if ix is outside [0, Cells).
func (that *Content) Put(ix int, value SquareContent) {
	if ix < 0 || ix >= Cells {
		panic("index out of bounds")
	}

	that.cells[ix] = value
}

func (that *Content) Get(ix Index) SquareContent {
	return that.At(ix.Int())
}

func (that *Content) Set(ix Index, value SquareContent) {
	that.Put(ix.Int(), value)
}

// Slice - returns a copy of all squares in row-major order.
func (that Content) Slice() []SquareContent {
	squares := make([]SquareContent, Cells)
	copy(squares, that.cells[:])

	return squares
}

// All - yields every square in row-major order. Each call starts a new pass.
func (that Content) All() iter.Seq[SquareContent] {
	return func(yield func(SquareContent) bool) {
		for _, square := range that.cells {
			if !yield(square) {
				return
			}
		}
	}
}

// Cells - yields every square together with its index in row-major order.
func (that Content) Cells() iter.Seq2[Index, SquareContent] {
	return func(yield func(Index, SquareContent) bool) {
		for ix, square := range that.cells {
			if !yield(FromIndex(ix), square) {
				return
			}
		}
	}
}

// CompactString - renders the board as 9 characters, one per square.
func (that Content) CompactString() string {
	var builder strings.Builder
	builder.Grow(Cells)

	for square := range that.All() {
		builder.WriteRune(square.Rune())
	}

	return builder.String()
}

func (that Content) MarshalText() ([]byte, error) {
	return []byte(that.CompactString()), nil
}

func (that *Content) UnmarshalText(text []byte) error {
	content, err := ParseCompact(string(text))
	if err != nil {
		return err
	}

	*that = content

	return nil
}

// String - renders the board as a bordered grid, each square drawn twice wide:
//
//	┏━━┯━━┯━━┓
//	┃  |  |  ┃
//	┠──┼──┼──┨
//	┃  |XX|  ┃
//	┠──┼──┼──┨
//	┃  |  |  ┃
//	┗━━┷━━┷━━┛
func (that Content) String() string {
	top := separator('┏', '━', '┯', '┓')
	middle := separator('┠', '─', '┼', '┨')
	bottom := separator('┗', '━', '┷', '┛')

	var builder strings.Builder
	builder.WriteString(top)

	for row := range that.Rows() {
		builder.WriteRune('┃')
		builder.WriteString(row.String())
		builder.WriteString("┃\n")

		if row.HasNext() {
			builder.WriteString(middle)
		}
	}

	builder.WriteString(bottom)

	return builder.String()
}

func separator(left, line, cross, right rune) string {
	var builder strings.Builder
	builder.WriteRune(left)

	for col := range Size {
		builder.WriteRune(line)
		builder.WriteRune(line)

		if col < Size-1 {
			builder.WriteRune(cross)
		}
	}

	builder.WriteRune(right)
	builder.WriteRune('\n')

	return builder.String()
}
