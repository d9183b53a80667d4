package board

import (
	"iter"
	"strings"
)

// Row is a read-only view of one line of a board. It reads through to the
// board it was taken from, so it must not be kept past a mutation of that board.
type Row struct {
	board *Content
	index int
}

// Row - returns a view of row r. Panics if r is outside [0, Size).
func (that *Content) Row(r int) Row {
	if r < 0 || r >= Size {
		panic("index out of bounds")
	}

	return Row{board: that, index: r}
}

// Rows - yields the rows top to bottom. Each call starts a new pass.
func (that *Content) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for r := range Size {
			if !yield(Row{board: that, index: r}) {
				return
			}
		}
	}
}

func (that Row) Index() int {
	return that.index
}

// Cells - returns the three squares of the row, left to right.
func (that Row) Cells() [Size]SquareContent {
	var squares [Size]SquareContent
	copy(squares[:], that.board.cells[that.index*Size:(that.index+1)*Size])

	return squares
}

// At - reads column col of the row. Panics if col is outside [0, Size).
func (that Row) At(col int) SquareContent {
	if col < 0 || col >= Size {
		panic("index out of bounds")
	}

	return that.board.At(that.index*Size + col)
}

func (that Row) HasNext() bool {
	return that.index < Size-1
}

// String - renders the row as "XX|  |OO".
func (that Row) String() string {
	var builder strings.Builder

	for col, square := range that.Cells() {
		builder.WriteRune(square.Rune())
		builder.WriteRune(square.Rune())

		if col < Size-1 {
			builder.WriteRune('|')
		}
	}

	return builder.String()
}
