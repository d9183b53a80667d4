package board

import (
	"errors"
	"fmt"
)

const (
	// Size is the number of rows and columns.
	Size = 3
	// Cells is the number of squares on the board.
	Cells = Size * Size
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidColumn = errors.New("invalid column")
	ErrInvalidRow    = errors.New("invalid row")
)

// Direction is the axis used when stepping from one index to its neighbour.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (that Direction) String() string {
	if that == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Index is a linear, row-major position on the board. It can only be built through
// the constructors below, so it never holds a value outside [0, Cells).
// The zero value is A1.
type Index struct {
	ix int
}

// FromIndex - builds an index from a linear position. Panics if ix is outside [0, Cells).
func FromIndex(ix int) Index {
	if ix < 0 || ix >= Cells {
		panic("index out of bounds")
	}

	return Index{ix: ix}
}

// FromColRow - builds an index from a zero based column and row.
func FromColRow(col, row int) Index {
	if col < 0 || col >= Size {
		panic("column out of bounds")
	}

	if row < 0 || row >= Size {
		panic("row out of bounds")
	}

	return Index{ix: row*Size + col}
}

// ParseIndex - parses a two character coordinate such as "A1" or "c3".
// Columns are A..C (case-insensitive), rows are 1..3.
func ParseIndex(location string) (Index, error) {
	if len(location) != 2 {
		return Index{}, fmt.Errorf("%w: %q", ErrInvalidLength, location)
	}

	var col int
	switch c := location[0]; {
	case c >= 'A' && c <= 'C':
		col = int(c - 'A')
	case c >= 'a' && c <= 'c':
		col = int(c - 'a')
	default:
		return Index{}, fmt.Errorf("%w: %q", ErrInvalidColumn, location)
	}

	r := location[1]
	if r < '1' || r > '3' {
		return Index{}, fmt.Errorf("%w: %q", ErrInvalidRow, location)
	}

	return FromColRow(col, int(r-'1')), nil
}

// MustParseIndex - like ParseIndex but panics on malformed input. Meant for literals.
func MustParseIndex(location string) Index {
	ix, err := ParseIndex(location)
	if err != nil {
		panic(err)
	}

	return ix
}

func (that Index) Int() int {
	return that.ix
}

func (that Index) Column() int {
	return that.ix % Size
}

func (that Index) Row() int {
	return that.ix / Size
}

// TryNext - returns the neighbour after this index along the given axis,
// or false when the index sits on the last column/row.
func (that Index) TryNext(direction Direction) (Index, bool) {
	switch {
	case direction == Horizontal && that.Column() < Size-1:
		return FromIndex(that.ix + 1), true
	case direction == Vertical && that.Row() < Size-1:
		return FromIndex(that.ix + Size), true
	default:
		return Index{}, false
	}
}

// TryPrevious - returns the neighbour before this index along the given axis,
// or false when the index sits on the first column/row.
func (that Index) TryPrevious(direction Direction) (Index, bool) {
	switch {
	case direction == Horizontal && that.Column() > 0:
		return FromIndex(that.ix - 1), true
	case direction == Vertical && that.Row() > 0:
		return FromIndex(that.ix - Size), true
	default:
		return Index{}, false
	}
}

func (that Index) NextColumn() Index {
	if that.Column() >= Size-1 {
		panic("already at last column")
	}

	return FromIndex(that.ix + 1)
}

func (that Index) NextRow() Index {
	if that.Row() >= Size-1 {
		panic("already at last row")
	}

	return FromIndex(that.ix + Size)
}

func (that Index) PreviousColumn() Index {
	if that.Column() == 0 {
		panic("already at first column")
	}

	return FromIndex(that.ix - 1)
}

func (that Index) PreviousRow() Index {
	if that.Row() == 0 {
		panic("already at first row")
	}

	return FromIndex(that.ix - Size)
}

// Add - shifts the linear position forward. Panics when leaving the board.
func (that Index) Add(n int) Index {
	return FromIndex(that.ix + n)
}

// Sub - shifts the linear position backward. Panics when leaving the board.
func (that Index) Sub(n int) Index {
	return FromIndex(that.ix - n)
}

// Compare - orders indices by linear position, returning -1, 0 or +1.
func (that Index) Compare(other Index) int {
	switch {
	case that.ix < other.ix:
		return -1
	case that.ix > other.ix:
		return 1
	default:
		return 0
	}
}

func (that Index) Less(other Index) bool {
	return that.ix < other.ix
}

func (that Index) String() string {
	return string([]byte{byte('A' + that.Column()), byte('1' + that.Row())})
}

func (that Index) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Index) UnmarshalText(text []byte) error {
	ix, err := ParseIndex(string(text))
	if err != nil {
		return err
	}

	*that = ix

	return nil
}
