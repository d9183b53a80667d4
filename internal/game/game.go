package game

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
)

const (
	PlayerX uint8 = 0
	PlayerO uint8 = 1
)

var (
	ErrCannotResetToEmpty    = errors.New("cannot reset square to empty")
	ErrSquareAlreadyHasValue = errors.New("square already has a value")
	ErrWrongPlayerSetOrder   = errors.New("wrong player set order")
)

// ErrorKind classifies why Set refused a move.
type ErrorKind int

const (
	CannotResetToEmpty ErrorKind = iota
	SquareAlreadyHasValue
	WrongPlayerSetOrder
)

func (that ErrorKind) String() string {
	switch that {
	case CannotResetToEmpty:
		return "CannotResetToEmpty"
	case SquareAlreadyHasValue:
		return "SquareAlreadyHasValue"
	case WrongPlayerSetOrder:
		return "WrongPlayerSetOrder"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(that))
	}
}

func (that ErrorKind) sentinel() error {
	switch that {
	case CannotResetToEmpty:
		return ErrCannotResetToEmpty
	case SquareAlreadyHasValue:
		return ErrSquareAlreadyHasValue
	default:
		return ErrWrongPlayerSetOrder
	}
}

// SetError is returned by Game.Set. It unwraps to one of the Err* sentinels above.
type SetError struct {
	Kind  ErrorKind
	Index board.Index
}

func (that *SetError) Error() string {
	return fmt.Sprintf("square %s: %v", that.Index, that.Kind.sentinel())
}

func (that *SetError) Unwrap() error {
	return that.Kind.sentinel()
}

// SquareAccessor is the minimal read/write capability Game needs from a board.
type SquareAccessor interface {
	Get(ix board.Index) board.SquareContent
	Set(ix board.Index, value board.SquareContent)
}

// Game enforces alternating, write-once moves on top of a SquareAccessor.
// It is not safe for concurrent use.
type Game[T SquareAccessor] struct {
	content       T
	currentPlayer uint8
}

// New - wraps content with player X to move.
func New[T SquareAccessor](content T) *Game[T] {
	return NewWithPlayer(content, PlayerX)
}

// NewWithPlayer - wraps content that is already in play. Panics if player is not 0 or 1.
func NewWithPlayer[T SquareAccessor](content T, player uint8) *Game[T] {
	if player > PlayerO {
		panic("player out of bounds")
	}

	return &Game[T]{
		content:       content,
		currentPlayer: player,
	}
}

// Set - writes value into ix. Checks run in order: empty value, occupied square,
// then board validity. A move that breaks validity is rolled back.
func (that *Game[T]) Set(ix board.Index, value board.SquareContent) error {
	if value == board.Empty {
		return &SetError{Kind: CannotResetToEmpty, Index: ix}
	}

	current := that.content.Get(ix)
	if current != board.Empty {
		return &SetError{Kind: SquareAlreadyHasValue, Index: ix}
	}

	that.content.Set(ix, value)

	if !that.Valid() {
		that.content.Set(ix, current)
		return &SetError{Kind: WrongPlayerSetOrder, Index: ix}
	}

	that.currentPlayer = (that.currentPlayer + 1) % 2

	return nil
}

// Valid - reports whether neither side is more than one move ahead.
// It only looks at the signed sum of the board, so it cannot tell which side
// should have moved; an out of turn move that keeps the sum in range passes.
func (that *Game[T]) Valid() bool {
	sum := 0
	for ix := range board.Cells {
		switch that.content.Get(board.FromIndex(ix)) {
		case board.X:
			sum++
		case board.O:
			sum--
		}
	}

	return sum >= -1 && sum <= 1
}

func (that *Game[T]) WhoIsNext() uint8 {
	return that.currentPlayer
}

func (that *Game[T]) Content() T {
	return that.content
}

// MarkFor - returns the mark player 0 (X) or player 1 (O) puts on the board.
func MarkFor(player uint8) board.SquareContent {
	if player == PlayerO {
		return board.O
	}

	return board.X
}
