package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	NoWinner = ""
)

// WinCombos lists the eight lines that win the game.
var WinCombos = [8][3]board.Index{
	{board.MustParseIndex("A1"), board.MustParseIndex("B1"), board.MustParseIndex("C1")},
	{board.MustParseIndex("A2"), board.MustParseIndex("B2"), board.MustParseIndex("C2")},
	{board.MustParseIndex("A3"), board.MustParseIndex("B3"), board.MustParseIndex("C3")},
	{board.MustParseIndex("A1"), board.MustParseIndex("A2"), board.MustParseIndex("A3")},
	{board.MustParseIndex("B1"), board.MustParseIndex("B2"), board.MustParseIndex("B3")},
	{board.MustParseIndex("C1"), board.MustParseIndex("C2"), board.MustParseIndex("C3")},
	{board.MustParseIndex("A1"), board.MustParseIndex("B2"), board.MustParseIndex("C3")},
	{board.MustParseIndex("C1"), board.MustParseIndex("B2"), board.MustParseIndex("A3")},
}

type Match struct {
	ID      string        `json:"id"`
	Board   board.Content `json:"board"`
	Turn    uint8         `json:"turn"`
	Winner  string        `json:"winner"`
	Status  string        `json:"status"`
	History []board.Index `json:"history,omitempty"`
}

func NewMatch(id string) *Match {
	return &Match{
		ID:     id,
		Board:  board.New(),
		Turn:   game.PlayerX,
		Status: StatusOngoing,
	}
}

// DetermineResult - returns the winning mark, PlayerTie on a full board, or NoWinner.
func (that *Match) DetermineResult() string {
	for _, combo := range WinCombos {
		a, b, c := that.Board.Get(combo[0]), that.Board.Get(combo[1]), that.Board.Get(combo[2])
		if a != board.Empty && a == b && b == c {
			return a.String()
		}
	}

	// the match goes on while any square is free
	for square := range that.Board.All() {
		if square == board.Empty {
			return NoWinner
		}
	}

	return PlayerTie
}

func (that *Match) UpdateState() {
	switch winner := that.DetermineResult(); winner {
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
	default:
		that.Status = StatusOngoing
	}
}

// MakeTurn - places mark on ix through the game rules and refreshes the result.
func (that *Match) MakeTurn(mark board.SquareContent, ix board.Index) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn > game.PlayerO {
		return fmt.Errorf("%w: turn %d", apperror.ErrUnknownMatchStatus, that.Turn)
	}

	if mark != that.NextMark() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, apperror.ErrNotYourTurn)
	}

	gameInstance := game.NewWithPlayer(&that.Board, that.Turn)
	if err := gameInstance.Set(ix, mark); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.Turn = gameInstance.WhoIsNext()
	that.History = append(that.History, ix)
	that.UpdateState()

	return nil
}

// NextMark - returns the mark expected on the next move.
func (that *Match) NextMark() board.SquareContent {
	return game.MarkFor(that.Turn)
}

func (that *Match) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Match) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Match) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrMatchFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownMatchStatus, that.Status)
	}
}

func (that *Match) Render() string {
	return that.Board.String()
}
