package service

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(match *entity.Match) (board.Index, error)
}

type botService struct {
	pick func(n int) int
}

func NewBotService() BotService {
	return &botService{pick: rand.IntN}
}

// MakeTurn - plays the side to move on a random free square and returns that square.
func (that *botService) MakeTurn(match *entity.Match) (board.Index, error) {
	if err := match.ConfirmOngoingState(); err != nil {
		return board.Index{}, err
	}

	availableSquares := make([]board.Index, 0, board.Cells)
	for ix, square := range match.Board.Cells() {
		if square == board.Empty {
			availableSquares = append(availableSquares, ix)
		}
	}

	if len(availableSquares) == 0 {
		return board.Index{}, ErrNoAvailableMoves
	}

	chosen := availableSquares[that.pick(len(availableSquares))]

	if err := match.MakeTurn(match.NextMark(), chosen); err != nil {
		return board.Index{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return chosen, nil
}
