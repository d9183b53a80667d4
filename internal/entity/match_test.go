package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

func matchWithBoard(t *testing.T, compact string) *Match {
	t.Helper()

	content, err := board.ParseCompact(compact)
	require.NoError(t, err)

	match := NewMatch("123")
	match.Board = content

	return match
}

func TestMatchStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when match status is finished", func(t *testing.T) {
		// Given: a match with StatusFinished
		match := &Match{Status: StatusFinished}

		// Then: it should be finished and not ongoing
		assert.True(t, match.IsFinished())
		assert.False(t, match.IsOngoing())
	})

	t.Run("IsOngoing returns true when match status is ongoing", func(t *testing.T) {
		match := &Match{Status: StatusOngoing}

		assert.True(t, match.IsOngoing())
		assert.False(t, match.IsFinished())
	})
}

func TestMatch_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when match is ongoing", func(t *testing.T) {
		// Given: a match with StatusOngoing
		match := &Match{Status: StatusOngoing}

		// When: checking if the match is active
		err := match.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrMatchFinished when match is finished", func(t *testing.T) {
		match := &Match{Status: StatusFinished}

		err := match.ConfirmOngoingState()

		assert.ErrorIs(t, err, apperror.ErrMatchFinished)
	})

	t.Run("Returns error for unknown match status", func(t *testing.T) {
		// Given: a match with unknown status
		match := &Match{Status: "unknown"}

		// When: checking if the match is active
		err := match.ConfirmOngoingState()

		// Then: it should return an error naming the status
		require.ErrorIs(t, err, apperror.ErrUnknownMatchStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestMatch_DetermineResult(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		expected string
	}{
		{name: "X wins on the top row", board: "XXX      ", expected: PlayerX},
		{name: "O wins on the middle column", board: " O  O  O ", expected: PlayerO},
		{name: "X wins on a diagonal", board: "X   X   X", expected: PlayerX},
		{name: "O wins on the anti-diagonal", board: "  O O O  ", expected: PlayerO},
		{name: "Full board without a line is a tie", board: "XOXOXOOXO", expected: PlayerTie},
		{name: "Open board has no result", board: "XO  X   O", expected: NoWinner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a match with the board laid out
			match := matchWithBoard(t, tt.board)

			// When: determining the result
			result := match.DetermineResult()

			// Then: it matches the expected outcome
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMatch_UpdateState(t *testing.T) {
	t.Run("Finishes the match when X wins", func(t *testing.T) {
		// Given: a match where X has a winning line
		match := matchWithBoard(t, "XXX OO   ")

		// When: updating the state
		match.UpdateState()

		// Then: the match is finished with X as the winner
		assert.Equal(t, StatusFinished, match.Status)
		assert.Equal(t, PlayerX, match.Winner)
	})

	t.Run("Finishes the match on a tie", func(t *testing.T) {
		match := matchWithBoard(t, "XOXOXOOXO")

		match.UpdateState()

		assert.Equal(t, StatusFinished, match.Status)
		assert.Equal(t, PlayerTie, match.Winner)
	})

	t.Run("Stays ongoing without a result", func(t *testing.T) {
		match := matchWithBoard(t, "XO  X   O")

		match.UpdateState()

		assert.Equal(t, StatusOngoing, match.Status)
		assert.Equal(t, NoWinner, match.Winner)
	})
}

func TestMatch_MakeTurn(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		// Given: a new match
		match := NewMatch("123")

		// When: X plays the centre
		err := match.MakeTurn(board.X, board.MustParseIndex("B2"))
		require.NoError(t, err)

		// Then: the board holds X and O is next
		assert.Equal(t, board.X, match.Board.At(4))
		assert.Equal(t, game.PlayerO, match.Turn)
		assert.Equal(t, board.O, match.NextMark())
		assert.Equal(t, []board.Index{board.MustParseIndex("B2")}, match.History)
		assert.Equal(t, StatusOngoing, match.Status)
	})

	t.Run("Error on square already occupied", func(t *testing.T) {
		// Given: a match where A1 holds X
		match := NewMatch("123")
		require.NoError(t, match.MakeTurn(board.X, board.MustParseIndex("A1")))

		// When: O tries the same square
		err := match.MakeTurn(board.O, board.MustParseIndex("A1"))

		// Then: the move is rejected and the match is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, game.ErrSquareAlreadyHasValue)

		var setErr *game.SetError
		require.ErrorAs(t, err, &setErr)
		assert.Equal(t, board.MustParseIndex("A1"), setErr.Index)
		assert.Equal(t, game.PlayerO, match.Turn)
		assert.Len(t, match.History, 1)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new match where X moves first
		match := NewMatch("123")

		// When: O tries to open
		err := match.MakeTurn(board.O, board.MustParseIndex("A2"))

		// Then: it is rejected without touching the board
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, board.New(), match.Board)
		assert.Equal(t, game.PlayerX, match.Turn)
	})

	t.Run("Error on empty mark", func(t *testing.T) {
		match := NewMatch("123")

		err := match.MakeTurn(board.Empty, board.MustParseIndex("A2"))

		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Winning move finishes the match", func(t *testing.T) {
		// Given: a match where X is one move from the top row
		match := NewMatch("123")
		moves := []struct {
			mark   board.SquareContent
			square string
		}{
			{board.X, "A1"}, {board.O, "A2"}, {board.X, "B1"}, {board.O, "B2"},
		}
		for _, move := range moves {
			require.NoError(t, match.MakeTurn(move.mark, board.MustParseIndex(move.square)))
		}

		// When: X completes the line
		err := match.MakeTurn(board.X, board.MustParseIndex("C1"))
		require.NoError(t, err)

		// Then: the match is finished and further moves fail
		assert.Equal(t, StatusFinished, match.Status)
		assert.Equal(t, PlayerX, match.Winner)
		assert.ErrorIs(t, match.MakeTurn(board.O, board.MustParseIndex("C3")), apperror.ErrMatchFinished)
	})
}

func TestMatch_JSON(t *testing.T) {
	// Given: a match with one move
	match := NewMatch("abc")
	require.NoError(t, match.MakeTurn(board.X, board.MustParseIndex("C3")))

	// When: it is encoded and decoded
	data, err := json.Marshal(match)
	require.NoError(t, err)

	var decoded Match
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Then: the board travels compact and squares travel by name
	assert.JSONEq(t,
		`{"id":"abc","board":"        X","turn":1,"winner":"","status":"ongoing","history":["C3"]}`,
		string(data))
	assert.Equal(t, *match, decoded)
}
