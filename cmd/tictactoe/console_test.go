package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

func newTestConsole() (*console, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	output := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))

	return &console{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		renderer: render.NewWithOutput(output),
	}, buf
}

func TestConsole_Run(t *testing.T) {
	t.Run("X wins on the top row", func(t *testing.T) {
		// Given: moves that give X the top row
		cli, out := newTestConsole()
		in := strings.NewReader("A1\nA2\nB1\nB2\nC1\n")

		// When: the match is played
		err := cli.Run(in)

		// Then: the winner is announced
		require.NoError(t, err)
		assert.Contains(t, out.String(), "X wins!")
		assert.Contains(t, out.String(), "┃XX|XX|XX┃")
	})

	t.Run("Reports bad input and keeps going", func(t *testing.T) {
		cli, out := newTestConsole()
		in := strings.NewReader("Z9\nA1\nA1\n")

		err := cli.Run(in)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "invalid column")
		assert.Contains(t, out.String(), "square already has a value")
		assert.Contains(t, out.String(), "O to move: ")
		assert.NotContains(t, out.String(), "wins!")
	})

	t.Run("Ends on a tie", func(t *testing.T) {
		cli, out := newTestConsole()
		in := strings.NewReader("A1\nB1\nC1\nB2\nA2\nC2\nB3\nA3\nC3\n")

		err := cli.Run(in)

		require.NoError(t, err)
		assert.Contains(t, out.String(), "It's a tie!")
	})

	t.Run("Quits on request", func(t *testing.T) {
		cli, out := newTestConsole()

		err := cli.Run(strings.NewReader("A1\nq\nB1\n"))

		require.NoError(t, err)
		assert.Contains(t, out.String(), "O to move: ")
		assert.NotContains(t, out.String(), "┃XX|OO|")
	})

	t.Run("Bot answers every move", func(t *testing.T) {
		// Given: a console with the bot playing O
		cli, out := newTestConsole()
		cli.bot = service.NewBotService()

		// When: X makes one move
		err := cli.Run(strings.NewReader("B2\n"))

		// Then: one O square was drawn and X is to move again
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out.String(), "X to move: "))
		assert.Equal(t, 1, strings.Count(out.String(), "OO"))
	})
}
