package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
)

const localMatchID = "local"

// console plays one match on a terminal. When bot is set it answers every X move.
type console struct {
	logger   *slog.Logger
	renderer *render.Renderer
	bot      service.BotService
}

// Run - reads coordinates from in until the match ends or in is exhausted.
func (that *console) Run(in io.Reader) error {
	match := entity.NewMatch(localMatchID)
	scanner := bufio.NewScanner(in)

	if err := that.renderer.Write(that.renderer.Board(match.Board)); err != nil {
		return fmt.Errorf("failed to write board: %w", err)
	}

	for match.IsOngoing() {
		if err := that.prompt(match); err != nil {
			return err
		}

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "q" || line == "quit" {
			return nil
		}

		if err := that.play(match, line); err != nil {
			if writeErr := that.renderer.Write(that.renderer.Error(err.Error()) + "\n"); writeErr != nil {
				return fmt.Errorf("failed to write error: %w", writeErr)
			}
			continue
		}

		if that.bot != nil && match.IsOngoing() {
			ix, err := that.bot.MakeTurn(match)
			if err != nil {
				return fmt.Errorf("failed to make bot turn: %w", err)
			}
			that.logger.Debug("bot moved", "square", ix.String())
		}

		if err := that.renderer.Write(that.renderer.Board(match.Board)); err != nil {
			return fmt.Errorf("failed to write board: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	if match.IsFinished() {
		return that.renderer.Write(that.renderer.Message(resultMessage(match)) + "\n")
	}

	return nil
}

func (that *console) prompt(match *entity.Match) error {
	return that.renderer.Write(fmt.Sprintf("%s to move: ", match.NextMark()))
}

// play - applies a coordinate for the side to move.
func (that *console) play(match *entity.Match, line string) error {
	ix, err := board.ParseIndex(line)
	if err != nil {
		return err
	}

	mark := game.MarkFor(match.Turn)
	if err = match.MakeTurn(mark, ix); err != nil {
		return err
	}

	that.logger.Debug("move", "square", ix.String(), "mark", mark.String())

	return nil
}

func resultMessage(match *entity.Match) string {
	if match.Winner == entity.PlayerTie {
		return "It's a tie!"
	}

	return match.Winner + " wins!"
}
