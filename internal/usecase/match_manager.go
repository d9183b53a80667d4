package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type botPlayer interface {
	MakeTurn(match *entity.Match) (board.Index, error)
}

type MatchManager struct {
	logger    *slog.Logger
	matchRepo matchRepo
	bot       botPlayer
}

func NewMatchManager(logger *slog.Logger, matchRepo matchRepo, bot botPlayer) *MatchManager {
	return &MatchManager{
		logger: logger.With("component", "match_manager"),

		matchRepo: matchRepo,
		bot:       bot,
	}
}

// CreateMatch - starts a new match on an empty board and stores it.
func (that *MatchManager) CreateMatch(ctx context.Context) (*entity.Match, error) {
	match := entity.NewMatch(uuid.NewString())

	if err := that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	that.logger.Debug("match created", "match_id", match.ID)

	return match, nil
}

func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	return match, nil
}

// MakeMove - parses square and mark, applies the move and stores the match.
// Parse failures wrap apperror.ErrInvalidMove, rule violations wrap game.SetError.
func (that *MatchManager) MakeMove(ctx context.Context, id, square, mark string) (*entity.Match, error) {
	log := that.logger.With("method", "MakeMove", "match_id", id)

	ix, err := board.ParseIndex(square)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	value, err := board.ParseSquare(mark)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	match, err := that.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = match.MakeTurn(value, ix); err != nil {
		log.Debug("move rejected", "square", ix.String(), "mark", value.String(), "error", err)
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	if match.IsFinished() {
		log.Info("match finished", "winner", match.Winner)
	}

	return match, nil
}

// MakeBotMove - lets the bot play the side to move and stores the match.
func (that *MatchManager) MakeBotMove(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	ix, err := that.bot.MakeTurn(match)
	if err != nil {
		return nil, fmt.Errorf("failed to make bot turn: %w", err)
	}

	if err = that.matchRepo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	that.logger.Debug("bot moved", "match_id", id, "square", ix.String())

	return match, nil
}

func (that *MatchManager) DeleteMatch(ctx context.Context, id string) error {
	if err := that.matchRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// RenderBoard - returns the bordered grid of the match board.
func (that *MatchManager) RenderBoard(ctx context.Context, id string) (string, error) {
	match, err := that.GetMatch(ctx, id)
	if err != nil {
		return "", err
	}

	return match.Render(), nil
}
