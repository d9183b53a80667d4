package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	matchKeyPrefix = "match:"

	fieldBoard = "board"
	fieldState = "state"
)

type MatchRepository interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

// dbMatchState is everything but the id and the board, which live in the key and in their own field.
type dbMatchState struct {
	Turn    uint8         `json:"turn"`
	Winner  string        `json:"winner"`
	Status  string        `json:"status"`
	History []board.Index `json:"history,omitempty"`
}

type dbMatch struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMatchRepository - stores matches as Redis hashes. A zero ttl keeps them forever.
func NewMatchRepository(client *redis.Client, ttl time.Duration) MatchRepository {
	return &dbMatch{
		client: client,
		ttl:    ttl,
	}
}

func matchKey(id string) string {
	return matchKeyPrefix + id
}

func (that *dbMatch) CreateOrUpdate(ctx context.Context, match *entity.Match) error {
	stateJSON, err := json.Marshal(dbMatchState{
		Turn:    match.Turn,
		Winner:  match.Winner,
		Status:  match.Status,
		History: match.History,
	})
	if err != nil {
		return fmt.Errorf("could not marshal match state: %w", err)
	}

	boardBytes := match.Board.Bytes()
	key := matchKey(match.ID)

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fieldBoard, boardBytes[:], fieldState, stateJSON)
		if that.ttl > 0 {
			pipe.Expire(ctx, key, that.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.Match, error) {
	fields, err := that.client.HGetAll(ctx, matchKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get match by id: %w", err)
	}

	if len(fields) == 0 {
		return nil, apperror.ErrMatchNotFound
	}

	content, err := board.FromBytes([]byte(fields[fieldBoard]))
	if err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}

	var state dbMatchState
	if err = json.Unmarshal([]byte(fields[fieldState]), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match state: %w", err)
	}

	return &entity.Match{
		ID:      id,
		Board:   content,
		Turn:    state.Turn,
		Winner:  state.Winner,
		Status:  state.Status,
		History: state.History,
	}, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, matchKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete match by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}
