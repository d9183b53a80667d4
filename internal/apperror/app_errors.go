package apperror

import "errors"

var (
	ErrMatchFinished      = errors.New("match is already finished")
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidMove        = errors.New("invalid move")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrUnknownMatchStatus = errors.New("unknown match status")
)
