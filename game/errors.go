package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("no move to undo")
	ErrOutOfBounds  = errors.New("square out of range")
	ErrSpotCount    = errors.New("spot count must be at least 1")
	ErrBoardSize    = errors.New("board size must be at least 1")
)

// MoveError reports a placement rejected by the legality gate.
type MoveError struct {
	Side Side
	Row  int
	Col  int
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%d %d is not a valid move for %s", e.Row, e.Col, e.Side)
}

func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}
