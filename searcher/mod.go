package searcher

import (
	"errors"
	"fmt"
	"jump61/game"
	"math"
)

// Scores for decided positions, before adjusting by distance from the root.
// Loss is the negation of Win so scores can be negated between plies without
// overflow.
const (
	Win  = math.MaxInt32
	Loss = -Win
)

var (
	ErrNoLegalMove     = errors.New("no legal move")
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Searcher selects a move for side on b. Implementations never mutate b.
type Searcher interface {
	SelectMove(side game.Side, b *game.Board) (int, error)
}

type Strategy int

const (
	RandomStrategy Strategy = iota
	GreedyStrategy
	MinimaxStrategy
)

func (s Strategy) String() string {
	switch s {
	case RandomStrategy:
		return "random"
	case GreedyStrategy:
		return "greedy"
	case MinimaxStrategy:
		return "minimax"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "random":
		return RandomStrategy, nil
	case "greedy":
		return GreedyStrategy, nil
	case "minimax":
		return MinimaxStrategy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// New returns the searcher implementing strategy.
func New(strategy Strategy, options ...Option) (Searcher, error) {
	switch strategy {
	case RandomStrategy:
		return NewRandom(options...), nil
	case GreedyStrategy:
		return NewGreedy(options...), nil
	case MinimaxStrategy:
		return NewMinimax(options...), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
}

func legalMoves(side game.Side, b *game.Board) []int {
	n := b.Size() * b.Size()
	moves := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if b.IsLegal(side, i) {
			moves = append(moves, i)
		}
	}
	return moves
}

func hasLegalMove(side game.Side, b *game.Board) bool {
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		if b.IsLegal(side, i) {
			return true
		}
	}
	return false
}

// play and undo operate on a searcher's private clone with moves it has
// already checked, so failures are broken invariants.
func play(b *game.Board, side game.Side, i int) {
	if err := b.AddSpot(side, i); err != nil {
		panic(fmt.Sprintf("search played an illegal move: %v", err))
	}
}

func undo(b *game.Board) {
	if err := b.Undo(); err != nil {
		panic(fmt.Sprintf("search undo without a move: %v", err))
	}
}
