package agent

import (
	"jump61/experiments/metrics"
	"jump61/game"
)

type Agent interface {
	Side() game.Side
	// FindMove returns a square index for Side() on b and performance metrics (if collected) from the search
	FindMove(b *game.Board) (int, metrics.SearchMetric, error)
}
