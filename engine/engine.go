package engine

import (
	"jump61/experiments/metrics"
	"jump61/game"
)

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached
	Run() (winner game.Side, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Reporter is told about every placement applied to the authoritative board.
type Reporter func(side game.Side, row, col int)
