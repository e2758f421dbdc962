package agent

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"
)

type searchAgent struct {
	side      game.Side
	searcher  searcher.Searcher
	collector metrics.Collector
}

// NewSearchAgent returns an automated agent playing side. The collector must
// be the one the searcher was built with, or nil when metrics are not needed.
func NewSearchAgent(side game.Side, s searcher.Searcher, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return searchAgent{side: side, searcher: s, collector: collector}
}

func (a searchAgent) Side() game.Side {
	return a.side
}

func (a searchAgent) FindMove(b *game.Board) (int, metrics.SearchMetric, error) {
	move, err := a.searcher.SelectMove(a.side, b)
	if err != nil {
		return 0, metrics.SearchMetric{}, fmt.Errorf("%s search: %w", a.side, err)
	}
	return move, a.collector.Complete(), nil
}
