package experiments

import (
	"jump61/experiments/metrics"
	"jump61/searcher"
)

var goroutineCounts = []int{1, 2, 4, 8, 16}

// ParallelizationExperiment measures search throughput of the parallel root
// split. Same config for both players in each game for the same playing
// strength and similar game length.
func ParallelizationExperiment(size, games int) Experiment {
	configs := make([]metrics.AgentConfig, 0, len(goroutineCounts))
	for i, n := range goroutineCounts {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			Strategy:   searcher.MinimaxStrategy.String(),
			Depth:      2,
			Goroutines: n,
		})
	}

	matchUps := make([][2]metrics.AgentConfig, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	return Experiment{
		Name:     "parallelization",
		Size:     size,
		Games:    games,
		Configs:  configs,
		MatchUps: matchUps,
	}
}
