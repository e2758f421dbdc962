package experiments

import (
	"fmt"
	"jump61/engine"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"
	"jump61/searcher/agent"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Experiment struct {
	Name     string
	Size     int
	Games    int // Per match up
	MaxTurns int // 0 uses the engine default
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
}

// StrategyExperiment pairs every strategy against a greedy baseline.
func StrategyExperiment(size, games int, seed uint64) Experiment {
	baseline := metrics.AgentConfig{ID: 0, Strategy: searcher.GreedyStrategy.String(), Goroutines: 1}
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: searcher.RandomStrategy.String(), Goroutines: 1, Seed: seed},
		{ID: 2, Strategy: searcher.GreedyStrategy.String(), Goroutines: 1},
		{ID: 3, Strategy: searcher.MinimaxStrategy.String(), Depth: 1, Goroutines: 1},
		{ID: 4, Strategy: searcher.MinimaxStrategy.String(), Depth: 2, Goroutines: 1},
	}

	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	return Experiment{
		Name:     "strategy",
		Size:     size,
		Games:    games,
		Configs:  append(configs, baseline),
		MatchUps: matchUps,
	}
}

// ByName returns the named experiment.
func ByName(name string, size, games int, seed uint64) (Experiment, error) {
	switch name {
	case "strategy":
		return StrategyExperiment(size, games, seed), nil
	case "parallelization":
		return ParallelizationExperiment(size, games), nil
	}
	return Experiment{}, fmt.Errorf("unknown experiment %q", name)
}

// Run plays every match up and stores the records under root. It returns the
// directory holding the CSV files.
func (x Experiment) Run(root string) (string, error) {
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), matchUp[0], matchUp[1])

		for i := 0; i < x.Games; i++ {
			// Alternate which agent moves first
			red, blue := matchUp[0], matchUp[1]
			if i%2 == 1 {
				red, blue = blue, red
			}

			winner, gameMetric, moveMetrics, err := x.runGame(red, blue, uint64(i))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			id := uuid.New()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Agent1:     red.ID,
				Agent2:     blue.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s", mi+1, len(x.MatchUps), i+1, x.Games, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	writer, err := metrics.NewWriter(root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func (x Experiment) runGame(red, blue metrics.AgentConfig, round uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	redAgent, err := createAgent(game.Red, red, round)
	if err != nil {
		return game.Neutral, metrics.GameMetric{}, nil, err
	}
	blueAgent, err := createAgent(game.Blue, blue, round)
	if err != nil {
		return game.Neutral, metrics.GameMetric{}, nil, err
	}

	e, err := engine.NewLocalEngine(x.Size, redAgent, blueAgent, engine.WithMaxTurns(x.MaxTurns))
	if err != nil {
		return game.Neutral, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

// createAgent builds a metric-collecting search agent. Random agents are
// reseeded every round so repeated games differ but stay reproducible.
func createAgent(side game.Side, config metrics.AgentConfig, round uint64) (agent.Agent, error) {
	strategy, err := searcher.ParseStrategy(config.Strategy)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector()
	options := []searcher.Option{searcher.WithMetrics(collector)}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 1 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if strategy == searcher.RandomStrategy {
		options = append(options, searcher.WithSeed(config.Seed+round))
	}

	s, err := searcher.New(strategy, options...)
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(side, s, collector), nil
}
