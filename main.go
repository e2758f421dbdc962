package main

import (
	"fmt"
	"jump61/config"
	"jump61/engine"
	"jump61/experiments"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/searcher"
	"jump61/searcher/agent"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Experiment != "" {
		err = runExperiment(cfg)
	} else {
		err = runGame(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("jump61 failed")
	}
}

func runExperiment(cfg config.Config) error {
	x, err := experiments.ByName(cfg.Experiment, cfg.Size, cfg.Games, cfg.Seed)
	if err != nil {
		return err
	}
	x.MaxTurns = cfg.MaxTurns

	dir, err := x.Run(cfg.OutputDir)
	if err != nil {
		return err
	}
	fmt.Printf("Results written to %s\n", dir)
	return nil
}

func runGame(cfg config.Config) error {
	red, err := createAgent(game.Red, cfg.Red, cfg)
	if err != nil {
		return err
	}
	blue, err := createAgent(game.Blue, cfg.Blue, cfg)
	if err != nil {
		return err
	}

	e, err := engine.NewLocalEngine(cfg.Size, red, blue,
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithReporter(func(side game.Side, row, col int) {
			fmt.Printf("%s moves %d %d\n", side, row, col)
		}),
	)
	if err != nil {
		return err
	}

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Print(e.Board())
	if winner == game.Neutral {
		fmt.Printf("No winner after %d turns.\n", cfg.MaxTurns)
	} else {
		fmt.Printf("%s wins.\n", winner)
	}
	return nil
}

func createAgent(side game.Side, name string, cfg config.Config) (agent.Agent, error) {
	if name == "human" {
		return agent.NewPromptingAgent(agent.NewHumanAgent(side, os.Stdin), os.Stdout), nil
	}

	strategy, err := searcher.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	collector := metrics.NewCollector()
	options := []searcher.Option{searcher.WithMetrics(collector), searcher.WithGoroutines(cfg.Goroutines)}
	if cfg.Depth > 0 {
		options = append(options, searcher.WithDepth(cfg.Depth))
	}
	if cfg.Seed != 0 {
		options = append(options, searcher.WithSeed(cfg.Seed))
	}

	s, err := searcher.New(strategy, options...)
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(side, s, collector), nil
}
