package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"jump61/meta"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const envPrefix = "JUMP61_"

type Config struct {
	Size       int
	Red        string // random|greedy|minimax|human
	Blue       string
	Depth      int // 0 uses size-1
	Goroutines int
	Seed       uint64
	MaxTurns   int
	LogLevel   string
	Experiment string // Runs the named experiment instead of a single game
	Games      int
	OutputDir  string
}

func defaults() Config {
	return Config{
		Size:       meta.DefaultSize,
		Red:        "human",
		Blue:       "minimax",
		Goroutines: 1,
		MaxTurns:   meta.MaxTurns,
		LogLevel:   "info",
		Games:      meta.GamesPerMatchUp,
		OutputDir:  meta.OutputDir,
	}
}

// Load reads envFile (if it exists) into the environment, then JUMP61_*
// variables, then args. Later sources override earlier ones.
func Load(envFile string, args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	c := defaults()
	var err error
	c.Size, err = getenvInt("SIZE", c.Size)
	if err != nil {
		return Config{}, err
	}
	c.Red = getenv("RED", c.Red)
	c.Blue = getenv("BLUE", c.Blue)
	if c.Depth, err = getenvInt("DEPTH", c.Depth); err != nil {
		return Config{}, err
	}
	if c.Goroutines, err = getenvInt("GOROUTINES", c.Goroutines); err != nil {
		return Config{}, err
	}
	if seed := os.Getenv(envPrefix + "SEED"); seed != "" {
		if c.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
	}
	if c.MaxTurns, err = getenvInt("MAX_TURNS", c.MaxTurns); err != nil {
		return Config{}, err
	}
	c.LogLevel = getenv("LOG_LEVEL", c.LogLevel)
	c.Experiment = getenv("EXPERIMENT", c.Experiment)
	if c.Games, err = getenvInt("GAMES", c.Games); err != nil {
		return Config{}, err
	}
	c.OutputDir = getenv("OUTPUT_DIR", c.OutputDir)

	flags := flag.NewFlagSet("jump61", flag.ContinueOnError)
	flags.IntVar(&c.Size, "size", c.Size, "Board edge length")
	flags.StringVar(&c.Red, "red", c.Red, "Red player: random, greedy, minimax or human")
	flags.StringVar(&c.Blue, "blue", c.Blue, "Blue player: random, greedy, minimax or human")
	flags.IntVar(&c.Depth, "depth", c.Depth, "Minimax search depth (0 for size-1)")
	flags.IntVar(&c.Goroutines, "goroutines", c.Goroutines, "Number of goroutines for the parallel root search")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Random strategy seed (0 for time based)")
	flags.IntVar(&c.MaxTurns, "max-turns", c.MaxTurns, "Maximum number of placements per game")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
	flags.StringVar(&c.Experiment, "experiment", c.Experiment, "Experiment to run: strategy or parallelization")
	flags.IntVar(&c.Games, "games", c.Games, "Games per experiment match-up")
	flags.StringVar(&c.OutputDir, "out", c.OutputDir, "Experiment output directory")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	return c, c.validate()
}

func (c Config) validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("size must be positive, got %d", c.Size)
	case c.Depth < 0:
		return fmt.Errorf("depth must not be negative, got %d", c.Depth)
	case c.Goroutines < 1:
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	case c.MaxTurns < 1:
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	case c.Games < 1:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	return nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s%s: %w", envPrefix, key, err)
	}
	return parsed, nil
}
