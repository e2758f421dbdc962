package engine

import (
	"fmt"
	"jump61/experiments/metrics"
	"jump61/game"
	"jump61/meta"
	"jump61/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	board    *game.Board
	agents   map[game.Side]agent.Agent
	reporter Reporter
	listener game.Listener
	maxTurns int
}

type Option func(*LocalEngine)

func WithReporter(reporter Reporter) Option {
	return func(e *LocalEngine) {
		e.reporter = reporter
	}
}

// WithListener is passed on to the authoritative board.
func WithListener(listener game.Listener) Option {
	return func(e *LocalEngine) {
		e.listener = listener
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func NewLocalEngine(size int, red, blue agent.Agent, options ...Option) (*LocalEngine, error) {
	if red.Side() != game.Red || blue.Side() != game.Blue {
		return nil, fmt.Errorf("agents play %s and %s, want red and blue", red.Side(), blue.Side())
	}

	e := &LocalEngine{
		agents:   map[game.Side]agent.Agent{game.Red: red, game.Blue: blue},
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}

	var boardOptions []game.Option
	if e.listener != nil {
		boardOptions = append(boardOptions, game.WithListener(e.listener))
	}
	board, err := game.NewBoard(size, boardOptions...)
	if err != nil {
		return nil, err
	}
	e.board = board
	return e, nil
}

// Board returns the authoritative board. Callers must not mutate it while Run is in progress.
func (e *LocalEngine) Board() *game.Board {
	return e.board
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	side := game.Red
	n := e.board.Size()
	gameMetric := metrics.GameMetric{
		Size:         n,
		StartingSide: side,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Int("size", n).Msgf("%s is starting", side)

	turn := 1
	for e.board.Winner() == game.Neutral && turn <= e.maxTurns {
		// Agents get a copy so only the engine mutates the authoritative board
		i, searchMetric, err := e.agents[side].FindMove(e.board.Copy())
		if err != nil {
			return game.Neutral, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if i < 0 || i >= n*n {
			return game.Neutral, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s played square %d: %w", turn, side, i, game.ErrOutOfBounds)
		}
		row, col := e.board.Row(i), e.board.Col(i)
		if !e.board.IsLegal(side, i) {
			return game.Neutral, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, &game.MoveError{Side: side, Row: row, Col: col})
		}

		if err := e.board.AddSpot(side, i); err != nil {
			return game.Neutral, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Side:         side,
			Row:          row,
			Col:          col,
			SearchMetric: searchMetric,
		})
		log.Debug().Int("turn", turn).Int("row", row).Int("col", col).Msgf("%s moves", side)
		if e.reporter != nil {
			e.reporter(side, row, col)
		}

		side = side.Opposite()
		turn++
	}

	winner := e.board.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.Neutral {
		log.Info().Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration).Msgf("%s wins", winner)
	} else {
		log.Info().Msgf("stopped after %d turns with no winner", e.maxTurns)
	}

	return winner, gameMetric, moveMetrics, nil
}
