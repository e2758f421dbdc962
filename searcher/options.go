package searcher

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"time"

	"golang.org/x/exp/rand"
)

type Option func(s *settings)

type settings struct {
	depth      int // Negative uses board size - 1
	bound      int
	goroutines int
	evaluate   game.Evaluate
	rng        *rand.Rand
	metrics    metrics.Collector
}

func newSettings(options []Option) settings {
	s := settings{ // Default values
		depth:      -1,
		bound:      Win,
		goroutines: 1,
		evaluate:   game.EvaluateSquares,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

// WithDepth sets the minimax depth bound. Depth 0 evaluates one ply.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

// WithBound caps root scores: the search stops at the first move scoring at
// least bound.
func WithBound(bound int) Option {
	return func(s *settings) {
		if bound > Loss {
			s.bound = bound
		}
	}
}

// WithGoroutines splits root moves of a minimax search across n goroutines.
func WithGoroutines(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.goroutines = n
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *settings) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func (s settings) depthFor(b *game.Board) int {
	if s.depth >= 0 {
		return s.depth
	}
	return b.Size() - 1
}
