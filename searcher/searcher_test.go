package searcher

import (
	"jump61/experiments/metrics"
	"jump61/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, n int, squares map[int]game.Square) *game.Board {
	t.Helper()
	b, err := game.NewBoard(n)
	require.NoError(t, err)
	for i, sq := range squares {
		require.NoError(t, b.Set(i, sq.Spots, sq.Side))
	}
	return b
}

// winningBoard is a 2×2 board where red captures everything only by playing
// index 3: it overflows into index 2 and then flips blue's index 1.
func winningBoard(t *testing.T) *game.Board {
	return newBoard(t, 2, map[int]game.Square{
		0: {Side: game.Red, Spots: 1},
		1: {Side: game.Blue, Spots: 1},
		2: {Side: game.Red, Spots: 1},
		3: {Side: game.Red, Spots: 2},
	})
}

// randomPosition plays random legal moves from a fresh board, stopping early
// if the game is won.
func randomPosition(t *testing.T, rng *rand.Rand, n, plies int) (*game.Board, game.Side) {
	t.Helper()
	b := newBoard(t, n, nil)
	side := game.Red
	for p := 0; p < plies && b.Winner() == game.Neutral; p++ {
		moves := legalMoves(side, b)
		require.NoError(t, b.AddSpot(side, moves[rng.Intn(len(moves))]))
		side = side.Opposite()
	}
	return b.Copy(), side
}

// referenceValue is plain negamax without pruning. Decided positions are
// scored by their distance ply from the root.
func referenceValue(side game.Side, b *game.Board, depth, ply int) int {
	switch b.Winner() {
	case side:
		return Win - ply
	case side.Opposite():
		return Loss + ply
	}
	_, best := referenceMoves(side, b, depth, ply)
	return best
}

// referenceMoves lists every move with the best exact score.
func referenceMoves(side game.Side, b *game.Board, depth, ply int) ([]int, int) {
	var moves []int
	best := Loss - 1
	for _, i := range legalMoves(side, b) {
		clone := b.Copy()
		if err := clone.AddSpot(side, i); err != nil {
			panic(err)
		}
		var score int
		if depth == 0 {
			score = game.EvaluateSquares(clone, side)
		} else {
			score = -referenceValue(side.Opposite(), clone, depth-1, ply+1)
		}
		switch {
		case score > best:
			best = score
			moves = []int{i}
		case score == best:
			moves = append(moves, i)
		}
	}
	return moves, best
}

func TestParseStrategy(t *testing.T) {
	t.Run("parses every strategy name", func(t *testing.T) {
		for _, s := range []Strategy{RandomStrategy, GreedyStrategy, MinimaxStrategy} {
			got, err := ParseStrategy(s.String())
			require.NoError(t, err)
			require.Equal(t, s, got)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseStrategy("mcts")
		require.ErrorIs(t, err, ErrUnknownStrategy)

		_, err = New(Strategy(9))
		require.ErrorIs(t, err, ErrUnknownStrategy)
	})

	t.Run("builds the matching searcher", func(t *testing.T) {
		s, err := New(GreedyStrategy)
		require.NoError(t, err)
		require.IsType(t, &Greedy{}, s)

		s, err = New(MinimaxStrategy, WithDepth(1))
		require.NoError(t, err)
		require.IsType(t, &Minimax{}, s)
	})
}

func TestSearchersCommonContract(t *testing.T) {
	searchers := map[string]Searcher{
		"random":           NewRandom(WithSeed(1)),
		"greedy":           NewGreedy(),
		"minimax":          NewMinimax(),
		"parallel minimax": NewMinimax(WithGoroutines(4)),
	}

	for name, s := range searchers {
		t.Run(name+" returns a legal move without mutating the board", func(t *testing.T) {
			rng := rand.New(rand.NewSource(3))
			b, side := randomPosition(t, rng, 3, 4)
			before := b.Copy()

			move, err := s.SelectMove(side, b)

			require.NoError(t, err)
			require.True(t, b.IsLegal(side, move), "Move %d should be legal for %s", move, side)
			require.True(t, b.Equal(before), "Search should not mutate the caller's board")
			require.Zero(t, b.Moves())
		})

		t.Run(name+" reports no legal move when the opponent owns the board", func(t *testing.T) {
			b := newBoard(t, 2, map[int]game.Square{
				0: {Side: game.Blue, Spots: 1}, 1: {Side: game.Blue, Spots: 1},
				2: {Side: game.Blue, Spots: 1}, 3: {Side: game.Blue, Spots: 1},
			})

			_, err := s.SelectMove(game.Red, b)

			require.ErrorIs(t, err, ErrNoLegalMove)
		})
	}
}

func TestRandom(t *testing.T) {
	t.Run("only samples legal squares", func(t *testing.T) {
		b := newBoard(t, 3, map[int]game.Square{
			0: {Side: game.Blue, Spots: 1}, 4: {Side: game.Blue, Spots: 2}, 8: {Side: game.Blue, Spots: 1},
		})
		r := NewRandom(WithSeed(42))

		seen := map[int]bool{}
		for k := 0; k < 200; k++ {
			move, err := r.SelectMove(game.Red, b)
			require.NoError(t, err)
			require.True(t, b.IsLegal(game.Red, move))
			seen[move] = true
		}
		require.Len(t, seen, 6, "Every legal square should eventually be sampled")
	})

	t.Run("same seed gives the same sequence", func(t *testing.T) {
		b := newBoard(t, 4, nil)
		r1, r2 := NewRandom(WithSeed(7)), NewRandom(WithSeed(7))

		for k := 0; k < 20; k++ {
			m1, err := r1.SelectMove(game.Blue, b)
			require.NoError(t, err)
			m2, err := r2.SelectMove(game.Blue, b)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
		}
	})
}

func TestGreedy(t *testing.T) {
	t.Run("takes the capturing move", func(t *testing.T) {
		move, err := NewGreedy().SelectMove(game.Red, winningBoard(t))

		require.NoError(t, err)
		require.Equal(t, 3, move)
	})

	t.Run("breaks ties on the lowest index", func(t *testing.T) {
		move, err := NewGreedy().SelectMove(game.Blue, newBoard(t, 3, nil))

		require.NoError(t, err)
		require.Equal(t, 0, move)
	})

	t.Run("uses the configured evaluation function", func(t *testing.T) {
		// Prefer whatever leaves the most spots on the board's last square.
		lastSquare := func(b *game.Board, side game.Side) int {
			return b.Get(b.Size()*b.Size() - 1).Spots
		}
		b := newBoard(t, 2, nil)

		move, err := NewGreedy(WithEvaluationFn(lastSquare)).SelectMove(game.Red, b)

		require.NoError(t, err)
		require.Equal(t, 3, move)
	})

	t.Run("collects one leaf per legal move", func(t *testing.T) {
		collector := metrics.NewCollector()
		_, err := NewGreedy(WithMetrics(collector)).SelectMove(game.Red, newBoard(t, 3, nil))
		require.NoError(t, err)

		require.Equal(t, 9, collector.Complete().Leaves)
	})
}

func TestMinimax(t *testing.T) {
	t.Run("finds the immediate capture at every depth", func(t *testing.T) {
		for depth := 0; depth <= 5; depth++ {
			b := winningBoard(t)

			move, err := NewMinimax(WithDepth(depth)).SelectMove(game.Red, b)

			require.NoError(t, err)
			require.Equal(t, 3, move, "Depth %d should take the winning square", depth)
		}
	})

	t.Run("prefers the immediate capture over a slower forced win", func(t *testing.T) {
		for depth := 1; depth <= 5; depth++ {
			for _, goroutines := range []int{1, 4} {
				moves, score := NewMinimax(WithDepth(depth), WithGoroutines(goroutines)).BestMoves(game.Red, winningBoard(t))

				require.Equal(t, []int{3}, moves, "depth %d goroutines %d", depth, goroutines)
				require.Equal(t, Win-1, score, "Winning on the first ply should score Win-1")
			}
		}
	})

	t.Run("default depth is board size minus one", func(t *testing.T) {
		collector := metrics.NewCollector()
		_, err := NewMinimax(WithMetrics(collector)).SelectMove(game.Red, newBoard(t, 3, nil))
		require.NoError(t, err)

		got := collector.Complete()
		require.Equal(t, 2, got.Depth)
		require.Equal(t, "minimax", got.Strategy)
		require.Positive(t, got.Nodes)
		require.Positive(t, got.Leaves)
	})

	t.Run("exact ties resolve to the lowest index", func(t *testing.T) {
		moves, _ := NewMinimax().BestMoves(game.Red, newBoard(t, 2, nil))
		require.Equal(t, []int{0, 1, 2, 3}, moves, "All corners of a fresh 2x2 board are equivalent")

		move, err := NewMinimax().SelectMove(game.Red, newBoard(t, 2, nil))
		require.NoError(t, err)
		require.Equal(t, 0, move)
	})

	t.Run("depth zero agrees with greedy", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		for k := 0; k < 20; k++ {
			b, side := randomPosition(t, rng, 4, 10)
			if b.Winner() != game.Neutral {
				continue
			}
			want, err := NewGreedy().SelectMove(side, b)
			require.NoError(t, err)

			got, err := NewMinimax(WithDepth(0)).SelectMove(side, b)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("pruning does not change the result", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		for k := 0; k < 25; k++ {
			b, side := randomPosition(t, rng, 3, rng.Intn(8))
			if b.Winner() != game.Neutral {
				continue
			}
			for depth := 1; depth <= 3; depth++ {
				wantMoves, wantScore := referenceMoves(side, b, depth, 0)

				gotMoves, gotScore := NewMinimax(WithDepth(depth)).BestMoves(side, b)

				require.Equal(t, wantScore, gotScore, "position %d depth %d\n%s", k, depth, b)
				require.Equal(t, wantMoves, gotMoves, "Tied moves should all be reported, position %d depth %d\n%s", k, depth, b)
			}
		}
	})

	t.Run("parallel root search matches sequential search", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		for k := 0; k < 15; k++ {
			b, side := randomPosition(t, rng, 3, rng.Intn(6))
			if b.Winner() != game.Neutral {
				continue
			}
			wantMoves, wantScore := NewMinimax(WithDepth(2)).BestMoves(side, b)

			gotMoves, gotScore := NewMinimax(WithDepth(2), WithGoroutines(4)).BestMoves(side, b)

			require.Equal(t, wantScore, gotScore)
			require.Equal(t, wantMoves, gotMoves)
		}
	})

	t.Run("bound stops at the first move reaching it", func(t *testing.T) {
		b := newBoard(t, 3, nil)

		moves, score := NewMinimax(WithDepth(1), WithBound(-100)).BestMoves(game.Red, b)

		require.Equal(t, []int{0}, moves)
		require.Equal(t, -100, score)
	})
}
