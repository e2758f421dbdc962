package searcher

import (
	"jump61/game"
	"math"

	"golang.org/x/sync/errgroup"
)

// Minimax is a depth-limited negamax search with alpha/beta pruning. Leaves
// score the best one-ply static evaluation for the side to move. Decided
// positions score Win or Loss adjusted by their distance from the root, so
// faster wins and slower losses are preferred. Among moves with the same
// exact score the lowest index is chosen.
type Minimax struct {
	settings
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{settings: newSettings(options)}
}

func (m *Minimax) SelectMove(side game.Side, b *game.Board) (int, error) {
	moves, _ := m.BestMoves(side, b)
	if len(moves) == 0 {
		return 0, ErrNoLegalMove
	}
	return moves[0], nil
}

// BestMoves returns every root move achieving the best score, in ascending
// index order, together with that score. A search stopped by the bound
// returns only the move that reached it.
func (m *Minimax) BestMoves(side game.Side, b *game.Board) ([]int, int) {
	depth := m.depthFor(b)
	m.metrics.Start(MinimaxStrategy.String(), depth, m.goroutines)
	if !hasLegalMove(side, b) {
		return nil, Loss
	}

	if depth == 0 {
		return m.leaf(side, b.Copy(), m.bound, true)
	}
	if m.goroutines > 1 {
		return m.rootParallel(side, b, depth)
	}
	return m.root(side, b.Copy(), depth)
}

// root searches every move of side on its private clone b. The lower bound
// trails the best score by one so moves tying it get exact scores.
func (m *Minimax) root(side game.Side, b *game.Board, depth int) ([]int, int) {
	var moves []int
	best, alpha := math.MinInt, Loss
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		if !b.IsLegal(side, i) {
			continue
		}
		play(b, side, i)
		score := min(-m.search(side.Opposite(), b, depth-1, 1, -m.bound, -alpha), m.bound)
		undo(b)

		switch {
		case score > best:
			best = score
			moves = []int{i}
		case score == best:
			moves = append(moves, i)
		}
		if best >= m.bound {
			m.metrics.AddCutoff()
			break
		}
		if best-1 > alpha {
			alpha = best - 1
		}
	}
	return moves, best
}

// rootParallel scores each root move on its own clone and merges the scores
// in index order, giving the same result as root.
func (m *Minimax) rootParallel(side game.Side, b *game.Board, depth int) ([]int, int) {
	candidates := legalMoves(side, b)
	scores := make([]int, len(candidates))

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for k, i := range candidates {
		k, i := k, i
		g.Go(func() error {
			clone := b.Copy()
			play(clone, side, i)
			scores[k] = min(-m.search(side.Opposite(), clone, depth-1, 1, -m.bound, -Loss), m.bound)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail

	var moves []int
	best := math.MinInt
	for k, score := range scores {
		switch {
		case score > best:
			best = score
			moves = []int{candidates[k]}
		case score == best:
			moves = append(moves, candidates[k])
		}
		if best >= m.bound {
			break
		}
	}
	return moves, best
}

// search returns the value of b for side, searched depth plies deep within
// the window (alpha, beta). ply counts the moves played since the root.
// Values outside the window are bounds.
func (m *Minimax) search(side game.Side, b *game.Board, depth, ply, alpha, beta int) int {
	m.metrics.AddNode()
	switch b.Winner() {
	case side:
		return Win - ply
	case side.Opposite():
		return Loss + ply
	}
	if depth == 0 {
		_, score := m.leaf(side, b, beta, false)
		return score
	}

	best := Loss
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		if !b.IsLegal(side, i) {
			continue
		}
		play(b, side, i)
		score := -m.search(side.Opposite(), b, depth-1, ply+1, -beta, -alpha)
		undo(b)

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// leaf returns the best static evaluation side can reach with one move. When
// collect is set it also returns every move reaching it; otherwise it stops
// as soon as the score reaches beta.
func (m *Minimax) leaf(side game.Side, b *game.Board, beta int, collect bool) ([]int, int) {
	var moves []int
	best := math.MinInt
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		if !b.IsLegal(side, i) {
			continue
		}
		play(b, side, i)
		m.metrics.AddLeaf()
		score := m.evaluate(b, side)
		undo(b)

		switch {
		case score > best:
			best = score
			moves = append(moves[:0], i)
		case score == best && collect:
			moves = append(moves, i)
		}
		if !collect && best >= beta {
			m.metrics.AddCutoff()
			break
		}
	}
	if best == math.MinInt {
		return nil, Loss
	}
	return moves, best
}
