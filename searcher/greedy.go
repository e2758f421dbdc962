package searcher

import "jump61/game"

// Greedy plays the move with the best static evaluation one ply ahead.
// Ties go to the lowest index.
type Greedy struct {
	settings
}

func NewGreedy(options ...Option) *Greedy {
	return &Greedy{settings: newSettings(options)}
}

func (g *Greedy) SelectMove(side game.Side, b *game.Board) (int, error) {
	g.metrics.Start(GreedyStrategy.String(), 0, 1)

	move, found := 0, false
	best := 0
	n := b.Size() * b.Size()
	for i := 0; i < n; i++ {
		if !b.IsLegal(side, i) {
			continue
		}
		clone := b.Copy()
		play(clone, side, i)
		g.metrics.AddLeaf()
		if score := g.evaluate(clone, side); !found || score > best {
			move, best, found = i, score, true
		}
	}

	if !found {
		return 0, ErrNoLegalMove
	}
	return move, nil
}
