package searcher

import "jump61/game"

// Random samples squares uniformly until it finds a legal one.
type Random struct {
	settings
}

func NewRandom(options ...Option) *Random {
	return &Random{settings: newSettings(options)}
}

func (r *Random) SelectMove(side game.Side, b *game.Board) (int, error) {
	r.metrics.Start(RandomStrategy.String(), 0, 1)
	if !hasLegalMove(side, b) {
		return 0, ErrNoLegalMove
	}

	n := b.Size() * b.Size()
	for {
		i := r.rng.Intn(n)
		r.metrics.AddNode()
		if b.IsLegal(side, i) {
			return i, nil
		}
	}
}
