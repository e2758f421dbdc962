package game

// snapshot is a full copy of a board's squares taken before a placement.
type snapshot struct {
	squares []Square
	counts  [3]int
}

// markUndo records the beginning of a move in the undo history.
func (b *Board) markUndo() {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)
	b.history = append(b.history, snapshot{squares: squares, counts: b.counts})
	b.moves++
}

// Undo restores the board to its state before the most recent AddSpot.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return ErrEmptyHistory
	}
	last := b.history[len(b.history)-1]
	b.history[len(b.history)-1] = snapshot{}
	b.history = b.history[:len(b.history)-1]

	b.squares = last.squares
	b.counts = last.counts
	b.moves--
	return nil
}
