package game

type StateHash uint64

// Evaluate scores board b from side's perspective. Higher is better for side.
type Evaluate func(b *Board, side Side) int

// Listener is notified after every change to a board it is attached to.
type Listener func(b *Board)
