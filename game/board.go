package game

import (
	"fmt"
	"strings"
)

// Board is an N×N grid of squares stored in a flat row-major slice.
// The coordinate API numbers rows and columns from 1; flat indices start at 0.
type Board struct {
	size     int
	squares  []Square
	counts   [3]int // squares owned per Side
	history  []snapshot
	moves    int
	listener Listener
}

type Option func(b *Board)

// WithListener attaches a listener that is called after every mutation.
func WithListener(listener Listener) Option {
	return func(b *Board) {
		if listener != nil {
			b.listener = listener
		}
	}
}

// NewBoard returns an n×n board with every square unowned and holding one spot.
func NewBoard(n int, options ...Option) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("new board of size %d: %w", n, ErrBoardSize)
	}
	b := &Board{}
	for _, option := range options {
		option(b)
	}
	b.reset(n)
	return b, nil
}

func (b *Board) reset(n int) {
	b.size = n
	b.squares = make([]Square, n*n)
	for i := range b.squares {
		b.squares[i] = Initial
	}
	b.counts = [3]int{}
	b.counts[Neutral] = n * n
	b.history = nil
	b.moves = 0
}

// Copy returns a deep copy of b. The copy has no undo history and no listener.
func (b *Board) Copy() *Board {
	squares := make([]Square, len(b.squares))
	copy(squares, b.squares)

	return &Board{
		size:    b.size,
		squares: squares,
		counts:  b.counts,
	}
}

// Clear resets b to a fresh n×n board and discards its history.
func (b *Board) Clear(n int) error {
	if n < 1 {
		return fmt.Errorf("clear board to size %d: %w", n, ErrBoardSize)
	}
	b.reset(n)
	b.announce()
	return nil
}

func (b *Board) Size() int {
	return b.size
}

// Moves returns the number of placements that can currently be undone.
func (b *Board) Moves() int {
	return b.moves
}

func (b *Board) Get(i int) Square {
	b.mustContain(i)
	return b.squares[i]
}

func (b *Board) GetAt(r, c int) Square {
	if !b.Exists(r, c) {
		panic(fmt.Sprintf("square %d %d out of range for size %d", r, c, b.size))
	}
	return b.squares[b.Index(r, c)]
}

// Index converts 1-based (r, c) into a flat index. It does not check bounds.
func (b *Board) Index(r, c int) int {
	return (r-1)*b.size + (c - 1)
}

func (b *Board) Row(i int) int {
	b.mustContain(i)
	return i/b.size + 1
}

func (b *Board) Col(i int) int {
	b.mustContain(i)
	return i%b.size + 1
}

// Exists reports whether (r, c) lies on the board.
func (b *Board) Exists(r, c int) bool {
	return r >= 1 && c >= 1 && r <= b.size && c <= b.size
}

func (b *Board) contains(i int) bool {
	return i >= 0 && i < len(b.squares)
}

func (b *Board) mustContain(i int) {
	if !b.contains(i) {
		panic(fmt.Sprintf("index %d out of range for size %d", i, b.size))
	}
}

// Capacity returns the number of orthogonal neighbours of square i.
func (b *Board) Capacity(i int) int {
	r, c := b.Row(i), b.Col(i)
	n := 0
	if r > 1 {
		n++
	}
	if r < b.size {
		n++
	}
	if c > 1 {
		n++
	}
	if c < b.size {
		n++
	}
	return n
}

// IsLegal reports whether side may add a spot to square i: the square must
// be unowned or already owned by side.
func (b *Board) IsLegal(side Side, i int) bool {
	if (side != Red && side != Blue) || !b.contains(i) {
		return false
	}
	owner := b.squares[i].Side
	return owner == Neutral || owner == side
}

func (b *Board) IsLegalAt(side Side, r, c int) bool {
	return b.Exists(r, c) && b.IsLegal(side, b.Index(r, c))
}

// AddSpot adds one spot for side to square i, overflowing into neighbours
// when the square exceeds its capacity. The move can be reverted with Undo.
func (b *Board) AddSpot(side Side, i int) error {
	if !b.contains(i) {
		return fmt.Errorf("add spot at index %d: %w", i, ErrOutOfBounds)
	}
	if !b.IsLegal(side, i) {
		return &MoveError{Side: side, Row: b.Row(i), Col: b.Col(i)}
	}

	b.markUndo()
	spots := b.squares[i].Spots
	if spots+1 <= b.Capacity(i) {
		b.set(i, NewSquare(side, spots+1))
	} else {
		b.overflow(side, b.Row(i), b.Col(i))
	}
	b.announce()
	return nil
}

func (b *Board) AddSpotAt(side Side, r, c int) error {
	if !b.Exists(r, c) {
		return fmt.Errorf("add spot at %d %d: %w", r, c, ErrOutOfBounds)
	}
	return b.AddSpot(side, b.Index(r, c))
}

// overflow delivers one spot to (r, c). A square pushed past its capacity
// drops back to a single spot and delivers one spot to each neighbour, left,
// right, up, then down. Propagation stops as soon as a side owns the board,
// so a winning cascade may leave some deliveries unmade.
func (b *Board) overflow(side Side, r, c int) {
	i := b.Index(r, c)
	spots := b.squares[i].Spots + 1
	b.set(i, NewSquare(side, spots))
	if spots <= b.Capacity(i) {
		return
	}

	b.set(i, NewSquare(side, 1))
	if c > 1 {
		b.spill(side, r, c-1)
	}
	if c < b.size {
		b.spill(side, r, c+1)
	}
	if r > 1 {
		b.spill(side, r-1, c)
	}
	if r < b.size {
		b.spill(side, r+1, c)
	}
}

func (b *Board) spill(side Side, r, c int) {
	if b.Winner() == Neutral {
		b.overflow(side, r, c)
	}
}

// Set writes a square directly without recording undo history.
func (b *Board) Set(i, spots int, side Side) error {
	if !b.contains(i) {
		return fmt.Errorf("set square %d: %w", i, ErrOutOfBounds)
	}
	if spots < 1 {
		return fmt.Errorf("set square %d to %d spots: %w", i, spots, ErrSpotCount)
	}
	if side < Neutral || side > Blue {
		return fmt.Errorf("set square %d: unknown %s", i, side)
	}
	b.set(i, NewSquare(side, spots))
	b.announce()
	return nil
}

func (b *Board) set(i int, sq Square) {
	b.counts[b.squares[i].Side]--
	b.counts[sq.Side]++
	b.squares[i] = sq
}

// Winner returns the side owning every square, or Neutral if there is none.
func (b *Board) Winner() Side {
	var winner Side
	total := len(b.squares)
	switch {
	case b.counts[Red] == total:
		winner = Red
	case b.counts[Blue] == total:
		winner = Blue
	default:
		return Neutral
	}
	if b.NumPieces() == 0 {
		return Neutral
	}
	return winner
}

func (b *Board) NumOfSide(side Side) int {
	if side < Neutral || side > Blue {
		return 0
	}
	return b.counts[side]
}

// NumPieces returns the total number of spots on the board.
func (b *Board) NumPieces() int {
	total := 0
	for _, sq := range b.squares {
		total += sq.Spots
	}
	return total
}

func (b *Board) announce() {
	if b.listener != nil {
		b.listener(b)
	}
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 1; r <= b.size; r++ {
		for c := 1; c <= b.size; c++ {
			if c > 1 {
				sb.WriteByte(' ')
			}
			sq := b.squares[b.Index(r, c)]
			fmt.Fprintf(&sb, "%d%c", sq.Spots, sq.symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
