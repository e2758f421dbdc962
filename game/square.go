package game

// Square is the immutable content of one board position.
type Square struct {
	Side  Side
	Spots int
}

// Initial is the content of every square on a fresh board.
var Initial = Square{Side: Neutral, Spots: 1}

func NewSquare(side Side, spots int) Square {
	return Square{Side: side, Spots: spots}
}

func (sq Square) symbol() byte {
	switch sq.Side {
	case Red:
		return 'r'
	case Blue:
		return 'b'
	default:
		return '-'
	}
}
