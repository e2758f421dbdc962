package game

// EvaluateSquares counts side's squares minus the opponent's squares. It is
// zero-sum: EvaluateSquares(b, s) == -EvaluateSquares(b, s.Opposite()).
func EvaluateSquares(b *Board, side Side) int {
	return b.NumOfSide(side) - b.NumOfSide(side.Opposite())
}
