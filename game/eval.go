package game

// Evaluate scores a position. Positive favors Black, negative favors
// White; zero is balanced.
type Evaluate func(*BoardState) int

// EvaluateMaterial counts discs: +1 per Black disc, -1 per White disc.
func EvaluateMaterial(b *BoardState) int {
	score := 0
	for _, d := range b.cells {
		score += int(d)
	}
	return score
}

// Corners are stable, the cells next to them hand corners to the opponent.
var cellWeights = [Size]int{
	100, -20, 10, 5, 5, 10, -20, 100,
	-20, -50, -2, -2, -2, -2, -50, -20,
	10, -2, -1, -1, -1, -1, -2, 10,
	5, -2, -1, 0, 0, -1, -2, 5,
	5, -2, -1, 0, 0, -1, -2, 5,
	10, -2, -1, -1, -1, -1, -2, 10,
	-20, -50, -2, -2, -2, -2, -50, -20,
	100, -20, 10, 5, 5, 10, -20, 100,
}

// EvaluateWeighted weights each disc by its cell value, favoring corners
// and penalizing the cells that expose them.
func EvaluateWeighted(b *BoardState) int {
	score := 0
	for i, d := range b.cells {
		score += int(d) * cellWeights[i]
	}
	return score
}

// EvaluateMobility compares how many legal moves each side would have on
// the current grid.
func EvaluateMobility(b *BoardState) int {
	c := b.Clone()
	c.player = Black
	blackMoves := len(c.LegalMoves())
	c.player = White
	whiteMoves := len(c.LegalMoves())
	return blackMoves - whiteMoves
}
