package game

import (
	"fmt"
	"strings"
)

// Disc is the content of a single board cell.
type Disc int8

const (
	Empty Disc = 0
	Black Disc = 1
	White Disc = -1
)

func (d Disc) String() string {
	switch d {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "Empty"
}

// NoMove marks the absence of a move: no move played yet, or a pass.
const NoMove = -1

// Size is the number of cells on the board.
const Size = 64

const edge = 8

// Outcome is the result of a finished game.
type Outcome int

const (
	Draw Outcome = iota
	BlackWon
	WhiteWon
)

func (o Outcome) String() string {
	switch o {
	case BlackWon:
		return "black won"
	case WhiteWon:
		return "white won"
	}
	return "draw"
}

// The 8 compass directions as (row, col) steps.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// BoardState holds the grid and the side to move. Cells are row-major:
// index = row*8 + col. Search engines explore hypothetical continuations
// on clones, so the authoritative state is only ever mutated through
// ApplyMove and Pass.
type BoardState struct {
	cells      [Size]Disc
	player     Disc
	lastMove   int
	passStreak int
}

// New returns the starting position: the central diamond seeded with two
// discs per color, Black to move.
func New() *BoardState {
	b := &BoardState{player: Black, lastMove: NoMove}
	b.cells[27], b.cells[36] = White, White
	b.cells[28], b.cells[35] = Black, Black
	return b
}

// NewPosition builds an arbitrary position. Useful for tests and analysis
// of midgame states.
func NewPosition(cells [Size]Disc, player Disc) *BoardState {
	return &BoardState{cells: cells, player: player, lastMove: NoMove}
}

// Player returns the side to move.
func (b *BoardState) Player() Disc { return b.player }

// LastMove returns the most recently applied cell index, or NoMove.
func (b *BoardState) LastMove() int { return b.lastMove }

// Cell returns the disc at the given index.
func (b *BoardState) Cell(index int) Disc { return b.cells[index] }

// Discs counts the discs of each color.
func (b *BoardState) Discs() (black, white int) {
	for _, d := range b.cells {
		switch d {
		case Black:
			black++
		case White:
			white++
		}
	}
	return black, white
}

// LegalMoves returns the legal moves for the side to move in ascending
// index order. The ordering is fixed so searches are reproducible.
func (b *BoardState) LegalMoves() []int {
	var moves []int
	for i := 0; i < Size; i++ {
		if b.IsLegalMove(i) {
			moves = append(moves, i)
		}
	}
	return moves
}

// IsLegalMove reports whether the side to move may play at index: the cell
// is empty and at least one direction captures.
func (b *BoardState) IsLegalMove(index int) bool {
	if index < 0 || index >= Size || b.cells[index] != Empty {
		return false
	}
	row, col := index/edge, index%edge
	for _, d := range directions {
		if b.canFlip(row, col, d[0], d[1]) {
			return true
		}
	}
	return false
}

// canFlip walks from (row, col) in direction (dr, dc) and reports whether
// the walk crosses at least one opponent disc and then reaches a mover
// disc before hitting an empty cell or the board edge.
func (b *BoardState) canFlip(row, col, dr, dc int) bool {
	opponent := -b.player
	bracketed := false
	r, c := row+dr, col+dc
	for r >= 0 && r < edge && c >= 0 && c < edge {
		switch b.cells[r*edge+c] {
		case opponent:
			bracketed = true
		case b.player:
			return bracketed
		default:
			return false
		}
		r += dr
		c += dc
	}
	return false
}

// flips collects every opponent disc bracketed by a move at index.
func (b *BoardState) flips(index int) []int {
	var flips []int
	row, col := index/edge, index%edge
	for _, d := range directions {
		var line []int
		r, c := row+d[0], col+d[1]
		for r >= 0 && r < edge && c >= 0 && c < edge {
			cell := r*edge + c
			if b.cells[cell] == Empty {
				break
			}
			if b.cells[cell] == b.player {
				flips = append(flips, line...)
				break
			}
			line = append(line, cell)
			r += d[0]
			c += d[1]
		}
	}
	return flips
}

// ApplyMove plays index for the side to move: places the disc, flips every
// bracketed line, switches the turn and resets the pass streak. An illegal
// move returns ErrInvalidMove and leaves the state untouched.
func (b *BoardState) ApplyMove(index int) error {
	if !b.IsLegalMove(index) {
		return fmt.Errorf("%w: cell %d for %s", ErrInvalidMove, index, b.player)
	}
	b.cells[index] = b.player
	for _, cell := range b.flips(index) {
		b.cells[cell] = b.player
	}
	b.lastMove = index
	b.player = -b.player
	b.passStreak = 0
	return nil
}

// Pass skips the turn for a side with no legal moves.
func (b *BoardState) Pass() {
	b.player = -b.player
	b.passStreak++
}

// GameOver reports whether the game has ended: the board is full, or
// neither side has a legal move.
func (b *BoardState) GameOver() bool {
	if b.full() {
		return true
	}
	if len(b.LegalMoves()) > 0 {
		return false
	}
	if b.passStreak >= 2 {
		return true
	}
	// The mover is stuck; the game continues only if the opponent can move.
	opponent := b.Clone()
	opponent.player = -opponent.player
	return len(opponent.LegalMoves()) == 0
}

func (b *BoardState) full() bool {
	for _, d := range b.cells {
		if d == Empty {
			return false
		}
	}
	return true
}

// Winner compares disc counts. Only meaningful once GameOver is true.
func (b *BoardState) Winner() Outcome {
	black, white := b.Discs()
	switch {
	case black > white:
		return BlackWon
	case white > black:
		return WhiteWon
	}
	return Draw
}

// Clone returns an independent deep copy. Mutating the clone never affects
// the original.
func (b *BoardState) Clone() *BoardState {
	clone := *b
	return &clone
}

func (b *BoardState) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	for row := 0; row < edge; row++ {
		cells := make([]string, 0, edge+1)
		cells = append(cells, fmt.Sprintf("%d", row))
		for col := 0; col < edge; col++ {
			switch b.cells[row*edge+col] {
			case Black:
				cells = append(cells, "●")
			case White:
				cells = append(cells, "○")
			default:
				cells = append(cells, "+")
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
