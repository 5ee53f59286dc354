package searcher

import (
	"math"

	"reversi/game"
)

// node is one position in the Monte-Carlo search tree. wins accumulates
// playout outcomes from the perspective of the player whose move created
// the node, which is the opponent of the side to move in its state.
type node struct {
	state    *game.BoardState
	parent   *node
	children []*node
	visits   int
	wins     float64
	untried  []int
}

func newNode(state *game.BoardState, parent *node) *node {
	return &node{
		state:   state,
		parent:  parent,
		untried: state.LegalMoves(),
	}
}

func (n *node) fullyExpanded() bool { return len(n.untried) == 0 }

// expand pops one untried move, applies it on a clone and attaches the
// result as a new child. A stuck side gets a single forced-pass child so
// selection can continue through the position.
func (n *node) expand() *node {
	if len(n.untried) == 0 {
		if len(n.children) == 0 && !n.state.GameOver() {
			state := n.state.Clone()
			state.Pass()
			child := newNode(state, n)
			n.children = append(n.children, child)
			return child
		}
		return n
	}

	move := n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]

	state := n.state.Clone()
	if err := state.ApplyMove(move); err != nil {
		panic(err) // untried moves come from LegalMoves
	}
	child := newNode(state, n)
	n.children = append(n.children, child)
	return child
}

// bestChild picks the child maximizing UCB1 for the given exploration
// weight; weight 0 reduces to pure win rate for the final move choice.
func (n *node) bestChild(exploration float64) *node {
	var best *node
	bestValue := math.Inf(-1)
	for _, child := range n.children {
		if value := child.ucb1(exploration); value > bestValue {
			bestValue = value
			best = child
		}
	}
	return best
}

func (n *node) ucb1(exploration float64) float64 {
	if n.visits == 0 {
		return math.Inf(1)
	}
	exploitation := n.wins / float64(n.visits)
	bonus := exploration * math.Sqrt(float64(n.parent.visits)) / float64(1+n.visits)
	return exploitation + bonus
}

// backpropagate credits a playout result up to the root, flipping the sign
// at every level: each parent scores the position for the other side.
func (n *node) backpropagate(result float64) {
	for current, value := n, result; current != nil; current, value = current.parent, -value {
		current.visits++
		current.wins += value
	}
}
