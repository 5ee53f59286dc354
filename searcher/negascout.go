package searcher

import (
	"math"

	"reversi/game"
)

type NegaScoutOption func(*NegaScout)

// WithEvaluate swaps the leaf evaluator. The default is plain material
// count.
func WithEvaluate(evaluate game.Evaluate) NegaScoutOption {
	return func(s *NegaScout) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// NegaScout picks moves with a depth-limited principal variation search:
// the first move at each node gets a full alpha-beta window, later moves a
// null-window scout that is re-searched only when it lands inside the
// window. Pruning never changes the value an exhaustive minimax of the
// same depth would return.
type NegaScout struct {
	depth    int
	evaluate game.Evaluate
}

func NewNegaScout(depth int, options ...NegaScoutOption) *NegaScout {
	s := &NegaScout{
		depth:    depth,
		evaluate: game.EvaluateMaterial,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// pvNode mirrors the search tree for a single move decision. It is built
// during the recursion and discarded with it; no statistics survive.
type pvNode struct {
	state    *game.BoardState
	parent   *pvNode
	children []*pvNode
	bestMove int
}

func newPVNode(state *game.BoardState, parent *pvNode) *pvNode {
	return &pvNode{state: state, parent: parent, bestMove: game.NoMove}
}

// GetMove searches for the best move for the side to move. It returns
// game.NoMove with a nil error when the side must pass, and ErrNoMoveFound
// when the depth budget never reached a move decision.
func (s *NegaScout) GetMove(state *game.BoardState) (int, error) {
	if len(state.LegalMoves()) == 0 {
		return game.NoMove, nil
	}

	root := newPVNode(state.Clone(), nil)
	s.negascout(root, s.depth, math.Inf(-1), math.Inf(1), 1)
	if root.bestMove == game.NoMove {
		return game.NoMove, ErrNoMoveFound
	}
	return root.bestMove, nil
}

func (s *NegaScout) negascout(n *pvNode, depth int, alpha, beta float64, color int) float64 {
	if depth == 0 || n.state.GameOver() {
		return float64(color * s.evaluate(n.state))
	}

	moves := n.state.LegalMoves()
	if len(moves) == 0 {
		// Forced pass: hand the negated window to the opponent on the
		// same position, one ply down.
		return -s.negascout(n, depth-1, -beta, -alpha, -color)
	}

	best := math.Inf(-1)
	for i, move := range moves {
		state := n.state.Clone()
		if err := state.ApplyMove(move); err != nil {
			panic(err) // moves come from LegalMoves
		}
		child := newPVNode(state, n)
		n.children = append(n.children, child)

		var score float64
		if i == 0 {
			score = -s.negascout(child, depth-1, -beta, -alpha, -color)
		} else {
			score = -s.negascout(child, depth-1, -alpha-1, -alpha, -color)
			if alpha < score && score < beta {
				score = -s.negascout(child, depth-1, -beta, -score, -color)
			}
		}

		if score > best {
			best = score
			n.bestMove = move
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return best
}
