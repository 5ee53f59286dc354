package searcher

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

// minimax is an exhaustive negamax with no pruning, used as the reference
// the scout windows must agree with.
func minimax(state *game.BoardState, depth, color int, evaluate game.Evaluate) (float64, int) {
	if depth == 0 || state.GameOver() {
		return float64(color * evaluate(state)), game.NoMove
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		score, _ := minimax(state, depth-1, -color, evaluate)
		return -score, game.NoMove
	}

	best := math.Inf(-1)
	bestMove := game.NoMove
	for _, move := range moves {
		next := state.Clone()
		if err := next.ApplyMove(move); err != nil {
			panic(err)
		}
		score, _ := minimax(next, depth-1, -color, evaluate)
		if -score > best {
			best = -score
			bestMove = move
		}
	}
	return best, bestMove
}

// randomPrefix plays a deterministic sequence of moves to reach midgame
// positions, passing when stuck.
func randomPrefix(moves int, seed uint64) *game.BoardState {
	state := game.New()
	rng := NewSeededRand(seed)
	for i := 0; i < moves && !state.GameOver(); i++ {
		legal := state.LegalMoves()
		if len(legal) == 0 {
			state.Pass()
			continue
		}
		if err := state.ApplyMove(legal[rng.Intn(len(legal))]); err != nil {
			panic(err)
		}
	}
	return state
}

func TestNegaScoutMatchesMinimax(t *testing.T) {
	positions := map[string]*game.BoardState{
		"opening":    game.New(),
		"midgame 5":  randomPrefix(5, 11),
		"midgame 10": randomPrefix(10, 23),
		"midgame 20": randomPrefix(20, 31),
	}

	for name, state := range positions {
		for depth := 1; depth <= 3; depth++ {
			t.Run(fmt.Sprintf("%s depth %d", name, depth), func(t *testing.T) {
				s := NewNegaScout(depth)
				root := newPVNode(state.Clone(), nil)

				score := s.negascout(root, depth, math.Inf(-1), math.Inf(1), 1)

				wantScore, wantMove := minimax(state, depth, 1, game.EvaluateMaterial)
				require.Equal(t, wantScore, score, "pruning must not change the search value")
				require.Equal(t, wantMove, root.bestMove, "pruning must not change the chosen move")
			})
		}
	}
}

func TestNegaScoutGetMove(t *testing.T) {
	t.Run("returns a legal opening move", func(t *testing.T) {
		s := NewNegaScout(3)

		move, err := s.GetMove(game.New())

		require.NoError(t, err)
		require.Contains(t, []int{19, 26, 37, 44}, move)
	})

	t.Run("signals a pass when the side is stuck", func(t *testing.T) {
		// Black is stuck but white can still play at cell 2.
		var cells [game.Size]game.Disc
		cells[0], cells[1] = game.White, game.Black
		s := NewNegaScout(3)

		move, err := s.GetMove(game.NewPosition(cells, game.Black))

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("zero depth surfaces a failure", func(t *testing.T) {
		s := NewNegaScout(0)

		move, err := s.GetMove(game.New())

		require.ErrorIs(t, err, ErrNoMoveFound)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("never mutates the searched state", func(t *testing.T) {
		state := game.New()
		s := NewNegaScout(3)

		_, err := s.GetMove(state)

		require.NoError(t, err)
		require.Equal(t, *game.New(), *state)
	})

	t.Run("accepts an alternate evaluator", func(t *testing.T) {
		s := NewNegaScout(2, WithEvaluate(game.EvaluateWeighted))

		move, err := s.GetMove(game.New())

		require.NoError(t, err)
		require.Contains(t, []int{19, 26, 37, 44}, move)
	})
}

func TestNegaScoutDepthOne(t *testing.T) {
	// At depth 1 the search reduces to maximizing the evaluator one move
	// ahead from the mover's perspective.
	state := game.New()
	s := NewNegaScout(1)

	move, err := s.GetMove(state)

	require.NoError(t, err)
	require.Equal(t, 19, move, "all openings flip one disc, so the first in order wins the tie")
}
