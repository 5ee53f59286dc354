package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"reversi/game"
	"reversi/searcher/metrics"
)

const (
	defaultIterations  = 10000
	defaultExploration = 1.4
)

type Option func(*MCTS)

// MCTS picks moves by building a statistics tree: UCB1 selection,
// single-node expansion, uniformly random playout and sign-flipping
// backpropagation. The tree is discarded after every move decision.
type MCTS struct {
	iterations  int
	duration    time.Duration
	exploration float64
	rng         *rand.Rand
	collector   metrics.Collector
}

// WithIterations caps the number of playouts per move decision. Zero is
// accepted and makes every search fail with ErrNoMoveFound.
func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations >= 0 {
			m.iterations = iterations
		}
	}
}

// WithDuration adds a wall-clock budget, checked once per iteration: an
// in-flight playout always runs to completion.
func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithExploration sets the UCB1 exploration weight.
func WithExploration(weight float64) Option {
	return func(m *MCTS) {
		if weight >= 0 {
			m.exploration = weight
		}
	}
}

// WithRand injects the playout random source. Searches with the same seed
// on the same position are reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// NewSeededRand returns a reproducible random source for WithRand.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{
		iterations:  defaultIterations,
		exploration: defaultExploration,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// GetMove searches for the best move for the side to move. It returns
// game.NoMove with a nil error when the side must pass, and ErrNoMoveFound
// when the budget expired before any child was explored.
func (m *MCTS) GetMove(state *game.BoardState) (int, error) {
	if len(state.LegalMoves()) == 0 {
		return game.NoMove, nil
	}

	root := newNode(state.Clone(), nil)
	m.search(root)

	best := root.bestChild(0)
	if best == nil {
		return game.NoMove, ErrNoMoveFound
	}
	return best.state.LastMove(), nil
}

func (m *MCTS) search(root *node) {
	m.collector.Start()
	defer m.collector.Complete()

	start := time.Now()
	for i := 0; i < m.iterations; i++ {
		if m.duration > 0 && time.Since(start) >= m.duration {
			break
		}

		n := m.selectNode(root)
		if !n.state.GameOver() {
			n = n.expand()
		}
		winner := m.rollout(n.state)
		n.backpropagate(resultFor(n, winner))
		m.collector.AddPlayout()
	}
}

// selectNode descends from the root through fully expanded nodes by UCB1
// value and stops at the first expandable or terminal node.
func (m *MCTS) selectNode(root *node) *node {
	n := root
	for !n.state.GameOver() && n.fullyExpanded() {
		child := n.bestChild(m.exploration)
		if child == nil {
			// Stuck side with no pass child expanded yet.
			return n
		}
		n = child
	}
	return n
}

// rollout plays uniformly random legal moves, passing when stuck, until
// the game ends.
func (m *MCTS) rollout(state *game.BoardState) game.Outcome {
	playout := state.Clone()
	for !playout.GameOver() {
		moves := playout.LegalMoves()
		if len(moves) == 0 {
			playout.Pass()
			continue
		}
		if err := playout.ApplyMove(moves[m.rng.Intn(len(moves))]); err != nil {
			panic(err)
		}
	}
	return playout.Winner()
}

// resultFor scores a playout outcome for the player whose move created the
// node: the opponent of the side to move in its state.
func resultFor(n *node, winner game.Outcome) float64 {
	if winner == game.Draw {
		return 0
	}
	mover := -n.state.Player()
	if (winner == game.BlackWon) == (mover == game.Black) {
		return Win
	}
	return Loss
}
