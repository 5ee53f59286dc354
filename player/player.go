// Package player wraps the search engines and a random baseline behind
// the engine.Agent contract.
package player

import (
	"time"

	"golang.org/x/exp/rand"

	"reversi/game"
	"reversi/searcher"
)

// MCTSPlayer picks moves with Monte-Carlo tree search and keeps a running
// total of its think time.
type MCTSPlayer struct {
	mcts      *searcher.MCTS
	ThinkTime time.Duration
}

func NewMCTSPlayer(options ...searcher.Option) *MCTSPlayer {
	return &MCTSPlayer{mcts: searcher.NewMCTS(options...)}
}

func (p *MCTSPlayer) GetMove(state *game.BoardState) (int, error) {
	start := time.Now()
	move, err := p.mcts.GetMove(state)
	p.ThinkTime += time.Since(start)
	return move, err
}

// NegaScoutPlayer picks moves with principal variation search.
type NegaScoutPlayer struct {
	negascout *searcher.NegaScout
	ThinkTime time.Duration
}

func NewNegaScoutPlayer(depth int, options ...searcher.NegaScoutOption) *NegaScoutPlayer {
	return &NegaScoutPlayer{negascout: searcher.NewNegaScout(depth, options...)}
}

func (p *NegaScoutPlayer) GetMove(state *game.BoardState) (int, error) {
	start := time.Now()
	move, err := p.negascout.GetMove(state)
	p.ThinkTime += time.Since(start)
	return move, err
}

// RandomPlayer plays a uniformly random legal move.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed uint64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) GetMove(state *game.BoardState) (int, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, nil
	}
	return moves[p.rng.Intn(len(moves))], nil
}
