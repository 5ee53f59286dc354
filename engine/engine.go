// Package engine drives a full game between two agents over the shared
// rules engine. Agents only ever see the authoritative state; they clone
// it themselves for any lookahead.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"reversi/game"
)

// Agent picks a move for the side to move, or game.NoMove to pass.
type Agent interface {
	GetMove(state *game.BoardState) (int, error)
}

// MaxTurns backstops runaway games. A full game plays at most 60 moves
// plus the occasional pass.
const MaxTurns = 200

type Local struct {
	State  *game.BoardState
	Agents map[game.Disc]Agent
}

func NewLocal(black, white Agent) *Local {
	return &Local{
		State: game.New(),
		Agents: map[game.Disc]Agent{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game to the end and returns the outcome.
func (e *Local) Run() (game.Outcome, error) {
	log.Info().Msgf("%s is starting", e.State.Player())

	for turn := 1; !e.State.GameOver(); turn++ {
		if turn > MaxTurns {
			return game.Draw, fmt.Errorf("game exceeded %d turns", MaxTurns)
		}

		player := e.State.Player()
		if len(e.State.LegalMoves()) == 0 {
			e.State.Pass()
			log.Info().Msgf("%s has no legal moves and passes", player)
			continue
		}

		move, err := e.Agents[player].GetMove(e.State)
		if err != nil {
			return game.Draw, fmt.Errorf("%s search failed: %w", player, err)
		}
		if move == game.NoMove {
			return game.Draw, fmt.Errorf("%s passed with legal moves available", player)
		}
		if err := e.State.ApplyMove(move); err != nil {
			return game.Draw, fmt.Errorf("%s played an illegal move: %w", player, err)
		}
		log.Debug().Msgf("%s played %d", player, move)
	}

	outcome := e.State.Winner()
	black, white := e.State.Discs()
	log.Info().Msgf("game over: %s (black %d, white %d)", outcome, black, white)
	return outcome, nil
}
