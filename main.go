package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments"
	"reversi/player"
)

type config struct {
	games      int
	iterations int
	depth      int
	seed       uint64
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config{
		games:      50,
		iterations: 1000,
		depth:      5,
		seed:       1,
	}

	runMatchSeries(cfg)
	runNegaScoutGame(cfg)
}

// runMatchSeries pits the Monte-Carlo player against the random baseline
// over a series of games and reports win percentages.
func runMatchSeries(cfg config) {
	_, err := experiments.RunSeries(experiments.Config{
		Games:      cfg.games,
		Iterations: cfg.iterations,
		Seed:       cfg.seed,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("match series failed")
	}
}

// runNegaScoutGame plays a single game of the principal-variation player
// (White) against the random baseline (Black) and prints the final board.
func runNegaScoutGame(cfg config) {
	e := engine.NewLocal(
		player.NewRandomPlayer(cfg.seed),
		player.NewNegaScoutPlayer(cfg.depth),
	)

	outcome, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}

	fmt.Println(e.State)
	fmt.Printf("Result: %s\n", outcome)
}
