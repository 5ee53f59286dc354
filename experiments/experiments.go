// Package experiments runs repeated matches between agents and tallies
// the outcomes.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
	"reversi/searcher/metrics"
)

type Config struct {
	Games      int           // Number of games in the series
	Iterations int           // MCTS playouts per move
	Duration   time.Duration // Optional wall-clock budget per move
	Seed       uint64        // Base seed; game i uses Seed+i
	Output     string        // CSV output directory, empty to skip writing
}

type SeriesResult struct {
	Games      int
	SearchWins int
	RandomWins int
	Draws      int
	ThinkTime  time.Duration // Total search think time across the series
}

// RunSeries plays a series of games between the tree-search player
// (White) and a random baseline (Black), logs win percentages and writes
// per-game records when an output directory is configured.
func RunSeries(cfg Config) (SeriesResult, error) {
	result := SeriesResult{Games: cfg.Games}
	records := make([]GameRecord, 0, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		seed := cfg.Seed + uint64(i)
		collector := metrics.NewCollector()
		search := player.NewMCTSPlayer(mctsOptions(cfg, seed, collector)...)
		baseline := player.NewRandomPlayer(seed)

		e := engine.NewLocal(baseline, search)
		start := time.Now()
		outcome, err := e.Run()
		if err != nil {
			return result, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch outcome {
		case game.WhiteWon:
			result.SearchWins++
		case game.BlackWon:
			result.RandomWins++
		default:
			result.Draws++
		}
		result.ThinkTime += search.ThinkTime

		black, white := e.State.Discs()
		records = append(records, GameRecord{
			ID:        i + 1,
			Outcome:   outcome,
			Black:     black,
			White:     white,
			Duration:  time.Since(start),
			ThinkTime: search.ThinkTime,
		})
		log.Info().Msgf("game %d over: %s", i+1, outcome)
	}

	report(result)

	if cfg.Output != "" {
		writer, err := NewWriter(cfg.Output)
		if err != nil {
			return result, err
		}
		if err := writer.WriteGameRecords(records); err != nil {
			return result, err
		}
	}
	return result, nil
}

func mctsOptions(cfg Config, seed uint64, collector metrics.Collector) []searcher.Option {
	options := []searcher.Option{
		searcher.WithRand(searcher.NewSeededRand(seed)),
		searcher.WithCollector(collector),
	}
	if cfg.Iterations > 0 {
		options = append(options, searcher.WithIterations(cfg.Iterations))
	}
	if cfg.Duration > 0 {
		options = append(options, searcher.WithDuration(cfg.Duration))
	}
	return options
}

func report(result SeriesResult) {
	if result.Games == 0 {
		return
	}
	percent := func(count int) float64 {
		return float64(count) / float64(result.Games) * 100
	}
	log.Info().Msgf("search player wins: %d (%.2f%%)", result.SearchWins, percent(result.SearchWins))
	log.Info().Msgf("random player wins: %d (%.2f%%)", result.RandomWins, percent(result.RandomWins))
	log.Info().Msgf("draws: %d (%.2f%%)", result.Draws, percent(result.Draws))
	log.Info().Msgf("mean think time per game: %s", result.ThinkTime/time.Duration(result.Games))
}
