package player

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
	"reversi/searcher"
)

func TestRandomPlayer(t *testing.T) {
	t.Run("returns a legal move", func(t *testing.T) {
		p := NewRandomPlayer(1)

		move, err := p.GetMove(game.New())

		require.NoError(t, err)
		require.Contains(t, []int{19, 26, 37, 44}, move)
	})

	t.Run("passes when stuck", func(t *testing.T) {
		var cells [game.Size]game.Disc
		cells[0], cells[1] = game.White, game.Black
		p := NewRandomPlayer(1)

		move, err := p.GetMove(game.NewPosition(cells, game.Black))

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("same seed replays the same moves", func(t *testing.T) {
		first, err := NewRandomPlayer(9).GetMove(game.New())
		require.NoError(t, err)
		second, err := NewRandomPlayer(9).GetMove(game.New())
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

func TestSearchPlayers(t *testing.T) {
	t.Run("monte carlo player tracks think time", func(t *testing.T) {
		p := NewMCTSPlayer(searcher.WithIterations(50), searcher.WithRand(searcher.NewSeededRand(1)))

		move, err := p.GetMove(game.New())

		require.NoError(t, err)
		require.Contains(t, []int{19, 26, 37, 44}, move)
		require.Positive(t, p.ThinkTime)
	})

	t.Run("negascout player tracks think time", func(t *testing.T) {
		p := NewNegaScoutPlayer(2)

		move, err := p.GetMove(game.New())

		require.NoError(t, err)
		require.Contains(t, []int{19, 26, 37, 44}, move)
		require.Positive(t, p.ThinkTime)
	})
}
