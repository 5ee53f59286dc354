package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()

	c.Start()
	c.AddPlayout()
	c.AddPlayout()
	c.Complete()

	metric := c.Last()
	require.Equal(t, 2, metric.Playouts)
	require.GreaterOrEqual(t, metric.Duration, time.Duration(0))

	c.Start()
	c.Complete()
	require.Equal(t, 0, c.Last().Playouts, "a new search should reset the count")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()

	c.Start()
	c.AddPlayout()
	c.Complete()

	require.Zero(t, c.Last(), "the dummy collector should record nothing")
}
