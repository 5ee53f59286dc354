// Package metrics collects per-search statistics for analysis runs
// without burdening the search hot path in normal play.
package metrics

import "time"

// SearchMetric summarizes one move search.
type SearchMetric struct {
	Duration time.Duration
	Playouts int
}

// Collector accumulates statistics for the search in progress. Complete
// finalizes the current search; Last returns the finalized metric.
type Collector interface {
	Start()
	AddPlayout()
	Complete()
	Last() SearchMetric
}

type collector struct {
	startTime time.Time
	playouts  int
	last      SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.playouts = 0
}

func (c *collector) AddPlayout() {
	c.playouts++
}

func (c *collector) Complete() {
	c.last = SearchMetric{
		Duration: time.Since(c.startTime),
		Playouts: c.playouts,
	}
}

func (c *collector) Last() SearchMetric {
	return c.last
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()             {}
func (dummyCollector) AddPlayout()        {}
func (dummyCollector) Complete()          {}
func (dummyCollector) Last() SearchMetric { return SearchMetric{} }
