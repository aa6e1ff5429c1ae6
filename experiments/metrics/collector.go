package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm string
	Duration  time.Duration
	Expanded  int
}

type MoveMetric struct {
	Step  int
	Agent int // Agent index, 0 is pacman
	Move  string
	Score float64 // Game score after the move
	SearchMetric
}

type GameMetric struct {
	Layout    string
	Agent     string
	Ghosts    int
	Won       bool
	Score     float64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Moves     int
}

// Collector records one search at a time. Start resets the counters.
type Collector interface {
	Start(algorithm string)
	AddExpansion()
	Complete() SearchMetric
}

type collector struct {
	algorithm string
	startTime time.Time
	expanded  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string) {
	m.startTime = time.Now()
	m.algorithm = algorithm
	m.expanded.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Algorithm: m.algorithm,
		Duration:  time.Since(m.startTime),
		Expanded:  int(m.expanded.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string) {}
func (m *dummyCollector) AddExpansion()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
