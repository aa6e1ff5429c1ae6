package search

import (
	"errors"
	"pacman/experiments/metrics"
)

// ErrNoPath is returned when the fringe empties before a goal state is popped.
var ErrNoPath = errors.New("no path from start state to a goal state")

// Successor is one outgoing edge of a search state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem outlines a search problem. Implementations must not change while a
// search is running.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoalState(state S) bool
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a sequence of legal actions.
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic is the trivial heuristic. A* with it behaves as uniform cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}

type Option func(c *config)

type config struct {
	metrics metrics.Collector
}

// WithMetrics counts node expansions and search time into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) *config {
	c := &config{metrics: metrics.NewDummyCollector()}
	for _, option := range options {
		option(c)
	}
	return c
}
