package searcher

import (
	"fmt"
	"math"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
)

// Searcher picks the next action of pacman (agent 0).
type Searcher interface {
	FindMove(state game.State) game.Direction
}

type Option func(o *options)

type options struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth sets how many full turns (every agent moving once) are searched.
func WithDepth(depth int) Option {
	return func(o *options) {
		if depth > 0 {
			o.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(o *options) {
		if evaluate != nil {
			o.evaluate = evaluate
		}
	}
}

// WithMetrics counts the states whose successors are generated.
func WithMetrics(collector metrics.Collector) Option {
	return func(o *options) {
		if collector != nil {
			o.metrics = collector
		}
	}
}

func newOptions(opts []Option) options {
	o := options{ // Default values
		depth:    meta.DEFAULT_DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range opts {
		option(&o)
	}
	return o
}

func (o options) Depth() int {
	return o.depth
}

// isLeaf reports whether the search stops at state and evaluates it.
func (o options) isLeaf(state game.State, depth int) bool {
	return isTerminal(state) || depth == o.depth
}

// isTerminal reports whether the game is over at state. No agent moves there.
func isTerminal(state game.State) bool {
	return state.IsWin() || state.IsLose()
}

// advance returns the agent that moves after agent, and the depth it moves
// at. The depth grows each time the turn comes back to pacman.
func advance(state game.State, agent, depth int) (int, int) {
	agent++
	if agent == state.NumAgents() {
		return 0, depth + 1
	}
	return agent, depth
}

// legalActions returns the agent's actions in a state that is not terminal.
func legalActions(state game.State, agent int) []game.Direction {
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		panic(fmt.Sprintf("agent %d has no legal actions in a non-terminal state", agent))
	}
	return actions
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)
