package searcher

import (
	"math"

	"pacman/game"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Expectimax models every ghost as choosing uniformly at random from its
// legal actions.
type Expectimax struct {
	options
}

func NewExpectimax(opts ...Option) *Expectimax {
	return &Expectimax{options: newOptions(opts)}
}

func (e *Expectimax) FindMove(state game.State) game.Direction {
	move, _ := e.Decide(state)
	return move
}

// Decide returns pacman's expectimax action and its expected value.
func (e *Expectimax) Decide(state game.State) (game.Direction, float64) {
	e.metrics.Start("expectimax")
	if isTerminal(state) {
		return game.Stop, e.evaluate(state)
	}
	e.metrics.AddExpansion()

	actions := legalActions(state, 0)
	agent, depth := advance(state, 0, 0)
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = e.value(state.Successor(0, action), agent, depth)
	}
	best := floats.MaxIdx(values)

	log.Debug().Str("searcher", "expectimax").Int("depth", e.depth).Str("move", string(actions[best])).Float64("value", values[best]).Msg("decided")
	return actions[best], values[best]
}

func (e *Expectimax) value(state game.State, agent, depth int) float64 {
	if e.isLeaf(state, depth) {
		return e.evaluate(state)
	}
	e.metrics.AddExpansion()

	next, nextDepth := advance(state, agent, depth)
	actions := legalActions(state, agent)
	if agent == 0 {
		v := negInf
		for _, action := range actions {
			v = math.Max(v, e.value(state.Successor(agent, action), next, nextDepth))
		}
		return v
	}

	// Chance node
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = e.value(state.Successor(agent, action), next, nextDepth)
	}
	return stat.Mean(values, nil)
}
