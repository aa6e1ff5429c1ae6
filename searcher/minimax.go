package searcher

import (
	"math"

	"pacman/game"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

// Minimax assumes every ghost plays the move that is worst for pacman.
type Minimax struct {
	options
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(opts)}
}

func (m *Minimax) FindMove(state game.State) game.Direction {
	move, _ := m.Decide(state)
	return move
}

// Decide returns pacman's minimax action and its value. Ties go to the
// first action in legal action order. A finished game yields Stop and its
// evaluation.
func (m *Minimax) Decide(state game.State) (game.Direction, float64) {
	m.metrics.Start("minimax")
	if isTerminal(state) {
		return game.Stop, m.evaluate(state)
	}
	m.metrics.AddExpansion()

	actions := legalActions(state, 0)
	agent, depth := advance(state, 0, 0)
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = m.value(state.Successor(0, action), agent, depth)
	}
	best := floats.MaxIdx(values)

	log.Debug().Str("searcher", "minimax").Int("depth", m.depth).Str("move", string(actions[best])).Float64("value", values[best]).Msg("decided")
	return actions[best], values[best]
}

func (m *Minimax) value(state game.State, agent, depth int) float64 {
	if m.isLeaf(state, depth) {
		return m.evaluate(state)
	}
	m.metrics.AddExpansion()

	next, nextDepth := advance(state, agent, depth)
	if agent == 0 {
		v := negInf
		for _, action := range legalActions(state, agent) {
			v = math.Max(v, m.value(state.Successor(agent, action), next, nextDepth))
		}
		return v
	}

	v := posInf
	for _, action := range legalActions(state, agent) {
		v = math.Min(v, m.value(state.Successor(agent, action), next, nextDepth))
	}
	return v
}
