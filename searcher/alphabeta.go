package searcher

import (
	"math"

	"pacman/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta computes minimax values but skips branches that cannot change
// the decision. It chooses the same action as Minimax.
type AlphaBeta struct {
	options
}

func NewAlphaBeta(opts ...Option) *AlphaBeta {
	return &AlphaBeta{options: newOptions(opts)}
}

func (ab *AlphaBeta) FindMove(state game.State) game.Direction {
	move, _ := ab.Decide(state)
	return move
}

// Decide returns pacman's minimax action and its value.
func (ab *AlphaBeta) Decide(state game.State) (game.Direction, float64) {
	ab.metrics.Start("alphabeta")
	if isTerminal(state) {
		return game.Stop, ab.evaluate(state)
	}
	ab.metrics.AddExpansion()

	actions := legalActions(state, 0)
	agent, depth := advance(state, 0, 0)
	alpha := negInf
	bestAction, bestValue := actions[0], negInf
	for i, action := range actions {
		v := ab.value(state.Successor(0, action), agent, depth, alpha, posInf)
		if i == 0 || v > bestValue {
			bestAction, bestValue = action, v
		}
		alpha = math.Max(alpha, bestValue)
	}

	log.Debug().Str("searcher", "alphabeta").Int("depth", ab.depth).Str("move", string(bestAction)).Float64("value", bestValue).Msg("decided")
	return bestAction, bestValue
}

// value returns the exact minimax value when it lies in (alpha, beta), and
// otherwise a bound on the far side of the window. Pruning only happens on
// strict inequality so ties are resolved as in Minimax.
func (ab *AlphaBeta) value(state game.State, agent, depth int, alpha, beta float64) float64 {
	if ab.isLeaf(state, depth) {
		return ab.evaluate(state)
	}
	ab.metrics.AddExpansion()

	next, nextDepth := advance(state, agent, depth)
	if agent == 0 {
		v := negInf
		for _, action := range legalActions(state, agent) {
			v = math.Max(v, ab.value(state.Successor(agent, action), next, nextDepth, alpha, beta))
			if v > beta {
				return v
			}
			alpha = math.Max(alpha, v)
		}
		return v
	}

	v := posInf
	for _, action := range legalActions(state, agent) {
		v = math.Min(v, ab.value(state.Successor(agent, action), next, nextDepth, alpha, beta))
		if v < alpha {
			return v
		}
		beta = math.Min(beta, v)
	}
	return v
}
