package searcher

import (
	"slices"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Reflex looks one move ahead and picks uniformly among the best scoring
// actions. Stop is only chosen when it is the sole legal action.
type Reflex struct {
	rng      *rand.Rand
	evaluate game.ReflexEvaluate
	metrics  metrics.Collector
}

// NewReflex uses game.EvaluateReflex when evaluate is nil. Of the options only
// WithMetrics applies.
func NewReflex(rng *rand.Rand, evaluate game.ReflexEvaluate, opts ...Option) *Reflex {
	if rng == nil {
		panic("reflex searcher needs a random source")
	}
	if evaluate == nil {
		evaluate = game.EvaluateReflex
	}
	return &Reflex{rng: rng, evaluate: evaluate, metrics: newOptions(opts).metrics}
}

func (r *Reflex) FindMove(state game.State) game.Direction {
	move, _ := r.Decide(state)
	return move
}

// Decide returns the chosen action and its score. A finished game yields Stop
// and the final score.
func (r *Reflex) Decide(state game.State) (game.Direction, float64) {
	r.metrics.Start("reflex")
	if isTerminal(state) {
		return game.Stop, state.Score()
	}
	r.metrics.AddExpansion()

	actions := utils.Remove(slices.Clone(legalActions(state, 0)), game.Stop)
	if len(actions) == 0 {
		return game.Stop, r.evaluate(state, game.Stop)
	}

	var best []game.Direction
	bestScore := negInf
	for _, action := range actions {
		score := r.evaluate(state, action)
		switch {
		case len(best) == 0 || score > bestScore:
			best, bestScore = []game.Direction{action}, score
		case score == bestScore:
			best = append(best, action)
		}
	}
	move := best[r.rng.Intn(len(best))]

	log.Debug().Str("searcher", "reflex").Int("ties", len(best)).Str("move", string(move)).Float64("value", bestScore).Msg("decided")
	return move, bestScore
}
