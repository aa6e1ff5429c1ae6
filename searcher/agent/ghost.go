package agent

import (
	"fmt"

	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

// weighted is one entry of a move distribution.
type weighted struct {
	move game.Direction
	prob float64
}

type ghost struct {
	index int
	rng   *rand.Rand
	// Returns the distribution to sample from, in legal action order
	policy func(gs *game.GameState, actions []game.Direction) []weighted
}

// NewRandomGhost returns a ghost that picks uniformly among its legal actions.
func NewRandomGhost(index int, rng *rand.Rand) Agent {
	return newGhost(index, rng, uniform)
}

// NewDirectionalGhost returns a ghost that, with probability prob, takes a
// move getting it closest to pacman (or furthest when scared). Otherwise it
// moves at random.
func NewDirectionalGhost(index int, rng *rand.Rand, prob float64) Agent {
	if prob < 0 || prob > 1 {
		panic(fmt.Sprintf("directional ghost probability %v outside [0, 1]", prob))
	}
	return newGhost(index, rng, func(gs *game.GameState, actions []game.Direction) []weighted {
		return directional(gs, index, actions, prob)
	})
}

func newGhost(index int, rng *rand.Rand, policy func(*game.GameState, []game.Direction) []weighted) Agent {
	if index < 1 {
		panic(fmt.Sprintf("ghost index must be positive, got %d", index))
	}
	if rng == nil {
		panic("ghost needs a random source")
	}
	return &ghost{index: index, rng: rng, policy: policy}
}

func (g *ghost) Index() int {
	return g.index
}

func (g *ghost) FindMove(state game.State) (game.Direction, metrics.SearchMetric) {
	gs, ok := state.(*game.GameState)
	if !ok {
		panic("unexpected state type")
	}
	actions := gs.LegalActions(g.index)
	if len(actions) == 0 {
		panic(fmt.Sprintf("ghost %d has no legal actions", g.index))
	}
	return g.sample(g.policy(gs, actions)), metrics.SearchMetric{}
}

func (g *ghost) sample(policy []weighted) game.Direction {
	sampled := g.rng.Float64()
	cumulative := 0.0
	for _, w := range policy {
		cumulative += w.prob
		if sampled < cumulative {
			return w.move
		}
	}
	return policy[len(policy)-1].move // Fallback in case of rounding errors
}

func uniform(_ *game.GameState, actions []game.Direction) []weighted {
	policy := make([]weighted, len(actions))
	for i, action := range actions {
		policy[i] = weighted{move: action, prob: 1 / float64(len(actions))}
	}
	return policy
}

func directional(gs *game.GameState, index int, actions []game.Direction, prob float64) []weighted {
	self := gs.AgentState(index)
	target := gs.PacmanPosition()

	distances := make([]int, len(actions))
	best := 0
	for i, action := range actions {
		distances[i] = game.Manhattan(self.Position.Add(action.Vector()), target)
		if self.IsScared() {
			best = max(best, distances[i])
		} else if i == 0 || distances[i] < best {
			best = distances[i]
		}
	}

	numBest := 0
	for _, d := range distances {
		if d == best {
			numBest++
		}
	}

	policy := uniform(gs, actions)
	for i := range policy {
		policy[i].prob *= 1 - prob
		if distances[i] == best {
			policy[i].prob += prob / float64(numBest)
		}
	}
	return policy
}
