package game

import (
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ghostRadius caps the distance to an active ghost that still matters.
const ghostRadius = 5

// terminalBonus lifts wins above and drops losses below the values of running
// games. It stays finite so chance nodes can average over finished games.
const terminalBonus = 10000

var evaluations = map[string]Evaluate{
	"score":  EvaluateScore,
	"better": EvaluateBetter,
}

// LookupEvaluate returns the evaluation function registered under name.
func LookupEvaluate(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, errors.Errorf("unknown evaluation function %q (want one of %s)", name, strings.Join(EvaluationNames(), ", "))
	}
	return evaluate, nil
}

// EvaluationNames returns the registered evaluation names in sorted order.
func EvaluationNames() []string {
	names := maps.Keys(evaluations)
	slices.Sort(names)
	return names
}

// EvaluateScore returns the game score of the state.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter rewards eating food and capsules, staying near food and
// away from active ghosts, and chasing scared ghosts that can still be caught.
func EvaluateBetter(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	if gs.IsWin() {
		return gs.Score() + terminalBonus
	}
	if gs.IsLose() {
		return gs.Score() - terminalBonus
	}

	pos := gs.PacmanPosition()
	foodDistances := distances(pos, gs.FoodList())
	nearestFood := 0.0
	if len(foodDistances) > 0 {
		nearestFood = floats.Min(foodDistances)
	}

	ghostDist := float64(ghostRadius)
	huntBonus := 0.0
	for _, ghost := range gs.GhostStates() {
		d := float64(Manhattan(ghost.Position, pos))
		if ghost.IsScared() {
			// Only worth chasing if it can be reached before it recovers
			if d < float64(ghost.ScaredTimer) {
				huntBonus += GHOST_EAT_REWARD / (d + 1)
			}
			continue
		}
		ghostDist = math.Min(ghostDist, d)
	}

	return gs.Score() -
		1.5*nearestFood -
		4*float64(gs.NumFood()) -
		20*float64(len(gs.capsules)) +
		2*ghostDist +
		huntBonus
}

// EvaluateReflex scores pacman taking action from state by looking at the
// successor only.
func EvaluateReflex(s State, action Direction) float64 {
	current, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	next := current.Play(0, action)
	if next.IsWin() {
		return math.Inf(1)
	}
	if next.IsLose() {
		return math.Inf(-1)
	}

	// Food count matters on its own, otherwise eating a dot raises the nearest
	// food distance and gets penalized
	pos := next.PacmanPosition()
	foodDistances := distances(pos, next.FoodList())
	avgFood, minFood := 0.0, 0.0
	if len(foodDistances) > 0 {
		avgFood = stat.Mean(foodDistances, nil)
		minFood = floats.Min(foodDistances)
	}

	ghostDist := 0.0
	var active []float64
	for _, ghost := range current.GhostStates() {
		if !ghost.IsScared() {
			active = append(active, float64(Manhattan(ghost.Position, pos)))
		}
	}
	if len(active) > 0 {
		ghostDist = math.Min(floats.Min(active), ghostRadius)
	}

	return current.Score() -
		0.5*avgFood -
		0.5*minFood -
		15*float64(next.NumFood()) -
		5*float64(len(next.capsules)) +
		2*ghostDist
}

func distances(from Position, to []Position) []float64 {
	out := make([]float64, len(to))
	for i, p := range to {
		out[i] = float64(Manhattan(from, p))
	}
	return out
}
