package engine

import (
	"fmt"
	"time"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxMoves caps the number of agent moves, counting ghost moves too.
func WithMaxMoves(moves int) Option {
	return func(e *Local) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

// Local runs every agent in-process, in turn order.
type Local struct {
	State    *game.GameState
	Agents   []agent.Agent
	maxMoves int
}

func LocalEngine(state *game.GameState, pacman agent.Agent, ghosts []agent.Agent, options ...Option) *Local {
	if state == nil {
		panic("engine needs a start state")
	}
	if len(ghosts) != state.NumAgents()-1 {
		panic(fmt.Sprintf("state has %d ghosts but %d ghost agents were given", state.NumAgents()-1, len(ghosts)))
	}

	agents := append([]agent.Agent{pacman}, ghosts...)
	for i, a := range agents {
		if a.Index() != i {
			panic(fmt.Sprintf("agent at turn %d has index %d", i, a.Index()))
		}
	}

	e := &Local{ // Default values
		State:    state,
		Agents:   agents,
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) done() bool {
	return e.State.IsWin() || e.State.IsLose()
}

// Run executes the game loop until pacman wins or loses, or the move cap is
// hit. The final state is left in e.State.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		Layout:    e.State.Layout.Name,
		Ghosts:    len(e.Agents) - 1,
		StartTime: time.Now(),
	}
	log.Info().Str("layout", gameMetric.Layout).Int("ghosts", gameMetric.Ghosts).Msg("starting game")

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.done() && step < e.maxMoves {
		for _, a := range e.Agents {
			if e.done() || step >= e.maxMoves {
				break
			}
			step++

			move, searchMetric := a.FindMove(e.State)
			e.State = e.State.Play(a.Index(), move)

			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        a.Index(),
				Move:         string(move),
				Score:        e.State.Score(),
				SearchMetric: searchMetric,
			})
			log.Debug().Int("step", step).Int("agent", a.Index()).Str("move", string(move)).Float64("score", e.State.Score()).Msg("played")
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Won = e.State.IsWin()
	gameMetric.Score = e.State.Score()
	gameMetric.Moves = step

	if e.done() {
		log.Info().Bool("won", gameMetric.Won).Float64("score", gameMetric.Score).Int("moves", step).Msg("game over")
	} else {
		log.Warn().Float64("score", gameMetric.Score).Int("moves", step).Msg("stopped at move limit")
	}
	return gameMetric, moveMetrics
}
