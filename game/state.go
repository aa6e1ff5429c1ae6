package game

import (
	"fmt"

	"pacman/meta"
	"pacman/utils"
)

// Score changes applied by the rules
const (
	TIME_PENALTY      = 1
	FOOD_REWARD       = 10
	WIN_REWARD        = 500
	LOSE_PENALTY      = 500
	GHOST_EAT_REWARD  = 200
	SCARED_TIME_RESET = 0
)

// AgentState is the dynamic state of one agent.
type AgentState struct {
	Start       Position
	Position    Position
	Direction   Direction
	ScaredTimer int // Moves left while a ghost is scared, always 0 for pacman
}

// IsScared reports whether a ghost can currently be eaten.
func (a AgentState) IsScared() bool {
	return a.ScaredTimer > 0
}

// GameState represents the dynamic state of the game at any point: everything except the layout, which is static.
type GameState struct {
	Layout   *Layout      // Reference to the static layout
	food     grid         // Shared between states until pacman eats
	numFood  int          // Food left on the grid
	capsules []Position   // Capsules left
	agents   []AgentState // Pacman first, then ghosts
	score    float64
	win      bool
	lose     bool
}

// NewGameState places pacman and the first numGhosts ghosts of the layout at
// their start positions. A negative numGhosts keeps every ghost.
func NewGameState(l *Layout, numGhosts int) *GameState {
	if numGhosts < 0 || numGhosts > l.NumGhosts() {
		numGhosts = l.NumGhosts()
	}

	agents := make([]AgentState, 0, numGhosts+1)
	agents = append(agents, AgentState{Start: l.PacmanStart, Position: l.PacmanStart, Direction: Stop})
	for _, start := range l.GhostStarts[:numGhosts] {
		agents = append(agents, AgentState{Start: start, Position: start, Direction: Stop})
	}

	capsules := make([]Position, len(l.Capsules))
	copy(capsules, l.Capsules)

	return &GameState{
		Layout:   l,
		food:     l.food,
		numFood:  l.food.count(),
		capsules: capsules,
		agents:   agents,
	}
}

// Copy returns a copy of the state. The food grid stays shared; it is copied
// before it is modified.
func (gs *GameState) Copy() *GameState {
	agents := make([]AgentState, len(gs.agents))
	copy(agents, gs.agents)

	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)

	return &GameState{
		Layout:   gs.Layout, // Layout is immutable
		food:     gs.food,
		numFood:  gs.numFood,
		capsules: capsules,
		agents:   agents,
		score:    gs.score,
		win:      gs.win,
		lose:     gs.lose,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.agents)
}

func (gs *GameState) IsWin() bool {
	return gs.win
}

func (gs *GameState) IsLose() bool {
	return gs.lose
}

func (gs *GameState) Score() float64 {
	return gs.score
}

func (gs *GameState) PacmanPosition() Position {
	return gs.agents[0].Position
}

// PacmanState returns a copy of pacman's agent state.
func (gs *GameState) PacmanState() AgentState {
	return gs.agents[0]
}

// GhostStates returns copies of the ghosts' agent states, ghost i+1 at index i.
func (gs *GameState) GhostStates() []AgentState {
	ghosts := make([]AgentState, len(gs.agents)-1)
	copy(ghosts, gs.agents[1:])
	return ghosts
}

func (gs *GameState) GhostPositions() []Position {
	positions := make([]Position, 0, len(gs.agents)-1)
	for _, ghost := range gs.agents[1:] {
		positions = append(positions, ghost.Position)
	}
	return positions
}

// AgentState returns a copy of the agent's state.
func (gs *GameState) AgentState(agent int) AgentState {
	gs.checkAgent(agent)
	return gs.agents[agent]
}

func (gs *GameState) NumFood() int {
	return gs.numFood
}

func (gs *GameState) HasFood(p Position) bool {
	return gs.food.get(p)
}

// FoodList returns the remaining food in row-major order.
func (gs *GameState) FoodList() []Position {
	return gs.food.list()
}

func (gs *GameState) Capsules() []Position {
	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)
	return capsules
}

func (gs *GameState) IsWall(p Position) bool {
	return gs.Layout.IsWall(p)
}

// LegalActions returns the legal actions of an agent. Pacman may stop; ghosts
// may not, and may only reverse when there is no other way to go.
func (gs *GameState) LegalActions(agent int) []Direction {
	gs.checkAgent(agent)
	if gs.win || gs.lose {
		return nil
	}

	current := gs.agents[agent]
	_, directions := gs.Layout.Neighbors(current.Position)
	if agent == 0 {
		return append(directions, Stop)
	}

	if len(directions) > 1 {
		directions = utils.Remove(directions, current.Direction.Reverse())
	}
	if len(directions) == 0 { // Boxed in
		return []Direction{Stop}
	}
	return directions
}

// Successor returns the state after agent takes action. It panics on
// terminal states and illegal actions.
func (gs *GameState) Successor(agent int, action Direction) State {
	return gs.Play(agent, action)
}

// Play is Successor with the concrete state type.
func (gs *GameState) Play(agent int, action Direction) *GameState {
	if gs.win || gs.lose {
		panic("cannot generate a successor of a terminal state")
	}
	if utils.FindIndex(gs.LegalActions(agent), action) < 0 {
		panic(fmt.Sprintf("illegal action %s for agent %d at %s", action, agent, gs.agents[agent].Position))
	}

	next := gs.Copy()
	if agent == 0 {
		next.movePacman(action)
	} else {
		next.moveGhost(agent, action)
	}
	return next
}

func (gs *GameState) movePacman(action Direction) {
	pacman := &gs.agents[0]
	pacman.Position = pacman.Position.Add(action.Vector())
	pacman.Direction = action
	gs.score -= TIME_PENALTY

	if gs.food.get(pacman.Position) {
		gs.food = gs.food.copy()
		gs.food.set(pacman.Position, false)
		gs.numFood--
		gs.score += FOOD_REWARD
		if gs.numFood == 0 {
			gs.score += WIN_REWARD
			gs.win = true
		}
	}

	if i := utils.FindIndex(gs.capsules, pacman.Position); i >= 0 {
		gs.capsules = append(gs.capsules[:i], gs.capsules[i+1:]...)
		for g := 1; g < len(gs.agents); g++ {
			gs.agents[g].ScaredTimer = meta.SCARED_TIME
		}
	}

	for g := 1; g < len(gs.agents); g++ {
		gs.checkCollision(g)
	}
}

func (gs *GameState) moveGhost(agent int, action Direction) {
	ghost := &gs.agents[agent]
	ghost.Position = ghost.Position.Add(action.Vector())
	ghost.Direction = action
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	gs.checkCollision(agent)
}

// checkCollision resolves pacman and a ghost sharing a cell.
func (gs *GameState) checkCollision(agent int) {
	ghost := &gs.agents[agent]
	if ghost.Position != gs.agents[0].Position {
		return
	}
	if ghost.IsScared() {
		gs.score += GHOST_EAT_REWARD
		ghost.Position = ghost.Start
		ghost.Direction = Stop
		ghost.ScaredTimer = SCARED_TIME_RESET
		return
	}
	if !gs.win {
		gs.score -= LOSE_PENALTY
		gs.lose = true
	}
}

func (gs *GameState) checkAgent(agent int) {
	if agent < 0 || agent >= len(gs.agents) {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, len(gs.agents)))
	}
}
