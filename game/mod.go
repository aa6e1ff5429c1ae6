package game

// Direction is an action of an agent on the grid.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
	Stop  Direction = "Stop"
)

// Directions lists the moving directions in the order legal actions are generated.
var Directions = []Direction{North, South, East, West}

// Reverse returns the opposite direction. Stop is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

// Vector returns the unit step of d.
func (d Direction) Vector() Position {
	switch d {
	case North:
		return Position{X: 0, Y: -1}
	case South:
		return Position{X: 0, Y: 1}
	case East:
		return Position{X: 1, Y: 0}
	case West:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}

// State should be immutable - Successor always returns a new copy.
// Agent 0 is pacman, agents 1..NumAgents()-1 are ghosts.
type State interface {
	NumAgents() int
	// LegalActions is empty for terminal states.
	LegalActions(agent int) []Direction
	Successor(agent int, action Direction) State
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Evaluate scores a state, higher is better for pacman.
type Evaluate func(State) float64

// ReflexEvaluate scores taking action for pacman in a state.
type ReflexEvaluate func(state State, action Direction) float64
