package game

import (
	"math"

	"pacman/search"

	"github.com/pkg/errors"
)

// IllegalCost is the cost of an action sequence that walks into a wall.
const IllegalCost = 999999

// PositionProblem asks for a path from a start cell to a goal cell.
type PositionProblem struct {
	layout *Layout
	start  Position
	goal   Position
	costFn func(Position) float64
}

// NewPositionProblem searches from start to goal on the layout's walls. A nil
// costFn charges 1 for entering any cell.
func NewPositionProblem(l *Layout, start, goal Position, costFn func(Position) float64) *PositionProblem {
	if costFn == nil {
		costFn = func(Position) float64 { return 1 }
	}
	return &PositionProblem{layout: l, start: start, goal: goal, costFn: costFn}
}

// NewMazeProblem searches from pacman's start to the single food dot of a maze layout.
func NewMazeProblem(l *Layout) (*PositionProblem, error) {
	food := l.Food()
	if len(food) != 1 {
		return nil, errors.Errorf("layout %q has %d food dots, a maze needs exactly 1", l.Name, len(food))
	}
	return NewPositionProblem(l, l.PacmanStart, food[0], nil), nil
}

func (p *PositionProblem) Goal() Position {
	return p.goal
}

func (p *PositionProblem) StartState() Position {
	return p.start
}

func (p *PositionProblem) IsGoalState(state Position) bool {
	return state == p.goal
}

func (p *PositionProblem) Successors(state Position) []search.Successor[Position, Direction] {
	positions, directions := p.layout.Neighbors(state)
	successors := make([]search.Successor[Position, Direction], len(positions))
	for i := range positions {
		successors[i] = search.Successor[Position, Direction]{
			State:  positions[i],
			Action: directions[i],
			Cost:   p.costFn(positions[i]),
		}
	}
	return successors
}

func (p *PositionProblem) CostOfActions(actions []Direction) float64 {
	pos := p.start
	cost := 0.0
	for _, action := range actions {
		pos = pos.Add(action.Vector())
		if p.layout.IsWall(pos) {
			return IllegalCost
		}
		cost += p.costFn(pos)
	}
	return cost
}

// ManhattanHeuristic is admissible for PositionProblem with unit costs.
func ManhattanHeuristic(state Position, problem search.Problem[Position, Direction]) float64 {
	return float64(Manhattan(state, goalOf(problem)))
}

// EuclideanHeuristic is admissible for PositionProblem with unit costs.
func EuclideanHeuristic(state Position, problem search.Problem[Position, Direction]) float64 {
	return Euclidean(state, goalOf(problem))
}

func goalOf(problem search.Problem[Position, Direction]) Position {
	p, ok := problem.(*PositionProblem)
	if !ok {
		panic("unexpected problem type")
	}
	return p.goal
}

// LookupHeuristic returns the heuristic registered under name.
func LookupHeuristic(name string) (search.Heuristic[Position, Direction], error) {
	switch name {
	case "", "null":
		return search.NullHeuristic[Position, Direction], nil
	case "manhattan":
		return ManhattanHeuristic, nil
	case "euclidean":
		return EuclideanHeuristic, nil
	default:
		return nil, errors.Errorf("unknown heuristic %q (want null, manhattan or euclidean)", name)
	}
}

// StayEastCost and StayWestCost are the exponential cost functions that push
// uniform cost search to one side of the maze.
func StayEastCost(p Position) float64 {
	return math.Pow(0.5, float64(p.X))
}

func StayWestCost(p Position) float64 {
	return math.Pow(2, float64(p.X))
}
