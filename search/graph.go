package search

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Strategy finds a path of actions from problem's start state to a goal state.
type Strategy[S comparable, A any] func(problem Problem[S, A], options ...Option) ([]A, error)

// DepthFirst searches the deepest nodes in the search tree first.
func DepthFirst[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, error) {
	return graphSearch(problem, "dfs", &Stack[node[S, A]]{}, nil, options)
}

// BreadthFirst searches the shallowest nodes in the search tree first.
func BreadthFirst[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, error) {
	return graphSearch(problem, "bfs", &Queue[node[S, A]]{}, nil, options)
}

// UniformCost searches the node of least total cost first.
func UniformCost[S comparable, A any](problem Problem[S, A], options ...Option) ([]A, error) {
	priority := func(n node[S, A]) float64 { return n.cost }
	return graphSearch(problem, "ucs", &PriorityQueue[node[S, A]]{}, priority, options)
}

// AStar searches the node with the lowest combined cost and heuristic first.
// A nil heuristic is treated as NullHeuristic.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A], options ...Option) ([]A, error) {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	priority := func(n node[S, A]) float64 { return n.cost + heuristic(n.state, problem) }
	return graphSearch(problem, "astar", &PriorityQueue[node[S, A]]{}, priority, options)
}

// graphSearch pops nodes from the fringe until a goal is popped. States are
// closed on expansion, so a state may sit on the fringe several times but is
// expanded at most once.
func graphSearch[S comparable, A any](
	problem Problem[S, A],
	name string,
	open fringe[node[S, A]],
	priority func(node[S, A]) float64,
	options []Option,
) ([]A, error) {
	cfg := newConfig(options)
	cfg.metrics.Start(name)

	push := func(n node[S, A]) {
		p := 0.0
		if priority != nil {
			p = priority(n)
		}
		open.Push(n, p)
	}

	closed := make(map[S]struct{})
	push(node[S, A]{state: problem.StartState(), path: []A{}})

	for !open.IsEmpty() {
		current := open.Pop()
		if problem.IsGoalState(current.state) {
			log.Debug().Str("algorithm", name).Int("actions", len(current.path)).Float64("cost", current.cost).Int("closed", len(closed)).Msg("goal found")
			return current.path, nil
		}

		if _, ok := closed[current.state]; ok {
			continue
		}
		closed[current.state] = struct{}{}
		cfg.metrics.AddExpansion()

		for _, successor := range problem.Successors(current.state) {
			if _, ok := closed[successor.State]; ok {
				continue
			}
			push(current.extend(successor))
		}
	}

	log.Debug().Str("algorithm", name).Int("closed", len(closed)).Msg("fringe exhausted")
	return nil, ErrNoPath
}

// Lookup returns the strategy registered under name. The heuristic is only
// used by A*.
func Lookup[S comparable, A any](name string, heuristic Heuristic[S, A]) (Strategy[S, A], error) {
	switch strings.ToLower(name) {
	case "dfs", "depthfirst", "depth-first":
		return DepthFirst[S, A], nil
	case "bfs", "breadthfirst", "breadth-first":
		return BreadthFirst[S, A], nil
	case "ucs", "uniformcost", "uniform-cost":
		return UniformCost[S, A], nil
	case "astar", "a*":
		return func(problem Problem[S, A], options ...Option) ([]A, error) {
			return AStar(problem, heuristic, options...)
		}, nil
	default:
		return nil, errors.Errorf("unknown search strategy %q (want one of %s)", name, strings.Join(StrategyNames, ", "))
	}
}

// StrategyNames lists the short names accepted by Lookup.
var StrategyNames = []string{"dfs", "bfs", "ucs", "astar"}
