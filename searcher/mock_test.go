package searcher

import (
	"fmt"

	"pacman/game"
)

// actionOrder maps child indices to actions.
var actionOrder = []game.Direction{game.North, game.South, game.East, game.West, game.Stop}

type treeNode struct {
	id       string
	score    float64
	win      bool
	lose     bool
	children []*treeNode
}

type trace struct {
	expanded  []string
	evaluated []string
}

// treeState walks a fixed game tree. Every agent picks among the children of
// the current node, so the tree has to be built with the turn order in mind.
type treeState struct {
	node   *treeNode
	agents int
	trace  *trace
}

func newTreeState(root *treeNode, agents int) treeState {
	return treeState{node: root, agents: agents, trace: &trace{}}
}

func (s treeState) NumAgents() int {
	return s.agents
}

func (s treeState) LegalActions(agent int) []game.Direction {
	if s.IsWin() || s.IsLose() {
		return nil
	}
	s.trace.expanded = append(s.trace.expanded, s.node.id)
	return actionOrder[:len(s.node.children)]
}

func (s treeState) Successor(agent int, action game.Direction) game.State {
	for i, a := range actionOrder[:len(s.node.children)] {
		if a == action {
			return treeState{node: s.node.children[i], agents: s.agents, trace: s.trace}
		}
	}
	panic(fmt.Sprintf("illegal action %s at %s", action, s.node.id))
}

func (s treeState) IsWin() bool {
	return s.node.win
}

func (s treeState) IsLose() bool {
	return s.node.lose
}

func (s treeState) Score() float64 {
	s.trace.evaluated = append(s.trace.evaluated, s.node.id)
	return s.node.score
}

func leaf(id string, score float64) *treeNode {
	return &treeNode{id: id, score: score}
}

func inner(id string, children ...*treeNode) *treeNode {
	return &treeNode{id: id, children: children}
}

// uniformTree builds a tree of the given height where every inner node has
// branching children. Leaf scores come from next.
func uniformTree(id string, height, branching int, next func() float64) *treeNode {
	if height == 0 {
		return leaf(id, next())
	}
	node := &treeNode{id: id}
	for i := 0; i < branching; i++ {
		node.children = append(node.children, uniformTree(fmt.Sprintf("%s.%d", id, i), height-1, branching, next))
	}
	return node
}
