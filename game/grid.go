package game

import (
	"fmt"
	"math"
)

type Position struct {
	X int // Column, growing east
	Y int // Row, growing south
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by the vector v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// Manhattan returns the L1 distance between two positions.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Euclidean returns the L2 distance between two positions.
func Euclidean(a, b Position) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// grid is a row-major boolean matrix.
type grid struct {
	width  int
	height int
	cells  []bool
}

func newGrid(width, height int) grid {
	return grid{width: width, height: height, cells: make([]bool, width*height)}
}

func (g grid) inside(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g grid) get(p Position) bool {
	if !g.inside(p) {
		return false
	}
	return g.cells[p.Y*g.width+p.X]
}

func (g grid) set(p Position, value bool) {
	g.cells[p.Y*g.width+p.X] = value
}

func (g grid) copy() grid {
	cells := make([]bool, len(g.cells))
	copy(cells, g.cells)
	return grid{width: g.width, height: g.height, cells: cells}
}

func (g grid) count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// list returns the set cells in row-major order.
func (g grid) list() []Position {
	var out []Position
	for i, c := range g.cells {
		if c {
			out = append(out, Position{X: i % g.width, Y: i / g.width})
		}
	}
	return out
}
