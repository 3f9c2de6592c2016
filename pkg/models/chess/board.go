package chess

import "sync"

const (
	MinBoardSize = 3
	MaxBoardSize = 20
)

// Grid is the immutable topology of a size x size dot lattice. Lines and
// boxes are numbered densely so a position can be stored in flat slices.
//
// Horizontal lines come first, ordered by row then column, followed by the
// vertical lines in the same order. Move generation walks the IDs in
// ascending order, which fixes the search tie-break order.
type Grid struct {
	size      int
	lines     []Line
	boxes     []Box
	lineBoxes [][]int
	boxLines  [][4]int
}

var (
	gridsMu sync.Mutex
	grids   = make(map[int]*Grid)
)

// GridOf returns the shared topology for size. Callers validate the size.
func GridOf(size int) *Grid {
	gridsMu.Lock()
	defer gridsMu.Unlock()

	if g, c := grids[size]; c {
		return g
	}

	g := newGrid(size)
	grids[size] = g
	return g
}

func newGrid(size int) *Grid {
	g := &Grid{size: size}

	for y := range size {
		for x := range size - 1 {
			g.lines = append(g.lines, HLine(x, y))
		}
	}
	for y := range size - 1 {
		for x := range size {
			g.lines = append(g.lines, VLine(x, y))
		}
	}

	for y := range size - 1 {
		for x := range size - 1 {
			g.boxes = append(g.boxes, Box{X: x, Y: y})
		}
	}

	g.lineBoxes = make([][]int, len(g.lines))
	for id, l := range g.lines {
		for _, b := range g.adjacentBoxes(l) {
			g.lineBoxes[id] = append(g.lineBoxes[id], g.boxID(b))
		}
	}

	g.boxLines = make([][4]int, len(g.boxes))
	for id, b := range g.boxes {
		for i, l := range b.Lines() {
			g.boxLines[id][i] = g.lineID(l)
		}
	}

	return g
}

func (g *Grid) Size() int { return g.size }

// LineCount is 2*N*(N-1), the number of lines on a full board.
func (g *Grid) LineCount() int { return len(g.lines) }

func (g *Grid) BoxCount() int { return len(g.boxes) }

// lineID assumes l is valid for the grid.
func (g *Grid) lineID(l Line) int {
	if l.Horizontal() {
		return l.Y1*(g.size-1) + l.X1
	}
	return g.size*(g.size-1) + l.Y1*g.size + l.X1
}

func (g *Grid) boxID(b Box) int { return b.Y*(g.size-1) + b.X }

func (g *Grid) adjacentBoxes(l Line) (boxes []Box) {
	var before, after Box
	if l.Horizontal() {
		before, after = Box{X: l.X1, Y: l.Y1 - 1}, Box{X: l.X1, Y: l.Y1}
	} else {
		before, after = Box{X: l.X1 - 1, Y: l.Y1}, Box{X: l.X1, Y: l.Y1}
	}

	if before.Valid(g.size) {
		boxes = append(boxes, before)
	}
	if after.Valid(g.size) {
		boxes = append(boxes, after)
	}
	return
}

// AdjacentBoxes returns the one or two boxes that have l as an edge.
func (g *Grid) AdjacentBoxes(l Line) []Box {
	if !l.Valid(g.size) {
		return nil
	}
	return g.adjacentBoxes(l)
}
