package chess

import "fmt"

// Line joins two adjacent dots. The canonical form keeps X1 <= X2 and
// Y1 <= Y2, so a horizontal line is (x, y, x+1, y) and a vertical one is
// (x, y, x, y+1).
type Line struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func HLine(x, y int) Line { return Line{X1: x, Y1: y, X2: x + 1, Y2: y} }

func VLine(x, y int) Line { return Line{X1: x, Y1: y, X2: x, Y2: y + 1} }

func (l Line) Horizontal() bool { return l.Y1 == l.Y2 && l.X2 == l.X1+1 }

func (l Line) Vertical() bool { return l.X1 == l.X2 && l.Y2 == l.Y1+1 }

// Valid reports whether l is a canonical unit line inside a size x size grid.
func (l Line) Valid(size int) bool {
	if !l.Horizontal() && !l.Vertical() {
		return false
	}
	return l.X1 >= 0 && l.Y1 >= 0 && l.X2 < size && l.Y2 < size
}

func (l Line) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", l.X1, l.Y1, l.X2, l.Y2)
}
