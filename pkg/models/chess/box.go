package chess

import "fmt"

// Box is a unit cell identified by its top-left dot.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Lines returns the four bounding lines: top, bottom, left, right.
func (b Box) Lines() [4]Line {
	return [...]Line{
		HLine(b.X, b.Y),
		HLine(b.X, b.Y+1),
		VLine(b.X, b.Y),
		VLine(b.X+1, b.Y),
	}
}

func (b Box) Valid(size int) bool {
	return b.X >= 0 && b.Y >= 0 && b.X < size-1 && b.Y < size-1
}

func (b Box) String() string { return fmt.Sprintf("[%d, %d]", b.X, b.Y) }
