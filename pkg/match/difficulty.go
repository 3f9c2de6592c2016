package match

import (
	"fmt"
	"strings"

	"github.com/HuXin0817/power-boxes/pkg/assess"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Level is what a difficulty means for the board and the AI.
type Level struct {
	BoardSize int
	Depth     int

	// PowerChance is the probability that the AI considers spending a
	// token on a given move.
	PowerChance float64
}

var levels = map[Difficulty]Level{
	Easy:   {BoardSize: 5, Depth: assess.DefaultDepth, PowerChance: 0.25},
	Medium: {BoardSize: 10, Depth: assess.DefaultDepth, PowerChance: 0.5},
	Hard:   {BoardSize: 15, Depth: assess.DefaultDepth, PowerChance: 0.75},
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return Easy, nil
	}
	if _, c := levels[d]; !c {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

func (d Difficulty) Level() Level {
	if l, c := levels[d]; c {
		return l
	}
	return levels[Easy]
}
