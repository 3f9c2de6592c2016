package assess

import (
	"math/rand"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
)

// GreedyMoves returns the undrawn lines a greedy player would consider:
// lines closing two boxes, else lines closing one, else lines that leave
// no box with three sides, else every undrawn line.
func GreedyMoves(state *chess.GameState) []chess.Line {
	byCapture := make(map[int][]chess.Line)
	var safe []chess.Line

	for _, l := range state.PossibleMoves() {
		captures, opens := 0, false
		for _, b := range state.AdjacentBoxes(l) {
			switch sidesDrawn(state, b) {
			case 3:
				captures++
			case 2:
				opens = true
			}
		}

		byCapture[captures] = append(byCapture[captures], l)
		if captures == 0 && !opens {
			safe = append(safe, l)
		}
	}

	switch {
	case len(byCapture[2]) > 0:
		return byCapture[2]
	case len(byCapture[1]) > 0:
		return byCapture[1]
	case len(safe) > 0:
		return safe
	}
	return byCapture[0]
}

// GreedyMove picks one of GreedyMoves at random. ok is false on a full board.
func GreedyMove(state *chess.GameState, rng *rand.Rand) (l chess.Line, ok bool) {
	moves := GreedyMoves(state)
	if len(moves) == 0 {
		return chess.Line{}, false
	}
	return moves[rng.Intn(len(moves))], true
}

func sidesDrawn(state *chess.GameState, b chess.Box) (n int) {
	for _, l := range b.Lines() {
		if _, drawn := state.LineOwner(l); drawn {
			n++
		}
	}
	return
}
