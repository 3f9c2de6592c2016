package chess

import (
	"fmt"
	"math/rand"
	"strings"
)

type PowerAction int8

const (
	NoPower PowerAction = iota
	LineReversal
	ExtraMove
	SwapLines
)

// SwapLineCount is how many random lines a swap token draws.
const SwapLineCount = 2

// PowerActions is the fixed set a token can be spent on, in evaluation order.
var PowerActions = []PowerAction{LineReversal, ExtraMove, SwapLines}

var powerNames = map[PowerAction]string{
	NoPower:      "none",
	LineReversal: "reverse",
	ExtraMove:    "extra",
	SwapLines:    "swap",
}

func (a PowerAction) String() string { return powerNames[a] }

func ParsePowerAction(s string) (PowerAction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NoPower, nil
	}
	for a, name := range powerNames {
		if name == s {
			return a, nil
		}
	}
	return NoPower, fmt.Errorf("%w: unknown action %q", ErrInvalidPowerPlan, s)
}

func (a PowerAction) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *PowerAction) UnmarshalText(text []byte) (err error) {
	*a, err = ParsePowerAction(string(text))
	return
}

// PowerPlan is a fully determined power action. SwapLines carries the exact
// lines to draw so that an evaluated plan replays identically.
type PowerPlan struct {
	Action PowerAction `json:"action"`
	Lines  []Line      `json:"lines,omitempty"`
}

// PlanPower fixes the random part of action against s.
func (s *GameState) PlanPower(action PowerAction, rng *rand.Rand) PowerPlan {
	plan := PowerPlan{Action: action}
	if action == SwapLines {
		plan.Lines = s.RandomLines(rng, SwapLineCount)
	}
	return plan
}

// RandomLines picks up to n distinct undrawn lines. It returns nil when the
// board is full.
func (s *GameState) RandomLines(rng *rand.Rand, n int) []Line {
	moves := s.PossibleMoves()
	if len(moves) == 0 || n <= 0 {
		return nil
	}

	n = min(n, len(moves))
	for i := range n {
		j := i + rng.Intn(len(moves)-i)
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves[:n]
}

// CanApply reports why the current player cannot spend a token on action.
func (s *GameState) CanApply(action PowerAction) error {
	if action == NoPower {
		return nil
	}
	if _, c := powerNames[action]; !c {
		return fmt.Errorf("%w: unknown action %d", ErrInvalidPowerPlan, action)
	}
	if !s.powerEnabled {
		return ErrPowerDisabled
	}
	if s.IsTerminal() {
		return ErrGameOver
	}
	if s.tokens[s.current.index()] == 0 {
		return ErrNoPowerToken
	}
	if action == LineReversal && len(s.history) == 0 {
		return ErrNothingToReverse
	}
	return nil
}

// ApplyPower spends the current player's token on plan. The actor keeps
// the turn afterwards.
func (s *GameState) ApplyPower(plan PowerPlan) error {
	if err := s.CanApply(plan.Action); err != nil {
		return err
	}
	if plan.Action == NoPower {
		return nil
	}

	var swap []int
	if plan.Action == SwapLines {
		var err error
		if swap, err = s.swapIDs(plan.Lines); err != nil {
			return err
		}
	}

	actor := s.current
	s.tokens[actor.index()] = 0

	switch plan.Action {
	case LineReversal:
		s.reverseLast()
	case ExtraMove:
		s.extraMove = true
	case SwapLines:
		for _, id := range swap {
			s.draw(id, actor)
		}
	}

	s.current = actor
	return nil
}

func (s *GameState) swapIDs(lines []Line) ([]int, error) {
	if len(lines) > SwapLineCount {
		return nil, fmt.Errorf("%w: %d swap lines, at most %d", ErrInvalidPowerPlan, len(lines), SwapLineCount)
	}

	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		if !s.Legal(l) {
			return nil, fmt.Errorf("%w: swap line %v is not free", ErrInvalidPowerPlan, l)
		}
		id := s.grid.lineID(l)
		for _, seen := range ids {
			if seen == id {
				return nil, fmt.Errorf("%w: swap line %v repeated", ErrInvalidPowerPlan, l)
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// reverseLast removes the most recent line together with any capture it
// made. Boxes next to that line can only be complete because of it.
func (s *GameState) reverseLast() {
	id := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.lines[id] = nobody
	s.drawn--

	for _, b := range s.grid.lineBoxes[id] {
		if owner := s.boxes[b]; owner != nobody {
			s.score[owner.index()]--
			s.boxes[b] = nobody
		}
	}
}
