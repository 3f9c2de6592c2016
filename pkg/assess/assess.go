package assess

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
)

// Inf bounds every reachable evaluation from both sides.
const Inf = math.MaxInt

// checkEvery is how many nodes pass between context checks.
const checkEvery = 1 << 10

type Algorithm int8

const (
	AlphaBetaSearch Algorithm = iota
	MinimaxSearch
)

func (a Algorithm) String() string {
	if a == MinimaxSearch {
		return "minimax"
	}
	return "alphabeta"
}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alphabeta", "alpha-beta":
		return AlphaBetaSearch, nil
	case "minimax":
		return MinimaxSearch, nil
	}
	return AlphaBetaSearch, fmt.Errorf("unknown search algorithm %q", s)
}

func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Algorithm) UnmarshalText(text []byte) (err error) {
	*a, err = ParseAlgorithm(string(text))
	return
}

// Minimax searches depth plies ahead. maximizing is true when the AI is to
// move. ok is false when state has no move to offer.
func Minimax(state *chess.GameState, depth int, maximizing bool) (score int, move chess.Line, ok bool) {
	var t tree
	score, move, ok, _ = t.minimax(state, depth, maximizing)
	return
}

// AlphaBeta returns the same score and move as Minimax while skipping
// branches that cannot change the result. Callers start with -Inf, Inf.
func AlphaBeta(state *chess.GameState, depth, alpha, beta int, maximizing bool) (score int, move chess.Line, ok bool) {
	var t tree
	score, move, ok, _ = t.alphaBeta(state, depth, alpha, beta, maximizing)
	return
}

// tree carries the per-search bookkeeping. A nil ctx is never cancelled.
type tree struct {
	ctx   context.Context
	nodes int
}

func (t *tree) visit() error {
	t.nodes++
	if t.ctx != nil && t.nodes%checkEvery == 1 {
		return t.ctx.Err()
	}
	return nil
}

// The side to move after a child is derived from the child state, since a
// capture hands the same player another move.
func (t *tree) minimax(s *chess.GameState, depth int, maximizing bool) (int, chess.Line, bool, error) {
	if err := t.visit(); err != nil {
		return 0, chess.Line{}, false, err
	}

	if depth <= 0 || s.IsTerminal() {
		return s.Evaluate(), chess.Line{}, false, nil
	}

	best := Inf
	if maximizing {
		best = -Inf
	}

	var bestMove chess.Line
	found := false
	for _, m := range s.PossibleMoves() {
		next := s.Clone()
		next.MakeMove(m)

		eval, _, _, err := t.minimax(next, depth-1, next.CurrentPlayer() == chess.AI)
		if err != nil {
			return 0, chess.Line{}, false, err
		}

		if (maximizing && eval > best) || (!maximizing && eval < best) {
			best, bestMove, found = eval, m, true
		}
	}

	return best, bestMove, found, nil
}

func (t *tree) alphaBeta(s *chess.GameState, depth, alpha, beta int, maximizing bool) (int, chess.Line, bool, error) {
	if err := t.visit(); err != nil {
		return 0, chess.Line{}, false, err
	}

	if depth <= 0 || s.IsTerminal() {
		return s.Evaluate(), chess.Line{}, false, nil
	}

	best := Inf
	if maximizing {
		best = -Inf
	}

	var bestMove chess.Line
	found := false
	for _, m := range s.PossibleMoves() {
		next := s.Clone()
		next.MakeMove(m)

		eval, _, _, err := t.alphaBeta(next, depth-1, alpha, beta, next.CurrentPlayer() == chess.AI)
		if err != nil {
			return 0, chess.Line{}, false, err
		}

		if maximizing {
			if eval > best {
				best, bestMove, found = eval, m, true
			}
			alpha = max(alpha, eval)
		} else {
			if eval < best {
				best, bestMove, found = eval, m, true
			}
			beta = min(beta, eval)
		}

		if beta <= alpha {
			break
		}
	}

	return best, bestMove, found, nil
}
