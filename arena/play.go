package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/match"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

// The scripted Human spends a held token with this probability each turn.
const humanPowerChance = 0.3

type result struct {
	human, ai  int
	winner     string
	moves      int
	powers     int
	checked    int
	mismatches int
}

// playGame pits a greedy Human against the searching AI.
func playGame(ctx context.Context, o Options, seed int64) (r result, err error) {
	m, err := match.New(match.Config{
		BoardSize:   o.Size,
		Depth:       o.Depth,
		Algorithm:   o.Algorithm,
		PowerTokens: bool(o.Power),
		FirstPlayer: chess.Human,
		Seed:        seed,
	}, nil)
	if err != nil {
		return r, err
	}

	rng := rand.New(rand.NewSource(seed))
	for !m.Over() {
		state := m.State()

		if state.CurrentPlayer() == chess.AI {
			if o.Check {
				r.checked++
				if !searchesAgree(state, o.Depth) {
					r.mismatches++
				}
			}

			turn, err := m.PlayAI(ctx)
			if err != nil {
				return r, err
			}
			if turn.Power.Plan.Action != chess.NoPower {
				r.powers++
			}
			if turn.Moved {
				r.moves++
			}
			continue
		}

		if o.Power && state.PowerTokens(chess.Human) > 0 && rng.Float64() < humanPowerChance {
			action := chess.PowerActions[rng.Intn(len(chess.PowerActions))]
			if state.CanApply(action) == nil {
				if _, err = m.UseHumanPower(action); err != nil {
					return r, err
				}
				r.powers++
				continue
			}
		}

		l, ok := assess.GreedyMove(state, rng)
		if !ok {
			break
		}
		if err = m.PlayHuman(l); err != nil {
			return r, err
		}
		r.moves++
	}

	final := m.State()
	r.human, r.ai = final.Score(chess.Human), final.Score(chess.AI)
	r.winner = "Draw"
	if p, ok := m.Winner(); ok {
		r.winner = p.String()
	}
	return r, nil
}

// searchesAgree reports whether minimax and alpha-beta pick the same move
// with the same score.
func searchesAgree(state *chess.GameState, depth int) bool {
	maximizing := state.CurrentPlayer() == chess.AI
	mmScore, mmMove, mmOk := assess.Minimax(state, depth, maximizing)
	abScore, abMove, abOk := assess.AlphaBeta(state, depth, -assess.Inf, assess.Inf, maximizing)
	return mmScore == abScore && mmMove == abMove && mmOk == abOk
}

type summary struct {
	games, humanWins, aiWins, draws int
	humanBoxes, aiBoxes             int
	moves, powers                   int
	checked, mismatches             int
}

func (s *summary) add(r result) {
	s.games++
	switch r.winner {
	case chess.Human.String():
		s.humanWins++
	case chess.AI.String():
		s.aiWins++
	default:
		s.draws++
	}
	s.humanBoxes += r.human
	s.aiBoxes += r.ai
	s.moves += r.moves
	s.powers += r.powers
	s.checked += r.checked
	s.mismatches += r.mismatches
}

func (s *summary) print(w io.Writer, o Options) {
	fmt.Fprintf(w, "%d games on %dx%d, %s depth %d, power %s, seed %d\n",
		s.games, o.Size, o.Size, o.Algorithm, o.Depth, o.Power, o.Seed)
	fmt.Fprintf(w, "  Human %s  AI %s  Draw %s\n",
		aurora.Green(s.humanWins), aurora.Red(s.aiWins), aurora.Yellow(s.draws))
	fmt.Fprintf(w, "  boxes Human %d  AI %d  lines %d  powers %d\n",
		s.humanBoxes, s.aiBoxes, s.moves, s.powers)

	if o.Check {
		verdict := aurora.Green("agree")
		if s.mismatches > 0 {
			verdict = aurora.Red(fmt.Sprintf("%d mismatches", s.mismatches))
		}
		fmt.Fprintf(w, "  minimax vs alpha-beta over %d positions: %s\n", s.checked, verdict)
	}
}
