package assess

import (
	"context"
	"math/rand"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

type PowerDecision struct {
	Plan      chess.PowerPlan `json:"plan"`
	Triggered bool            `json:"triggered"`
	Baseline  int             `json:"baseline"`
	Score     int             `json:"score"`
}

// DecidePower runs when the player to move holds a token and rng beats
// chance. Each action is tried on a clone and searched; the one that most
// improves on the plain search wins, ties keep the token. state is never
// modified, and the returned plan replays exactly through ApplyPower.
func (se *Searcher) DecidePower(ctx context.Context, state *chess.GameState, rng *rand.Rand, chance float64) (PowerDecision, error) {
	d := PowerDecision{Plan: chess.PowerPlan{Action: chess.NoPower}}

	player := state.CurrentPlayer()
	if !state.PowerEnabled() || state.PowerTokens(player) == 0 || state.IsTerminal() {
		return d, nil
	}
	if rng.Float64() >= chance {
		return d, nil
	}
	d.Triggered = true

	base, err := se.BestMove(ctx, state)
	if err != nil {
		return d, err
	}
	d.Baseline, d.Score = base.Score, base.Score

	sign := 1
	if player == chess.Human {
		sign = -1
	}

	bestGain := 0
	for _, action := range chess.PowerActions {
		if state.CanApply(action) != nil {
			continue
		}

		plan := state.PlanPower(action, rng)
		next := state.Clone()
		if err := next.ApplyPower(plan); err != nil {
			continue
		}

		r, err := se.BestMove(ctx, next)
		if err != nil {
			return d, err
		}

		if gain := sign * (r.Score - d.Baseline); gain > bestGain {
			bestGain = gain
			d.Plan, d.Score = plan, r.Score
		}
	}

	logx.WithContext(ctx).Infof("%s power decision: %s (baseline %d, score %d)", player, d.Plan.Action, d.Baseline, d.Score)
	return d, nil
}
