package chess

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBoxZero lets Human close box (0,0) with VLine(1, 0) as the last line.
func captureBoxZero(t *testing.T, s *GameState) {
	t.Helper()
	for _, l := range []Line{HLine(0, 0), HLine(1, 2), VLine(0, 0), VLine(2, 1), HLine(0, 1), VLine(2, 0), VLine(1, 0)} {
		s.MakeMove(l)
	}
	owner, ok := s.BoxOwner(Box{})
	require.True(t, ok)
	require.Equal(t, Human, owner)
	require.Equal(t, Human, s.CurrentPlayer())
}

func TestTokenAwardedOnFirstCapture(t *testing.T) {
	s := newState(t, 3, WithPowerTokens())
	captureBoxZero(t, s)
	assert.Equal(t, 1, s.PowerTokens(Human))
	assert.Equal(t, 0, s.PowerTokens(AI))

	plain := newState(t, 3)
	captureBoxZero(t, plain)
	assert.Equal(t, 0, plain.PowerTokens(Human))
	assert.ErrorIs(t, plain.ApplyPower(PowerPlan{Action: ExtraMove}), ErrPowerDisabled)
}

func TestLineReversalRevokesCapture(t *testing.T) {
	s := newState(t, 3, WithPowerTokens())
	captureBoxZero(t, s)

	require.NoError(t, s.ApplyPower(PowerPlan{Action: LineReversal}))
	_, owned := s.BoxOwner(Box{})
	assert.False(t, owned)
	assert.Equal(t, 0, s.Score(Human))
	assert.True(t, s.Legal(VLine(1, 0)))
	assert.Equal(t, 0, s.PowerTokens(Human))
	assert.Equal(t, Human, s.CurrentPlayer())

	last, _ := s.LastMove()
	assert.Equal(t, VLine(2, 0), last)

	// The first-capture token is only handed out once.
	s.MakeMove(VLine(1, 0))
	assert.Equal(t, 1, s.Score(Human))
	assert.Equal(t, 0, s.PowerTokens(Human))
	assert.ErrorIs(t, s.ApplyPower(PowerPlan{Action: LineReversal}), ErrNoPowerToken)
}

func TestExtraMoveKeepsTurn(t *testing.T) {
	s := newState(t, 3, WithPowerTokens())
	captureBoxZero(t, s)

	require.NoError(t, s.ApplyPower(PowerPlan{Action: ExtraMove}))
	assert.True(t, s.ExtraMovePending())

	s.MakeMove(HLine(1, 0))
	assert.Equal(t, Human, s.CurrentPlayer())
	assert.False(t, s.ExtraMovePending())

	s.MakeMove(VLine(0, 1))
	assert.Equal(t, AI, s.CurrentPlayer())
}

func TestSwapLinesDrawsForActor(t *testing.T) {
	s := newState(t, 3, WithPowerTokens())
	captureBoxZero(t, s)

	bad := PowerPlan{Action: SwapLines, Lines: []Line{HLine(0, 0)}}
	assert.ErrorIs(t, s.ApplyPower(bad), ErrInvalidPowerPlan)
	assert.Equal(t, 1, s.PowerTokens(Human))

	plan := s.PlanPower(SwapLines, rand.New(rand.NewSource(1)))
	require.Len(t, plan.Lines, SwapLineCount)

	lines := s.LineCount()
	require.NoError(t, s.ApplyPower(plan))
	assert.Equal(t, lines+SwapLineCount, s.LineCount())
	for _, l := range plan.Lines {
		owner, ok := s.LineOwner(l)
		require.True(t, ok)
		assert.Equal(t, Human, owner)
	}
	assert.Equal(t, Human, s.CurrentPlayer())
	assert.LessOrEqual(t, s.PowerTokens(Human), 1)
}

func TestRandomLinesOnFullBoard(t *testing.T) {
	s := newState(t, 3, WithPowerTokens())
	for !s.IsTerminal() {
		s.MakeMove(s.PossibleMoves()[0])
	}

	rng := rand.New(rand.NewSource(3))
	assert.Nil(t, s.RandomLines(rng, SwapLineCount))
	assert.Empty(t, s.PlanPower(SwapLines, rng).Lines)
	assert.ErrorIs(t, s.CanApply(SwapLines), ErrGameOver)
}

func TestBonusBoxGrantsAnotherToken(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := newState(t, 3, WithPowerTokens(), WithBonusBoxes(4, rng))
	assert.Len(t, s.BonusBoxes(), 4)

	captureBoxZero(t, s)
	require.NoError(t, s.ApplyPower(PowerPlan{Action: ExtraMove}))
	require.Equal(t, 0, s.PowerTokens(Human))

	// Close box (1,0) with the extra move: it is a bonus box too.
	s.MakeMove(HLine(1, 0))
	s.MakeMove(HLine(1, 1))
	assert.Equal(t, 2, s.Score(Human))
	assert.Equal(t, 1, s.PowerTokens(Human))
}

func TestParsePowerAction(t *testing.T) {
	for _, a := range append([]PowerAction{NoPower}, PowerActions...) {
		got, err := ParsePowerAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParsePowerAction("teleport")
	assert.ErrorIs(t, err, ErrInvalidPowerPlan)
}

func TestLineReversalNeedsHistory(t *testing.T) {
	snap := newState(t, 3, WithPowerTokens()).Snapshot()
	snap.HumanTokens = 1
	s, err := FromSnapshot(snap)
	require.NoError(t, err)

	assert.ErrorIs(t, s.CanApply(LineReversal), ErrNothingToReverse)
	assert.ErrorIs(t, s.ApplyPower(PowerPlan{Action: LineReversal}), ErrNothingToReverse)
	assert.Equal(t, 1, s.PowerTokens(Human))
	assert.NoError(t, s.CanApply(ExtraMove))
}
