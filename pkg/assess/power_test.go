package assess

import (
	"context"
	"math/rand"
	"testing"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPosition(t *testing.T, lines ...chess.Line) *chess.GameState {
	t.Helper()
	snap := chess.Snapshot{
		Size:          3,
		CurrentPlayer: chess.AI,
		PowerEnabled:  true,
		AITokens:      1,
		AIEarned:      true,
	}
	for _, l := range lines {
		snap.Lines = append(snap.Lines, chess.LineRecord{Line: l, Owner: chess.Human})
	}
	s, err := chess.FromSnapshot(snap)
	require.NoError(t, err)
	return s
}

func TestDecidePowerSkipsWithoutToken(t *testing.T) {
	se := NewSearcher(2, AlphaBetaSearch)
	rng := rand.New(rand.NewSource(1))

	plain, err := chess.New(3, chess.WithFirstPlayer(chess.AI))
	require.NoError(t, err)
	d, err := se.DecidePower(context.Background(), plain, rng, 1)
	require.NoError(t, err)
	assert.False(t, d.Triggered)
	assert.Equal(t, chess.NoPower, d.Plan.Action)

	d, err = se.DecidePower(context.Background(), tokenPosition(t, chess.HLine(0, 0)), rng, 0)
	require.NoError(t, err)
	assert.False(t, d.Triggered)
}

func TestDecidePowerFindsExtraMoveGain(t *testing.T) {
	s := tokenPosition(t, chess.HLine(0, 0), chess.VLine(0, 0))
	key := s.Key()

	se := NewSearcher(2, AlphaBetaSearch)
	d, err := se.DecidePower(context.Background(), s, rand.New(rand.NewSource(9)), 1)
	require.NoError(t, err)

	assert.True(t, d.Triggered)
	assert.Equal(t, 0, d.Baseline)
	assert.NotEqual(t, chess.NoPower, d.Plan.Action)
	assert.Greater(t, d.Score, d.Baseline)
	assert.Equal(t, key, s.Key())

	replay := s.Clone()
	require.NoError(t, replay.ApplyPower(d.Plan))
	r, err := se.BestMove(context.Background(), replay)
	require.NoError(t, err)
	assert.Equal(t, d.Score, r.Score)
}

func TestDecidePowerIsConsistent(t *testing.T) {
	se := NewSearcher(2, AlphaBetaSearch)
	rng := rand.New(rand.NewSource(17))

	for _, s := range randomPositions(t, 23, 25) {
		snap := s.Snapshot()
		snap.CurrentPlayer = chess.AI
		snap.PowerEnabled = true
		snap.AITokens = 1
		snap.AIEarned = true
		state, err := chess.FromSnapshot(snap)
		require.NoError(t, err)
		if state.IsTerminal() {
			continue
		}

		d, err := se.DecidePower(context.Background(), state, rng, 1)
		require.NoError(t, err)
		require.True(t, d.Triggered)

		if d.Plan.Action == chess.NoPower {
			assert.Equal(t, d.Baseline, d.Score)
			continue
		}
		assert.Greater(t, d.Score, d.Baseline)

		replay := state.Clone()
		require.NoError(t, replay.ApplyPower(d.Plan))
		r, err := se.BestMove(context.Background(), replay)
		require.NoError(t, err)
		assert.Equal(t, d.Score, r.Score)
	}
}
