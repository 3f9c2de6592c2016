package assess

import (
	"context"
	"math/rand"
	"testing"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func position(t *testing.T, size int, current chess.Player, lines ...chess.Line) *chess.GameState {
	t.Helper()
	snap := chess.Snapshot{Size: size, CurrentPlayer: current}
	for _, l := range lines {
		snap.Lines = append(snap.Lines, chess.LineRecord{Line: l, Owner: chess.Human})
	}
	s, err := chess.FromSnapshot(snap)
	require.NoError(t, err)
	return s
}

func randomPositions(t *testing.T, seed int64, count int) (states []*chess.GameState) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for range count {
		s, err := chess.New(3)
		require.NoError(t, err)
		for n := rng.Intn(11); n > 0 && !s.IsTerminal(); n-- {
			moves := s.PossibleMoves()
			s.MakeMove(moves[rng.Intn(len(moves))])
		}
		states = append(states, s)
	}
	return
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for i, s := range randomPositions(t, 42, 40) {
		for depth := 0; depth <= 4; depth++ {
			key := s.Key()
			maximizing := s.CurrentPlayer() == chess.AI

			mScore, mMove, mOK := Minimax(s, depth, maximizing)
			aScore, aMove, aOK := AlphaBeta(s, depth, -Inf, Inf, maximizing)

			require.Equal(t, mScore, aScore, "position %d depth %d", i, depth)
			require.Equal(t, mMove, aMove, "position %d depth %d", i, depth)
			require.Equal(t, mOK, aOK, "position %d depth %d", i, depth)
			require.Equal(t, key, s.Key(), "search must not touch its input")
		}
	}
}

func TestAlphaBetaMatchesMinimaxFromAISide(t *testing.T) {
	s, err := chess.New(3, chess.WithFirstPlayer(chess.AI))
	require.NoError(t, err)

	mScore, mMove, _ := Minimax(s, 4, true)
	aScore, aMove, _ := AlphaBeta(s, 4, -Inf, Inf, true)
	assert.Equal(t, mScore, aScore)
	assert.Equal(t, mMove, aMove)
}

func TestLeafAndTerminal(t *testing.T) {
	s := position(t, 3, chess.AI, chess.HLine(0, 0))

	score, _, ok := Minimax(s, 0, true)
	assert.Equal(t, 0, score)
	assert.False(t, ok)

	full, err := chess.New(3)
	require.NoError(t, err)
	for !full.IsTerminal() {
		full.MakeMove(full.PossibleMoves()[0])
	}
	score, _, ok = AlphaBeta(full, 3, -Inf, Inf, true)
	assert.Equal(t, full.Evaluate(), score)
	assert.False(t, ok)
}

func TestTakesOpenBox(t *testing.T) {
	s := position(t, 3, chess.AI, chess.HLine(0, 0), chess.VLine(0, 0), chess.HLine(0, 1))

	score, move, ok := Minimax(s, 1, true)
	require.True(t, ok)
	assert.Equal(t, chess.VLine(1, 0), move)
	assert.Equal(t, 1, score)
}

func TestCaptureChainKeepsMaximizing(t *testing.T) {
	s := position(t, 3, chess.AI,
		chess.HLine(0, 0), chess.VLine(0, 0), chess.HLine(0, 1),
		chess.HLine(1, 2), chess.VLine(2, 1), chess.VLine(1, 1),
	)

	for _, search := range []func() (int, chess.Line, bool){
		func() (int, chess.Line, bool) { return Minimax(s, 2, true) },
		func() (int, chess.Line, bool) { return AlphaBeta(s, 2, -Inf, Inf, true) },
	} {
		score, move, ok := search()
		require.True(t, ok)
		assert.Equal(t, 2, score)
		assert.Equal(t, chess.HLine(1, 1), move)
	}
}

func TestSearcherPlaysBothSides(t *testing.T) {
	lines := []chess.Line{chess.HLine(0, 0), chess.VLine(0, 0), chess.HLine(0, 1)}

	for _, algorithm := range []Algorithm{AlphaBetaSearch, MinimaxSearch} {
		se := NewSearcher(2, algorithm)

		r, err := se.BestMove(context.Background(), position(t, 3, chess.AI, lines...))
		require.NoError(t, err)
		assert.True(t, r.Found)
		assert.Equal(t, chess.VLine(1, 0), r.Move)
		assert.Positive(t, r.Score)
		assert.Positive(t, r.Nodes)

		r, err = se.BestMove(context.Background(), position(t, 3, chess.Human, lines...))
		require.NoError(t, err)
		assert.Equal(t, chess.VLine(1, 0), r.Move)
		assert.Negative(t, r.Score)
	}
}

func TestSearcherHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := chess.New(6)
	require.NoError(t, err)

	_, err = NewSearcher(3, AlphaBetaSearch).BestMove(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range []Algorithm{AlphaBetaSearch, MinimaxSearch} {
		got, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAlgorithm("mcts")
	assert.Error(t, err)
}
