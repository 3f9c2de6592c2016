package logic

import (
	"context"
	"testing"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/serve/internal/config"
	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func newTestContext(t *testing.T) *svc.ServiceContext {
	var c config.Config
	c.Search.MaxBoardSize = 5
	c.Search.MaxDepth = 3
	c.Search.CacheSeconds = 60
	c.Search.LockSeconds = 5
	c.Search.Timeout = 10 * time.Second
	c.Match.Expire = time.Minute
	return svc.NewServiceContext(c)
}

// openBox leaves box (0, 0) one line short with the AI to move.
func openBox(t *testing.T) chess.Snapshot {
	s, err := chess.New(3)
	require.NoError(t, err)
	s.MakeMove(chess.HLine(0, 0))
	s.MakeMove(chess.VLine(0, 0))
	s.MakeMove(chess.VLine(1, 0))
	require.Equal(t, chess.AI, s.CurrentPlayer())
	return s.Snapshot()
}

func TestAssessTakesOpenBox(t *testing.T) {
	l := NewAssessLogic(context.Background(), newTestContext(t))

	resp, err := l.Assess(&types.AssessRequest{Snapshot: openBox(t), Depth: 1})
	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.False(t, resp.Cached)
	assert.Equal(t, chess.HLine(0, 1), resp.Move)
	assert.Equal(t, 1, resp.Score)
	assert.Nil(t, resp.Power)
}

func TestAssessAlgorithmsAgree(t *testing.T) {
	l := NewAssessLogic(context.Background(), newTestContext(t))

	ab, err := l.Assess(&types.AssessRequest{Snapshot: openBox(t), Depth: 3, Algorithm: assess.AlphaBetaSearch})
	require.NoError(t, err)
	mm, err := l.Assess(&types.AssessRequest{Snapshot: openBox(t), Depth: 3, Algorithm: assess.MinimaxSearch})
	require.NoError(t, err)

	assert.Equal(t, mm.Score, ab.Score)
	assert.Equal(t, mm.Move, ab.Move)
	assert.LessOrEqual(t, ab.Nodes, mm.Nodes)
}

func TestAssessUsesCache(t *testing.T) {
	svcCtx := newTestContext(t)
	svcCtx.RedisClient = redistest.CreateRedis(t)
	l := NewAssessLogic(context.Background(), svcCtx)
	req := &types.AssessRequest{Snapshot: openBox(t), Depth: 2}

	first, err := l.Assess(req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := l.Assess(req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Move, second.Move)
	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Nodes, second.Nodes)

	other, err := l.Assess(&types.AssessRequest{Snapshot: openBox(t), Depth: 1})
	require.NoError(t, err)
	assert.False(t, other.Cached, "depth is part of the cache key")
}

func TestAssessPower(t *testing.T) {
	snap := openBox(t)
	snap.PowerEnabled = true
	snap.AITokens = 1

	l := NewAssessLogic(context.Background(), newTestContext(t))
	resp, err := l.Assess(&types.AssessRequest{Snapshot: snap, Depth: 1, Power: true, Seed: 7})
	require.NoError(t, err)
	require.NotNil(t, resp.Power)
	assert.True(t, resp.Power.Triggered)
	assert.True(t, resp.Found)
}

func TestAssessRejects(t *testing.T) {
	l := NewAssessLogic(context.Background(), newTestContext(t))

	big, err := chess.New(6)
	require.NoError(t, err)
	_, err = l.Assess(&types.AssessRequest{Snapshot: big.Snapshot()})
	assert.ErrorIs(t, err, chess.ErrBoardSizeOutOfRange)

	_, err = l.Assess(&types.AssessRequest{Snapshot: openBox(t), Depth: 4})
	assert.ErrorIs(t, err, ErrDepthOutOfRange)

	broken := openBox(t)
	broken.Lines = append(broken.Lines, broken.Lines[0])
	_, err = l.Assess(&types.AssessRequest{Snapshot: broken})
	assert.ErrorIs(t, err, chess.ErrInvalidSnapshot)
}
