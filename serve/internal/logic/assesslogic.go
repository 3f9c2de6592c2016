package logic

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"github.com/HuXin0817/power-boxes/pkg/models/model"
	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type AssessLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewAssessLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AssessLogic {
	return &AssessLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *AssessLogic) Assess(req *types.AssessRequest) (*types.AssessResponse, error) {
	state, err := chess.FromSnapshot(req.Snapshot)
	if err != nil {
		return nil, err
	}
	if state.Size() > l.svcCtx.Config.Search.MaxBoardSize {
		return nil, fmt.Errorf("%w: %d above %d", chess.ErrBoardSizeOutOfRange, state.Size(), l.svcCtx.Config.Search.MaxBoardSize)
	}

	depth := req.Depth
	if depth <= 0 {
		depth = assess.DefaultDepth
	}
	if depth > l.svcCtx.Config.Search.MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepthOutOfRange, depth)
	}

	ctx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Search.Timeout)
	defer cancel()

	searcher := assess.NewSearcher(depth, req.Algorithm)
	resp := &types.AssessResponse{}

	if req.Power {
		seed := req.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		decision, err := searcher.DecidePower(ctx, state, rand.New(rand.NewSource(seed)), 1)
		if err != nil {
			return nil, err
		}
		resp.Power = &decision

		if decision.Plan.Action != chess.NoPower {
			if err = state.ApplyPower(decision.Plan); err != nil {
				return nil, err
			}
		}
	}

	v, cached, err := l.bestMove(ctx, state, searcher)
	if err != nil {
		return nil, err
	}

	resp.Move, resp.Found, resp.Score, resp.Nodes, resp.Cached = v.Move, v.Found, v.Score, v.Nodes, cached
	return resp, nil
}

// bestMove serves a search from redis when it can. A position is searched
// at most once at a time across every engine sharing the redis.
func (l *AssessLogic) bestMove(ctx context.Context, state *chess.GameState, searcher *assess.Searcher) (message.AssessMessageValue, bool, error) {
	rds := l.svcCtx.RedisClient
	if rds == nil {
		v, err := search(ctx, state, searcher)
		return v, false, err
	}

	key := message.AssessMessageKey{
		Position:  state.Key(),
		Depth:     searcher.Depth,
		Algorithm: searcher.Algorithm.String(),
	}

	if v, ok := l.cached(ctx, key); ok {
		return v, true, nil
	}

	var (
		v      message.AssessMessageValue
		cached bool
	)
	lock := model.NewLock(rds, key.LockName(), l.svcCtx.Config.Search.LockSeconds)
	err := lock.Do(ctx, func() (err error) {
		if v, cached = l.cached(ctx, key); cached {
			return nil
		}

		if v, err = search(ctx, state, searcher); err != nil {
			return err
		}

		if err := rds.SetexCtx(ctx, key.String(), v.String(), l.svcCtx.Config.Search.CacheSeconds); err != nil {
			l.Errorf("cache %s: %v", key, err)
		}
		return nil
	})
	return v, cached, err
}

func (l *AssessLogic) cached(ctx context.Context, key message.AssessMessageKey) (message.AssessMessageValue, bool) {
	str, err := l.svcCtx.RedisClient.GetCtx(ctx, key.String())
	if err != nil {
		l.Errorf("read %s: %v", key, err)
		return message.AssessMessageValue{}, false
	}
	if str == "" {
		return message.AssessMessageValue{}, false
	}

	v, err := message.ParseAssessMessageValue(str)
	if err != nil {
		l.Errorf("parse %s: %v", key, err)
		return message.AssessMessageValue{}, false
	}
	return v, true
}

func search(ctx context.Context, state *chess.GameState, searcher *assess.Searcher) (message.AssessMessageValue, error) {
	r, err := searcher.BestMove(ctx, state)
	if err != nil {
		return message.AssessMessageValue{}, err
	}

	return message.AssessMessageValue{
		Move:  r.Move,
		Found: r.Found,
		Score: r.Score,
		Nodes: r.Nodes,
	}, nil
}
