package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/HuXin0817/power-boxes/pkg/match"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"github.com/HuXin0817/power-boxes/serve/internal/svc"
	"github.com/HuXin0817/power-boxes/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type MatchLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewMatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MatchLogic {
	return &MatchLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Create starts a match. When the AI opens, its first moves are played
// before returning.
func (l *MatchLogic) Create(req *types.CreateMatchRequest) (*types.MatchResponse, error) {
	difficulty, err := match.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	size := req.BoardSize
	if size <= 0 {
		size = difficulty.Level().BoardSize
	}
	if size > l.svcCtx.Config.Search.MaxBoardSize {
		return nil, fmt.Errorf("%w: %d above %d", chess.ErrBoardSizeOutOfRange, size, l.svcCtx.Config.Search.MaxBoardSize)
	}
	if req.Depth > l.svcCtx.Config.Search.MaxDepth {
		return nil, fmt.Errorf("%w: %d", ErrDepthOutOfRange, req.Depth)
	}

	c := match.Config{
		Difficulty:  difficulty,
		BoardSize:   size,
		Depth:       req.Depth,
		Algorithm:   req.Algorithm,
		PowerTokens: req.PowerTokens,
		BonusBoxes:  req.BonusBoxes,
		FirstPlayer: chess.Human,
		Seed:        req.Seed,
	}
	if req.AIFirst {
		c.FirstPlayer = chess.AI
	}

	m, err := match.New(c, l.svcCtx.MatchRecorder)
	if err != nil {
		return nil, err
	}
	l.svcCtx.Matches.Set(string(m.Uid), m)
	l.Infof("match %s created: %s, size %d", m.Uid, difficulty, size)

	return l.answer(m)
}

func (l *MatchLogic) Get(uid string) (*types.MatchResponse, error) {
	m, err := l.find(uid)
	if err != nil {
		return nil, err
	}
	return response(m, nil), nil
}

// Move draws the Human's line, then lets the AI answer if the turn passed.
func (l *MatchLogic) Move(uid string, req *types.MoveRequest) (*types.MatchResponse, error) {
	m, err := l.find(uid)
	if err != nil {
		return nil, err
	}

	if err = m.PlayHuman(req.Line); err != nil {
		return nil, err
	}
	return l.answer(m)
}

// Power spends the Human's token. The Human keeps the turn afterwards.
func (l *MatchLogic) Power(uid string, req *types.PowerRequest) (*types.MatchResponse, error) {
	m, err := l.find(uid)
	if err != nil {
		return nil, err
	}

	plan, err := m.UseHumanPower(req.Action)
	if err != nil {
		return nil, err
	}

	resp := response(m, nil)
	resp.Power = &plan
	return resp, nil
}

// AI plays the AI's pending moves, for clients that drive the match step
// by step.
func (l *MatchLogic) AI(uid string) (*types.MatchResponse, error) {
	m, err := l.find(uid)
	if err != nil {
		return nil, err
	}

	moves, err := l.runAI(m)
	if err != nil {
		return nil, err
	}
	return response(m, moves), nil
}

func (l *MatchLogic) runAI(m *match.Match) ([]match.AIMove, error) {
	ctx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Search.Timeout)
	defer cancel()
	return m.RunAI(ctx)
}

// answer lets the AI reply to a move that has already been applied. The
// applied move stands even when the AI runs out of time; the response then
// reports the AI turn as pending instead of failing.
func (l *MatchLogic) answer(m *match.Match) (*types.MatchResponse, error) {
	moves, err := l.runAI(m)
	resp := response(m, moves)
	if err != nil {
		if !errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, context.Canceled) {
			return nil, err
		}
		l.Infof("match %s: AI turn left pending: %v", m.Uid, err)
		resp.AIPending = true
	}
	return resp, nil
}

func (l *MatchLogic) find(uid string) (*match.Match, error) {
	id, err := message.ParseGameUid(uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	v, ok := l.svcCtx.Matches.Get(string(id))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchNotFound, id)
	}
	return v.(*match.Match), nil
}

func response(m *match.Match, moves []match.AIMove) *types.MatchResponse {
	resp := &types.MatchResponse{
		GameUid:  string(m.Uid),
		Snapshot: m.Snapshot(),
		AIMoves:  moves,
	}

	if resp.Over = m.Over(); resp.Over {
		resp.Winner = "Draw"
		if p, ok := m.Winner(); ok {
			resp.Winner = p.String()
		}
	}
	return resp
}
