package assess

import (
	"context"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/zeromicro/go-zero/core/logx"
)

const DefaultDepth = 2

type Result struct {
	Score int        `json:"score"`
	Move  chess.Line `json:"move"`
	Found bool       `json:"found"`
	Nodes int        `json:"nodes"`
}

// Searcher is the blocking search entry point. Unlike Minimax and
// AlphaBeta it can be abandoned through its context.
type Searcher struct {
	Depth     int
	Algorithm Algorithm
}

func NewSearcher(depth int, algorithm Algorithm) *Searcher {
	if depth < 0 {
		depth = DefaultDepth
	}
	return &Searcher{Depth: depth, Algorithm: algorithm}
}

// BestMove searches for the player to move: the AI maximizes, the Human
// minimizes.
func (se *Searcher) BestMove(ctx context.Context, state *chess.GameState) (Result, error) {
	start := time.Now()
	t := tree{ctx: ctx}
	maximizing := state.CurrentPlayer() == chess.AI

	var (
		r   Result
		err error
	)
	switch se.Algorithm {
	case MinimaxSearch:
		r.Score, r.Move, r.Found, err = t.minimax(state, se.Depth, maximizing)
	default:
		r.Score, r.Move, r.Found, err = t.alphaBeta(state, se.Depth, -Inf, Inf, maximizing)
	}
	r.Nodes = t.nodes

	if err != nil {
		logx.WithContext(ctx).Errorf("%s search abandoned after %d nodes: %v", se.Algorithm, t.nodes, err)
		return Result{}, err
	}

	logx.WithContext(ctx).WithDuration(time.Since(start)).Debugf("%s depth %d: %v scores %d over %d nodes",
		se.Algorithm, se.Depth, r.Move, r.Score, r.Nodes)
	return r, nil
}
