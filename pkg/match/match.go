package match

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/assess"
	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	ErrGameOver    = chess.ErrGameOver
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Recorder receives every event after it has been applied.
type Recorder interface {
	Record(message.MoveMessage)
}

type nopRecorder struct{}

func (nopRecorder) Record(message.MoveMessage) {}

type Config struct {
	Difficulty Difficulty

	// BoardSize and Depth override the difficulty when positive.
	BoardSize int
	Depth     int

	Algorithm   assess.Algorithm
	PowerTokens bool
	BonusBoxes  int
	FirstPlayer chess.Player

	// Seed drives every random choice of the match. Zero picks one.
	Seed int64
}

// Match owns the canonical state of one Human versus AI game.
type Match struct {
	Uid message.GameUid

	mu       sync.Mutex
	state    *chess.GameState
	searcher *assess.Searcher
	chance   float64
	rng      *rand.Rand
	recorder Recorder
}

// AIMove is one move the AI made, with the power it spent first, if any.
type AIMove struct {
	Power  assess.PowerDecision `json:"power"`
	Move   chess.Line           `json:"move"`
	Moved  bool                 `json:"moved"`
	Score  int                  `json:"score"`
	Nodes  int                  `json:"nodes"`
	Player chess.Player         `json:"player"`
}

func New(c Config, recorder Recorder) (*Match, error) {
	level := c.Difficulty.Level()
	if c.BoardSize > 0 {
		level.BoardSize = c.BoardSize
	}
	if c.Depth > 0 {
		level.Depth = c.Depth
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	rng := rand.New(rand.NewSource(c.Seed))

	opts := []chess.Option{chess.WithFirstPlayer(c.FirstPlayer)}
	if c.PowerTokens {
		opts = append(opts, chess.WithPowerTokens())
		if c.BonusBoxes > 0 {
			opts = append(opts, chess.WithBonusBoxes(c.BonusBoxes, rng))
		}
	}

	state, err := chess.New(level.BoardSize, opts...)
	if err != nil {
		return nil, err
	}

	m := &Match{
		Uid:      message.NewGameUid(),
		state:    state,
		searcher: assess.NewSearcher(level.Depth, c.Algorithm),
		chance:   level.PowerChance,
		rng:      rng,
		recorder: recorder,
	}
	m.recorder.Record(message.NewMoveMessage(m.Uid, message.MatchStarted, state.CurrentPlayer(), state))
	return m, nil
}

// State returns a copy of the canonical state.
func (m *Match) State() *chess.GameState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

func (m *Match) Snapshot() chess.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Snapshot()
}

func (m *Match) Over() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.IsTerminal()
}

// Winner reports the leader of a finished match; ok is false for a draw or
// a match still in progress.
func (m *Match) Winner() (p chess.Player, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsTerminal() {
		return 0, false
	}
	switch e := m.state.Evaluate(); {
	case e > 0:
		return chess.AI, true
	case e < 0:
		return chess.Human, true
	}
	return 0, false
}

func (m *Match) turnOf(p chess.Player) error {
	if m.state.IsTerminal() {
		return ErrGameOver
	}
	if m.state.CurrentPlayer() != p {
		return ErrNotYourTurn
	}
	return nil
}

func (m *Match) PlayHuman(line chess.Line) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.turnOf(chess.Human); err != nil {
		return err
	}
	if !m.state.Legal(line) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, line)
	}

	m.move(chess.Human, line)
	return nil
}

func (m *Match) UseHumanPower(action chess.PowerAction) (chess.PowerPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.turnOf(chess.Human); err != nil {
		return chess.PowerPlan{}, err
	}

	plan := m.state.PlanPower(action, m.rng)
	if err := m.power(chess.Human, plan); err != nil {
		return chess.PowerPlan{}, err
	}
	return plan, nil
}

// PlayAI makes one AI move: it may first spend a token, then searches and
// draws a line. After a capture the AI is still to move.
func (m *Match) PlayAI(ctx context.Context) (AIMove, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.turnOf(chess.AI); err != nil {
		return AIMove{}, err
	}

	turn := AIMove{Player: chess.AI}

	decision, err := m.searcher.DecidePower(ctx, m.state, m.rng, m.chance)
	if err != nil {
		return AIMove{}, err
	}
	turn.Power = decision
	if decision.Plan.Action != chess.NoPower {
		if err = m.power(chess.AI, decision.Plan); err != nil {
			return AIMove{}, err
		}
	}

	if m.state.IsTerminal() {
		return turn, nil
	}

	r, err := m.searcher.BestMove(ctx, m.state)
	if err != nil {
		return AIMove{}, err
	}
	if !r.Found {
		return turn, nil
	}

	m.move(chess.AI, r.Move)
	turn.Move, turn.Moved, turn.Score, turn.Nodes = r.Move, true, r.Score, r.Nodes

	logx.WithContext(ctx).Infof("match %s: AI drew %v (score %d)", m.Uid, r.Move, r.Score)
	return turn, nil
}

// RunAI keeps playing AI moves until the Human is to move or the match ends.
func (m *Match) RunAI(ctx context.Context) (moves []AIMove, err error) {
	for {
		turn, err := m.PlayAI(ctx)
		if errors.Is(err, ErrNotYourTurn) || errors.Is(err, ErrGameOver) {
			return moves, nil
		}
		if err != nil {
			return moves, err
		}

		moves = append(moves, turn)
		if !turn.Moved {
			return moves, nil
		}
	}
}

func (m *Match) move(p chess.Player, line chess.Line) {
	m.state.MakeMove(line)

	msg := message.NewMoveMessage(m.Uid, message.LineDrawn, p, m.state)
	msg.Line = &line
	m.recorder.Record(msg)
	m.recordEnd(p)
}

func (m *Match) power(p chess.Player, plan chess.PowerPlan) error {
	if err := m.state.ApplyPower(plan); err != nil {
		return err
	}

	msg := message.NewMoveMessage(m.Uid, message.PowerUsed, p, m.state)
	msg.Power = &plan
	m.recorder.Record(msg)
	m.recordEnd(p)
	return nil
}

func (m *Match) recordEnd(last chess.Player) {
	if !m.state.IsTerminal() {
		return
	}

	m.recorder.Record(message.NewMoveMessage(m.Uid, message.MatchEnded, last, m.state))
	logx.Infof("match %s over: Human %d, AI %d", m.Uid, m.state.Score(chess.Human), m.state.Score(chess.AI))
}
