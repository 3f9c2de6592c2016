package message

import (
	"time"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/bytedance/sonic"
)

type MoveKind string

const (
	MatchStarted MoveKind = "start"
	LineDrawn    MoveKind = "line"
	PowerUsed    MoveKind = "power"
	MatchEnded   MoveKind = "end"
)

// MoveMessage describes one event of a match after it was applied.
type MoveMessage struct {
	TimeStamp
	GameUid
	Kind       MoveKind         `json:"kind"`
	Step       int              `json:"step"`
	BoardSize  int              `json:"boardSize"`
	Player     chess.Player     `json:"player"`
	Line       *chess.Line      `json:"line,omitempty"`
	Power      *chess.PowerPlan `json:"power,omitempty"`
	NextPlayer chess.Player     `json:"nextPlayer"`
	HumanScore int              `json:"humanScore"`
	AIScore    int              `json:"aiScore"`
	GameOver   bool             `json:"gameOver"`
}

// NewMoveMessage fills the board-derived fields from state.
func NewMoveMessage(uid GameUid, kind MoveKind, player chess.Player, state *chess.GameState) MoveMessage {
	return MoveMessage{
		TimeStamp:  NewTimeStamp(time.Now()),
		GameUid:    uid,
		Kind:       kind,
		Step:       state.TurnCount(),
		BoardSize:  state.Size(),
		Player:     player,
		NextPlayer: state.CurrentPlayer(),
		HumanScore: state.Score(chess.Human),
		AIScore:    state.Score(chess.AI),
		GameOver:   state.IsTerminal(),
	}
}

func ParseMoveMessage(str string) (m MoveMessage, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m MoveMessage) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}
