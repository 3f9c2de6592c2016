package record

import (
	"time"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid    string   `bson:"gameUid" json:"gameUid"`
	PlayedAt   string   `bson:"playedAt" json:"playedAt"`
	Kind       string   `bson:"kind" json:"kind"`
	Step       int      `bson:"step" json:"step"`
	BoardSize  int      `bson:"boardSize" json:"boardSize"`
	Player     string   `bson:"player" json:"player"`
	Line       string   `bson:"line,omitempty" json:"line,omitempty"`
	Power      string   `bson:"power,omitempty" json:"power,omitempty"`
	PowerLines []string `bson:"powerLines,omitempty" json:"powerLines,omitempty"`
	NextPlayer string   `bson:"nextPlayer" json:"nextPlayer"`
	HumanScore int      `bson:"humanScore" json:"humanScore"`
	AIScore    int      `bson:"aiScore" json:"aiScore"`
	GameOver   bool     `bson:"gameOver" json:"gameOver"`
	Winner     string   `bson:"winner,omitempty" json:"winner,omitempty"`
}

func NewMoveRecord(m message.MoveMessage) *MoveRecord {
	r := &MoveRecord{
		GameUid:    string(m.GameUid),
		PlayedAt:   string(m.TimeStamp),
		Kind:       string(m.Kind),
		Step:       m.Step,
		BoardSize:  m.BoardSize,
		Player:     m.Player.String(),
		NextPlayer: m.NextPlayer.String(),
		HumanScore: m.HumanScore,
		AIScore:    m.AIScore,
		GameOver:   m.GameOver,
	}

	if m.Line != nil {
		r.Line = m.Line.String()
	}

	if m.Power != nil {
		r.Power = m.Power.Action.String()
		for _, l := range m.Power.Lines {
			r.PowerLines = append(r.PowerLines, l.String())
		}
	}

	if m.GameOver {
		switch {
		case m.HumanScore > m.AIScore:
			r.Winner = chess.Human.String()
		case m.HumanScore < m.AIScore:
			r.Winner = chess.AI.String()
		default:
			r.Winner = "Draw"
		}
	}

	return r
}
