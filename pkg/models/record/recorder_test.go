package record

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/models/chess"
	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryModel struct {
	mu      sync.Mutex
	records []*MoveRecord
}

func (m *memoryModel) InsertMany(_ context.Context, data []*MoveRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, data...)
	return nil
}

func (m *memoryModel) FindOne(context.Context, string) (*MoveRecord, error) {
	return nil, ErrNotFound
}

func (m *memoryModel) FindByGame(_ context.Context, gameUid string) (found []*MoveRecord, _ error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.GameUid == gameUid {
			found = append(found, r)
		}
	}
	return
}

func TestRecorderFlushesOnStop(t *testing.T) {
	model := &memoryModel{}
	r := NewRecorder(model, time.Hour)
	r.Start()

	s, err := chess.New(3)
	require.NoError(t, err)
	uid := message.NewGameUid()

	r.Record(message.NewMoveMessage(uid, message.MatchStarted, chess.Human, s))
	line := chess.VLine(0, 0)
	s.MakeMove(line)
	m := message.NewMoveMessage(uid, message.LineDrawn, chess.Human, s)
	m.Line = &line
	r.Record(m)

	require.NoError(t, r.Stop(context.Background()))

	records, err := model.FindByGame(context.Background(), string(uid))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "start", records[0].Kind)
	assert.Equal(t, line.String(), records[1].Line)
	assert.Equal(t, "AI", records[1].NextPlayer)
}

func TestNewMoveRecordNamesWinner(t *testing.T) {
	m := message.MoveMessage{
		Kind:       message.MatchEnded,
		Player:     chess.AI,
		NextPlayer: chess.AI,
		HumanScore: 3,
		AIScore:    6,
		GameOver:   true,
		Power:      &chess.PowerPlan{Action: chess.SwapLines, Lines: []chess.Line{chess.HLine(0, 0)}},
	}

	r := NewMoveRecord(m)
	assert.Equal(t, "AI", r.Winner)
	assert.Equal(t, "swap", r.Power)
	assert.Equal(t, []string{chess.HLine(0, 0).String()}, r.PowerLines)

	m.AIScore = 3
	assert.Equal(t, "Draw", NewMoveRecord(m).Winner)
}
