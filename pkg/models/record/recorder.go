package record

import (
	"context"
	"time"

	"github.com/HuXin0817/power-boxes/pkg/models/message"
	"github.com/HuXin0817/power-boxes/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

// Recorder batches match events into mongo. Recording never blocks play;
// failed batches stay buffered and are retried on the next flush.
type Recorder struct {
	pusher *pusher.Pusher[message.MoveMessage]
}

func NewRecorder(model MoveRecordModel, interval time.Duration) *Recorder {
	push := func(ctx context.Context, messages ...message.MoveMessage) error {
		records := make([]*MoveRecord, 0, len(messages))
		for _, m := range messages {
			records = append(records, NewMoveRecord(m))
		}
		return model.InsertMany(ctx, records)
	}

	return &Recorder{
		pusher: pusher.NewPusher(
			pusher.WithPushLogic(push),
			pusher.WithPushInterval[message.MoveMessage](interval),
			pusher.WithErrorHandler[message.MoveMessage](func(err error) {
				logx.Errorf("record moves: %v", err)
			}),
		),
	}
}

func (r *Recorder) Record(m message.MoveMessage) {
	r.pusher.AddMessages(m)
}

func (r *Recorder) Start() {
	r.pusher.Start()
}

func (r *Recorder) Stop(ctx context.Context) error {
	return r.pusher.Stop(ctx)
}
