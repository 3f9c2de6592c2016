package record

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mopt "go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound        = mon.ErrNotFound
	ErrInvalidObjectId = errors.New("invalid objectId")
)

type moveRecordModel interface {
	InsertMany(ctx context.Context, data []*MoveRecord) error
	FindOne(ctx context.Context, id string) (*MoveRecord, error)
	FindByGame(ctx context.Context, gameUid string) ([]*MoveRecord, error)
}

type defaultMoveRecordModel struct {
	conn *mon.Model
}

func newDefaultMoveRecordModel(conn *mon.Model) *defaultMoveRecordModel {
	return &defaultMoveRecordModel{conn: conn}
}

func stamp(data *MoveRecord, now time.Time) {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = now
	}
	data.UpdateAt = now
}

func (m *defaultMoveRecordModel) InsertMany(ctx context.Context, data []*MoveRecord) error {
	if len(data) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(data))
	for _, d := range data {
		stamp(d, now)
		docs = append(docs, d)
	}

	_, err := m.conn.InsertMany(ctx, docs)
	return err
}

func (m *defaultMoveRecordModel) FindOne(ctx context.Context, id string) (*MoveRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data MoveRecord
	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch {
	case err == nil:
		return &data, nil
	case errors.Is(err, mon.ErrNotFound):
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultMoveRecordModel) FindByGame(ctx context.Context, gameUid string) ([]*MoveRecord, error) {
	var data []*MoveRecord
	opts := mopt.Find().SetSort(bson.D{{Key: "step", Value: 1}, {Key: "_id", Value: 1}})
	if err := m.conn.Find(ctx, &data, bson.M{"gameUid": gameUid}, opts); err != nil {
		return nil, err
	}
	return data, nil
}
