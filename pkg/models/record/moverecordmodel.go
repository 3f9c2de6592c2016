package record

import "github.com/zeromicro/go-zero/core/stores/mon"

const MoveRecordCollectionName = "move_record"

var _ MoveRecordModel = (*customMoveRecordModel)(nil)

type (
	// MoveRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customMoveRecordModel.
	MoveRecordModel interface {
		moveRecordModel
	}

	customMoveRecordModel struct {
		*defaultMoveRecordModel
	}
)

// NewMoveRecordModel returns a model for the mongo.
func NewMoveRecordModel(url, db string) MoveRecordModel {
	conn := mon.MustNewModel(url, db, MoveRecordCollectionName)
	return &customMoveRecordModel{
		defaultMoveRecordModel: newDefaultMoveRecordModel(conn),
	}
}
