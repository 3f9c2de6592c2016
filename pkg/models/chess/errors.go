package chess

import "errors"

var (
	ErrBoardSizeOutOfRange = errors.New("board size out of range")
	ErrGameOver            = errors.New("game is over")
	ErrPowerDisabled       = errors.New("power tokens are disabled")
	ErrNoPowerToken        = errors.New("no power token to spend")
	ErrNothingToReverse    = errors.New("no line to reverse")
	ErrInvalidPowerPlan    = errors.New("invalid power plan")
	ErrInvalidSnapshot     = errors.New("invalid snapshot")
)
