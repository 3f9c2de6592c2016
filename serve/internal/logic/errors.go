package logic

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrDepthOutOfRange = errors.New("depth out of range")
	ErrMatchNotFound   = errors.New("match not found")
)
