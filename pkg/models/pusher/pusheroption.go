package pusher

import (
	"context"
	"time"
)

type Option[T any] func(*Pusher[T])

func WithPushLogic[T any](pushLogic func(context.Context, ...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.pushLogic = pushLogic
	}
}

func WithPushInterval[T any](pushInterval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		if pushInterval > 0 {
			p.pushInterval = pushInterval
		}
	}
}

func WithErrorHandler[T any](errorHandler func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.errorHandler = errorHandler
	}
}

func WithElements[T any](element ...T) Option[T] {
	return func(p *Pusher[T]) {
		p.messagesBuffer = append(p.messagesBuffer, element...)
	}
}
