package pusher

import (
	"context"
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, either
// every PushInterval or when PushAll is called.
type Pusher[T any] struct {
	messagesBuffer []T
	pushLogic      func(context.Context, ...T) error
	pushInterval   time.Duration
	errorHandler   func(error)

	lock     sync.Mutex
	stop     chan struct{}
	done     chan struct{}
	startOne sync.Once
	stopOne  sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		pushLogic:    func(context.Context, ...T) error { return nil },
		errorHandler: func(err error) { logx.Errorf("push messages: %v", err) },
		pushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

// PushAll pushes everything buffered so far. On failure the batch goes
// back to the front of the buffer.
func (p *Pusher[T]) PushAll(ctx context.Context) error {
	p.lock.Lock()
	batch := p.messagesBuffer
	p.messagesBuffer = nil
	p.lock.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := p.pushLogic(ctx, batch...); err != nil {
		p.lock.Lock()
		p.messagesBuffer = append(batch, p.messagesBuffer...)
		p.lock.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.messagesBuffer = append(p.messagesBuffer, messages...)
}

func (p *Pusher[T]) Buffered() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.messagesBuffer)
}

func (p *Pusher[T]) Start() {
	p.startOne.Do(func() {
		go func() {
			defer close(p.done)

			ticker := time.NewTicker(p.pushInterval)
			defer ticker.Stop()

			for {
				select {
				case <-p.stop:
					return
				case <-ticker.C:
					if err := p.PushAll(context.Background()); err != nil {
						p.errorHandler(err)
					}
				}
			}
		}()
	})
}

// Stop ends the background loop and flushes what is left.
func (p *Pusher[T]) Stop(ctx context.Context) error {
	p.stopOne.Do(func() { close(p.stop) })

	// A pusher that never started has no loop to wait for.
	p.startOne.Do(func() { close(p.done) })
	select {
	case <-p.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return p.PushAll(ctx)
}
