package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockRetryInterval   = time.Second / 5
	lockReleaseInterval = 2 * time.Second
)

var ErrLockTimeout = errors.New("redis lock not acquired in time")

// RedisLock is a redis.RedisLock that waits for the lock instead of failing.
type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, lockName string, expireSeconds int) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, lockName),
	}
	l.SetExpire(expireSeconds)
	return l
}

// Do runs f while holding the lock. The lock is released even if f fails.
func (l *RedisLock) Do(ctx context.Context, f func() error) (err error) {
	if err = l.Lock(ctx); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(ctx); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock(ctx context.Context) error {
	for {
		acquire, err := l.AcquireCtx(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return errors.Join(ErrLockTimeout, ctx.Err())
			}
			return err
		}

		if acquire {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Join(ErrLockTimeout, ctx.Err())
		case <-time.After(lockRetryInterval):
		}
	}
}

// UnLock releases the lock. A lock that already expired counts as released.
// The release survives the cancellation of ctx, so an abandoned caller does
// not leave the lock held until it expires.
func (l *RedisLock) UnLock(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseInterval)
	defer cancel()

	_, err := l.ReleaseCtx(ctx)
	return err
}
