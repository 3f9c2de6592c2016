package model

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
)

func TestLockReleasedAfterFailure(t *testing.T) {
	rds := redistest.CreateRedis(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := NewLock(rds, "test-lock", 5).Do(ctx, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	ran := false
	require.NoError(t, NewLock(rds, "test-lock", 5).Do(ctx, func() error {
		ran = true
		return nil
	}))
	assert.True(t, ran)
}

func TestLockWaitsUntilContextEnds(t *testing.T) {
	rds := redistest.CreateRedis(t)

	held := NewLock(rds, "busy-lock", 30)
	require.NoError(t, held.Lock(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := NewLock(rds, "busy-lock", 30).Do(ctx, func() error { return nil })
	assert.ErrorIs(t, err, ErrLockTimeout)
}

func TestLockReleasedAfterContextEnds(t *testing.T) {
	rds := redistest.CreateRedis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := NewLock(rds, "abandoned-lock", 30).Do(ctx, func() error {
		<-ctx.Done()
		return ctx.Err()
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	held, err := rds.Exists("abandoned-lock")
	require.NoError(t, err)
	assert.False(t, held)

	next, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	assert.NoError(t, NewLock(rds, "abandoned-lock", 30).Do(next, func() error { return nil }))
}
