package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/mmdatafocus/positnow_mobile/config"
)

var ErrSessionBusy = errors.New("another change to this screen is in progress")

const sessionLockTTL = 10 * time.Second

// SessionLock serializes read-modify-write cycles on one session's screen state.
// The returned release func must be called once the write is done.
func SessionLock(ctx context.Context, sessionId string, lockType string, moduleName string, functionName string) (func(), error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		config.LogError(logger, moduleName, functionName, "Redis lock not initialized", sessionId, errors.New("redis lock is nil"))
		return nil, errors.New("service not ready (redis lock not initialized)")
	}
	lockKey := fmt.Sprintf("lock:%s:%s", lockType, sessionId)
	lock, err := locker.Obtain(ctx, lockKey, sessionLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(50*time.Millisecond), 20),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		config.LogError(logger, moduleName, functionName, "Could not obtain lock for session", sessionId, err)
		return nil, ErrSessionBusy
	} else if err != nil {
		config.LogError(logger, moduleName, functionName, "Error obtaining lock for session", sessionId, err)
		return nil, err
	}
	return func() {
		// detached so a cancelled request still frees the lock
		_ = lock.Release(context.WithoutCancel(ctx))
	}, nil
}
