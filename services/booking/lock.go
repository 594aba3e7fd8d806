package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Commit lock settings. The TTL only bounds how long a crashed commit
// can hold a tutor; live commits release explicitly.
const (
	commitLockTTL   = 15 * time.Second
	commitLockRetry = 100 * time.Millisecond
	commitLockWait  = 3 * time.Second
)

// ErrCommitContended means another commit held the tutor's lock for the
// whole wait budget.
var ErrCommitContended = errors.New("another booking for this tutor is being committed, try again")

// acquireCommitLock serializes commits per tutor with a Redis SETNX
// lease. Commit-time re-validation alone still leaves a window between
// re-fetch and write where two commits can interleave; the lock closes
// that window for a single Redis deployment. It is a lease, not a
// transaction — if Redis is partitioned the race degrades back to
// last-committer-wins, so the re-validation stays mandatory underneath.
func (s *DefaultBookingService) acquireCommitLock(ctx context.Context, tutorID string) (release func(), err error) {
	key := "commitlock:tutor:" + tutorID
	token := fmt.Sprintf("%d", time.Now().UnixNano())

	deadline := time.Now().Add(commitLockWait)
	for {
		ok, err := s.LockClient.SetNX(ctx, key, token, commitLockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquiring commit lock: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrCommitContended
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(commitLockRetry):
		}
	}

	release = func() {
		// Only delete our own lease.
		val, err := s.LockClient.Get(context.Background(), key).Result()
		if err == nil && val == token {
			s.LockClient.Del(context.Background(), key)
		} else if err != nil && err != redis.Nil {
			s.Logger.Warn("commit lock release failed", zap.Error(err))
		}
	}
	return release, nil
}
