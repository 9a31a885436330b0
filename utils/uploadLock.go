package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/armazemdata/corte_backend/config"
	"github.com/bsm/redislock"
)

// ErrUploadInProgress signals that another upload for the same kind and
// business date is still running.
var ErrUploadInProgress = errors.New("upload em andamento para este tipo e data")

// Replace-by-date is delete-then-insert, so two concurrent uploads of the
// same kind+date would interleave destructively. Uploads for different
// dates or kinds touch disjoint partitions and stay parallel.
const uploadLockTTL = 10 * time.Minute

// ObtainUploadLock takes the per-(tipo, data) upload lock and returns a
// release function. The TTL bounds how long a crashed upload can keep the
// date locked.
func ObtainUploadLock(ctx context.Context, tipo string, dataArquivo string) (func(), error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		// Avoid nil-pointer panics when Redis lock isn't initialized yet.
		err := errors.New("redis lock is nil")
		config.LogError(logger, "utils", "ObtainUploadLock", "Redis lock not initialized", tipo+":"+dataArquivo, err)
		return nil, errors.New("service not ready (redis lock not initialized)")
	}

	lockKey := fmt.Sprintf("upload:%s:%s", tipo, dataArquivo)
	lock, err := locker.Obtain(ctx, lockKey, uploadLockTTL, nil)
	if err == redislock.ErrNotObtained {
		config.LogError(logger, "utils", "ObtainUploadLock", "Upload lock already held", lockKey, err)
		return nil, ErrUploadInProgress
	} else if err != nil {
		config.LogError(logger, "utils", "ObtainUploadLock", "Error obtaining upload lock", lockKey, err)
		return nil, err
	}

	release := func() {
		_ = lock.Release(context.Background())
	}
	return release, nil
}
