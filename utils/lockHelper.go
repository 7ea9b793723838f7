package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/aakashreddy12/CRMA/config"
	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

const mutationLockTTL = 30 * time.Second

// WithMutationLock serializes mutating actions per (project, action).
// A second request while one is outstanding gets ErrorMutationInFlight
// (the UI shows the control as disabled). Rapid double-clicks must not
// produce duplicate writes.
//
// Redis being down degrades to no guard: the write path must not depend
// on redis for correctness, only for duplicate suppression.
func WithMutationLock(ctx context.Context, projectId int, action string, fn func() error) error {
	if !config.MutationGuardEnabled() {
		return fn()
	}

	locker := config.GetRedisLock()
	if locker == nil {
		config.GetLogger().WithFields(logrus.Fields{
			"field":      "WithMutationLock",
			"project_id": projectId,
			"action":     action,
		}).Warn("redis lock not ready; proceeding without mutation guard")
		return fn()
	}

	key := fmt.Sprintf("mutation:%d:%s", projectId, action)
	lock, err := locker.Obtain(ctx, key, mutationLockTTL, nil)
	if err == redislock.ErrNotObtained {
		return ErrorMutationInFlight
	}
	if err != nil {
		config.GetLogger().WithFields(logrus.Fields{
			"field":      "WithMutationLock",
			"project_id": projectId,
			"action":     action,
		}).Warn("error obtaining mutation lock; proceeding without guard: " + err.Error())
		return fn()
	}
	defer func() {
		if releaseErr := lock.Release(ctx); releaseErr != nil && releaseErr != redislock.ErrLockNotHeld {
			config.GetLogger().WithFields(logrus.Fields{
				"field":      "WithMutationLock",
				"project_id": projectId,
				"action":     action,
			}).Warn("failed to release mutation lock: " + releaseErr.Error())
		}
	}()

	return fn()
}
