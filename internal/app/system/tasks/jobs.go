package tasks

import (
	"context"
	"time"

	"github.com/byuhkorea/alumnihub/internal/app/store/oauthstate"
	"go.uber.org/zap"
)

// OAuthStateCleanupJob removes expired sign-in state tokens. The
// collection has a TTL index; this sweep covers the windows where
// Mongo's TTL monitor lags behind.
func OAuthStateCleanupJob(stateStore *oauthstate.Store, logger *zap.Logger) Job {
	return Job{
		Name:     "oauth-state-cleanup",
		Interval: 1 * time.Hour,
		Run: func(ctx context.Context) error {
			count, err := stateStore.CleanupExpired(ctx)
			if err != nil {
				return err
			}
			if count > 0 {
				logger.Debug("removed expired oauth states", zap.Int64("count", count))
			}
			return nil
		},
	}
}
