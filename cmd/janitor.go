package cmd

import (
	"context"
	"time"

	"rental-booking/internal/data/repository"

	"go.uber.org/zap"
)

// SessionJanitor periodically deletes long expired sessions until ctx ends.
func SessionJanitor(ctx context.Context, sessions repository.SessionRepository, every time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.CleanExpiredSessions(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("Session cleanup failed", zap.Error(err))
			}
		}
	}
}
