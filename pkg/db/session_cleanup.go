package db

import (
	"context"
	"time"
)

const SessionCleanupInterval = time.Hour

// CleanupExpiredSessions drops drill session snapshots that can no longer be
// restored.
func CleanupExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if DB == nil {
		return 0, nil
	}
	res := DB.WithContext(ctx).Where("expires_at <= ?", now).Delete(&DrillSession{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
