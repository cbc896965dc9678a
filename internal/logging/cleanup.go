package logging

import (
	"log/slog"
	"time"

	"github.com/softcorner-studio/storefront-api/internal/models"
	"gorm.io/gorm"
)

// StartCleanup launches a goroutine that purges persisted logs older than
// retention once a day. Closing done stops it.
func StartCleanup(db *gorm.DB, retention time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				purgeOldLogs(db, retention)
			case <-done:
				return
			}
		}
	}()
}

func purgeOldLogs(db *gorm.DB, retention time.Duration) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected, "cutoff", cutoff)
	}
}
