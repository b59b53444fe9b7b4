// Package worker holds the background loops started from main.
package worker

import (
	"context"
	"time"

	"github.com/medhq/hms-api/internal/repository"
	"github.com/medhq/hms-api/pkg/logger"
)

// AuditCleanupWorker prunes audit entries past the retention window so the
// trail does not grow without bound.
type AuditCleanupWorker struct {
	repo          repository.AuditRepository
	retentionDays int
	interval      time.Duration
	log           *logger.Logger
}

func NewAuditCleanupWorker(repo repository.AuditRepository, retentionDays int, interval time.Duration, log *logger.Logger) *AuditCleanupWorker {
	return &AuditCleanupWorker{
		repo:          repo,
		retentionDays: retentionDays,
		interval:      interval,
		log:           log,
	}
}

// Start blocks until ctx is cancelled; run it on its own goroutine.
func (w *AuditCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *AuditCleanupWorker) sweep(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
	removed, err := w.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		w.log.Error(err, "audit cleanup sweep failed")
		return
	}
	if removed > 0 {
		w.log.WithFields(map[string]interface{}{
			"removed": removed,
			"cutoff":  cutoff.Format(time.RFC3339),
		}).Info("pruned expired audit entries")
	}
}
