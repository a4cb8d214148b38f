package cleanup

import (
	"context"
	"time"

	"github.com/iamasit07/connectx/internal/service/game"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	DefaultInterval = time.Minute
	DefaultMaxAge   = 5 * time.Minute
)

type Worker struct {
	SessionManager *game.SessionManager
	Interval       time.Duration
	MaxAge         time.Duration // how long a finished session stays around
}

func NewWorker(sm *game.SessionManager) *Worker {
	return &Worker{SessionManager: sm, Interval: DefaultInterval, MaxAge: DefaultMaxAge}
}

// Start runs the cleanup on every tick until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				logx.Info("[CLEANUP] Background worker stopped")
				return
			case <-ticker.C:
				w.RunCleanup()
			}
		}
	}()
	logx.Info("[CLEANUP] Background worker started")
}

// RunCleanup removes finished sessions older than MaxAge.
func (w *Worker) RunCleanup() int {
	removed := w.SessionManager.CleanupFinishedSessions(w.MaxAge)
	logx.Debugf("[CLEANUP] Removed %d finished sessions", removed)
	return removed
}
