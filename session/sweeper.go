package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	if m.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				logger.Debug("swept idle sessions", zap.Int("removed", n), zap.Int("live", m.Len()))
			}
		}
	}
}
