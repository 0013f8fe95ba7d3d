package ws

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sol9x-harsh/industrial-communication-system/pkg/common"
)

// RunSweeper periodically evicts devices whose last heartbeat is older than
// the stale threshold. The registry broadcasts the disconnect events; the hub
// only has to release the session bindings.
func (h *Hub) RunSweeper(ctx context.Context) {
	logger := common.GetLogger().Named(common.LoggerNameWsHub)

	ticker := time.NewTicker(h.Comms.Settings.SweepInterval)
	defer ticker.Stop()

	logger.Info("Stale-device sweeper started",
		zap.Duration("interval", h.Comms.Settings.SweepInterval),
		zap.Duration("threshold", h.Comms.Settings.StaleThreshold))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stale-device sweeper stopped")
			return
		case now := <-ticker.C:
			evicted := h.Comms.Registry.SweepStale(now, h.Comms.Settings.StaleThreshold)
			if len(evicted) > 0 {
				h.unbindDevices(evicted)
			}
		}
	}
}
