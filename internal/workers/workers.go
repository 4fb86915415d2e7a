package workers

import (
	"context"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
)

// Workers aggregates all background jobs so main can start and stop them as
// one unit.
type Workers struct {
	MediaSweeper Worker
}

func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		MediaSweeper: NewMediaSweeper(storages.Media, storages.MediaFiles, cfg.SweepInterval, logger),
	}
}

// StartAll launches every job against ctx.
func (w *Workers) StartAll(ctx context.Context) {
	w.MediaSweeper.Start(ctx)
}

// StopAll stops every job and blocks until all background goroutines exit.
func (w *Workers) StopAll() {
	w.MediaSweeper.Stop()
}
