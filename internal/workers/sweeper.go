package workers

import (
	"context"
	"sync"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
)

// orphanGracePeriod keeps freshly uploaded blobs alive long enough for the
// message that references them to be sent.
const orphanGracePeriod = time.Hour

type mediaSweeper struct {
	media    store.MediaRepository
	files    store.MediaFileStore
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMediaSweeper creates a sweeper that reclaims orphaned media on a
// ticker. The job is idle until Start is called. If interval is zero or
// negative it defaults to 10 minutes.
func NewMediaSweeper(media store.MediaRepository, files store.MediaFileStore, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &mediaSweeper{
		media:    media,
		files:    files,
		interval: interval,
		logger:   logger,
	}
}

// Start implements [Worker]. It stops any previously running sweep loop,
// then launches a background goroutine that calls sweep every interval.
func (s *mediaSweeper) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "*mediaSweeper.Start").
		Dur("interval", s.interval).
		Msg("media sweeper started")

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				s.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (s *mediaSweeper) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// sweep removes every orphaned media object older than the grace period.
// Failures are logged per object: one stuck blob never blocks the rest of
// the pass.
func (s *mediaSweeper) sweep(ctx context.Context) {
	orphans, err := s.media.ListOrphanMedia(ctx, time.Now().Add(-orphanGracePeriod))
	if err != nil {
		s.logger.Err(err).Str("func", "*mediaSweeper.sweep").Msg("error listing orphan media")
		return
	}
	if len(orphans) == 0 {
		return
	}

	s.logger.Info().
		Str("func", "*mediaSweeper.sweep").
		Int("count", len(orphans)).
		Msg("reclaiming orphan media")

	for _, orphan := range orphans {
		if err := s.files.DeleteBlob(ctx, orphan.BlobKey); err != nil {
			s.logger.Err(err).
				Str("func", "*mediaSweeper.sweep").
				Int64("media_id", orphan.ID).
				Str("blob_key", orphan.BlobKey).
				Msg("error deleting orphan blob")
			continue
		}

		if err := s.media.DeleteMediaObject(ctx, orphan.ID); err != nil {
			s.logger.Err(err).
				Str("func", "*mediaSweeper.sweep").
				Int64("media_id", orphan.ID).
				Msg("error deleting orphan metadata row")
		}
	}
}
