package workers

import (
	"testing"
	"time"

	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/config"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/logger"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/mock"
	"github.com/DkshLuvsDucks/FCS-Project-Fixed-sub002/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{
		Media:      mock.NewMockMediaRepository(ctrl),
		MediaFiles: mock.NewMockMediaFileStore(ctrl),
	}

	jobs := NewWorkers(storages, config.Workers{SweepInterval: time.Minute}, logger.Nop())

	require.NotNil(t, jobs)
	assert.NotNil(t, jobs.MediaSweeper)
}

func TestNewMediaSweeper_DefaultInterval(t *testing.T) {
	ctrl := gomock.NewController(t)

	sweeper := NewMediaSweeper(
		mock.NewMockMediaRepository(ctrl),
		mock.NewMockMediaFileStore(ctrl),
		0,
		logger.Nop(),
	).(*mediaSweeper)

	assert.Equal(t, 10*time.Minute, sweeper.interval)
}
