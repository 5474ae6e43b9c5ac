package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/pranathi988/Kamadhenu-app/internal/config"
	"github.com/pranathi988/Kamadhenu-app/internal/repository/sqlite"
)

// digestWindow is how far back the activity digest looks.
const digestWindow = 7 * 24 * time.Hour

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron   *cron.Cron
	store  *sqlite.Store
	cfg    config.DigestConfig
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.DigestConfig, store *sqlite.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("unknown timezone, falling back to local",
			zap.String("timezone", cfg.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc)),
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.logActivityDigest); err != nil {
		s.logger.Error("failed to schedule activity digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) logActivityDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	since := time.Now().Add(-digestWindow)
	counts, err := s.store.ActivityCounts(ctx, since)
	if err != nil {
		s.logger.Error("failed to generate activity digest", zap.Error(err))
		return
	}

	s.logger.Info("weekly activity digest",
		zap.Time("since", since),
		zap.Int("chat_queries", counts.Queries),
		zap.Int("image_analyses", counts.ImageAnalyses),
		zap.Int("breeding_pairs", counts.BreedingPairs))
}
