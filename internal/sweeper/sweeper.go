// Package sweeper wires up the cron job that periodically marks old job
// postings as expired.
package sweeper

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/seekwell-dev/job-board/backend/internal/config"
	"github.com/seekwell-dev/job-board/backend/internal/repository"
)

type Sweeper struct {
	cron       *cron.Cron
	repository *repository.Repository
	spec       string
	maxAge     time.Duration
}

func New(repo *repository.Repository, cfg *config.Config) *Sweeper {
	return &Sweeper{
		cron:       cron.New(),
		repository: repo,
		spec:       fmt.Sprintf("@every %dh", cfg.Sweeper.IntervalHours),
		maxAge:     time.Duration(cfg.Sweeper.ExpireAfterDays) * 24 * time.Hour,
	}
}

// Start registers the sweep and starts the schedule. One sweep runs
// immediately so a restart does not leave stale postings live for a full
// interval.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}

	s.cron.Start()
	slog.Info("expiry sweeper started", "spec", s.spec)

	go s.run()

	return nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
	slog.Info("expiry sweeper stopped")
}

func (s *Sweeper) run() {
	cutoff := time.Now().Add(-s.maxAge)

	n, err := s.repository.ExpireJobsPostedBefore(cutoff)
	if err != nil {
		slog.Error("failed to expire old job postings", "error", err)
		return
	}

	if n > 0 {
		slog.Info("expired old job postings", "count", n)
	}
}
