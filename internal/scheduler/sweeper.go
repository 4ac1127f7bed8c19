package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"github.com/lshigami/Launchpad/config"
	"github.com/lshigami/Launchpad/internal/middleware"
	"github.com/lshigami/Launchpad/internal/session"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically drops idle sessions and stale rate limiter visitors.
type Sweeper struct {
	scheduler *gocron.Scheduler
	store     *session.Store
	limiter   *middleware.RateLimiter
	ttl       time.Duration
	interval  time.Duration
}

func NewSweeper(cfg *config.Config, store *session.Store, limiter *middleware.RateLimiter) *Sweeper {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Sweeper{
		scheduler: s,
		store:     store,
		limiter:   limiter,
		ttl:       cfg.Session.TTL,
		interval:  cfg.Session.SweepInterval,
	}
}

// Start schedules the sweep and returns without blocking.
func (s *Sweeper) Start() error {
	if _, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(func() { s.Sweep() }); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	log.Info().Dur("interval", s.interval).Dur("ttl", s.ttl).Msg("Session sweeper started")
	return nil
}

func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

// Sweep runs one pass and reports what it removed.
func (s *Sweeper) Sweep() (sessions int, visitors int) {
	sessions = s.store.Sweep(s.ttl)
	visitors = s.limiter.Cleanup()
	if sessions > 0 || visitors > 0 {
		log.Info().Int("sessions", sessions).Int("visitors", visitors).Msg("Swept idle entries")
	}
	return sessions, visitors
}
