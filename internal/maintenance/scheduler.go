// Package maintenance runs periodic housekeeping against the catalog
// database.
package maintenance

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"
)

// Optimizer is the database operation the scheduler invokes.
type Optimizer interface {
	Optimize() error
}

// Scheduler triggers database optimization on a cron schedule.
type Scheduler struct {
	db       Optimizer
	schedule string

	cron       *cron.Cron
	mu         sync.Mutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewScheduler creates a scheduler for the given cron schedule.
func NewScheduler(db Optimizer, schedule string) *Scheduler {
	return &Scheduler{
		db:       db,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler. It is a no-op when already running.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runMaintenance()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Maintenance scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Maintenance scheduler: stopped")
}

func (s *Scheduler) runMaintenance() {
	log.Printf("Maintenance scheduler: optimizing database")
	if err := s.db.Optimize(); err != nil {
		log.Printf("Maintenance scheduler: optimization failed: %v", err)
		return
	}
	log.Printf("Maintenance scheduler: optimization complete")
}
