package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/lexdesk-dev/lexdesk/internal/store"
)

// backupHour is the fixed off-peak hour (local time) for the daily
// automatic backup.
const backupHour = 2

// Scheduler triggers the store's backup once daily. It is owned by the
// application lifecycle: started at initialization, stopped at
// shutdown. A manual backup and a scheduled one may overlap; each
// produces its own timestamped file.
type Scheduler struct {
	store     *store.Store
	backupDir string
	ctx       context.Context
	cancel    context.CancelFunc
}

func New(st *store.Store, backupDir string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		store:     st,
		backupDir: backupDir,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start begins the daily backup loop.
func (s *Scheduler) Start() {
	log.Printf("Backup scheduler started, next run at %s", nextRun(time.Now()).Format(time.RFC3339))
	go s.run()
}

// Stop cancels the loop. A copy already in flight is not interrupted.
func (s *Scheduler) Stop() {
	log.Println("Stopping backup scheduler...")
	s.cancel()
}

func (s *Scheduler) run() {
	for {
		timer := time.NewTimer(time.Until(nextRun(time.Now())))

		select {
		case <-s.ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			dest, _, err := s.store.Backup(s.backupDir)
			if err != nil {
				log.Printf("Scheduled backup failed to start: %v", err)
				continue
			}
			log.Printf("Scheduled backup started: %s", dest)
		}
	}
}

// nextRun returns the next occurrence of the backup hour strictly after
// now.
func nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), backupHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
