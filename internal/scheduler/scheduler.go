package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/tripweather/activity-planner/internal/planner"
	"github.com/tripweather/activity-planner/internal/weather"
)

// Scheduler periodically refreshes activity reports for configured locations.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *planner.Service
	locations []weather.Location
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []weather.Location, interval time.Duration, service *planner.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: refreshing activity reports")

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			wg.Add(1)
			go func(loc weather.Location) {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if _, err := s.service.Refresh(ctx, loc); err != nil {
					log.Printf("scheduler: refresh failed for %s: %v", loc.Key(), err)
				}
			}(loc)
		}
		wg.Wait()
		log.Println("scheduler: completed report refresh")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
