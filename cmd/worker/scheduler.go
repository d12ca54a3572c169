package main

import (
	"log"

	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/pkg/container"
)

// asynqScheduler wraps queue.Scheduler cho graceful shutdown.
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler đăng ký cron jobs và start scheduler.
func setupScheduler(c *container.Container) *asynqScheduler {
	scheduler := queue.NewScheduler(c.Config.Queue)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
