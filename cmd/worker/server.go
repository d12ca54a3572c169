package main

import (
	"log"

	"github.com/hibiken/asynq"

	"newsroom-backend/internal/domains/upload/job"
	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/internal/infrastructure/storage"
	"newsroom-backend/pkg/container"
)

// asynqServer wraps asynq.Server cho graceful shutdown.
type asynqServer struct {
	server *asynq.Server
}

// setupAsynqServer đăng ký task handlers và start server.
func setupAsynqServer(c *container.Container) *asynqServer {
	cfg := c.Config.Queue

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{
			Concurrency: cfg.Concurrency,
			Queues: map[string]int{
				queue.QueueUploads: 10,
			},
		},
	)

	processor := storage.NewImageProcessor()

	mux := asynq.NewServeMux()
	mux.Handle(queue.TypeProcessUploadImage, job.NewProcessImageHandler(c.Storage, processor))
	mux.Handle(queue.TypeSweepOrphanUploads, job.NewSweepOrphansHandler(c.Storage, c.ArticleRepo))

	go func() {
		log.Println("[Worker] Starting asynq server...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed to run: %v", err)
		}
	}()

	return &asynqServer{server: srv}
}

func (s *asynqServer) Shutdown() {
	log.Println("[Worker] Shutting down...")
	s.server.Shutdown()
	log.Println("[Worker] Stopped")
}
