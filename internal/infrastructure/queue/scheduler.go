package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"newsroom-backend/internal/config"
	"newsroom-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(cfg config.QueueConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs đăng ký toàn bộ cron jobs của worker.
func (s *Scheduler) RegisterJobs() error {
	return s.registerSweepOrphanUploadsJob()
}

// Orphan sweep: hàng ngày 3h sáng, dọn uploads không còn bài viết nào
// tham chiếu.
func (s *Scheduler) registerSweepOrphanUploadsJob() error {
	payload, err := json.Marshal(SweepOrphanUploadsPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeSweepOrphanUploads, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(QueueUploads),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register SweepOrphanUploads job", err)
		return err
	}

	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
