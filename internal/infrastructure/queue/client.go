package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"newsroom-backend/internal/config"
)

// Client enqueue background jobs từ API process sang worker process.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.QueueConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
	}
}

// EnqueueProcessImage đẩy job tạo image variants sau khi upload.
func (c *Client) EnqueueProcessImage(ctx context.Context, fileName string) error {
	payload, err := json.Marshal(ProcessUploadImagePayload{FileName: fileName})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TypeProcessUploadImage, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueUploads),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeProcessUploadImage, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
