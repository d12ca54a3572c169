package queue

// Task types cho asynq worker.
const (
	TypeProcessUploadImage = "upload:process_image"
	TypeSweepOrphanUploads = "upload:sweep_orphans"
)

// QueueUploads là queue riêng cho các job liên quan tới file upload.
const QueueUploads = "uploads"

type ProcessUploadImagePayload struct {
	FileName string `json:"file_name"`
}

type SweepOrphanUploadsPayload struct{}
