package uploader

import (
	"net/http"
	"time"
)

type Config struct {
	Network    string
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Job statuses reported by the file service.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// UploadJob tracks an asynchronous upload on the file service.
type UploadJob struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	// URI is the permanent address of the pinned content, set once the job
	// completes.
	URI   string `json:"uri,omitempty"`
	CID   string `json:"cid,omitempty"`
	Error string `json:"error,omitempty"`
}

// CostEstimate prices an upload of the given size.
type CostEstimate struct {
	Bytes uint64 `json:"bytes"`
	// Lamports is the estimated storage cost in lamports.
	Lamports uint64 `json:"lamports"`
}

type WaitOptions struct {
	MaxAttempts int
	Interval    time.Duration
}
