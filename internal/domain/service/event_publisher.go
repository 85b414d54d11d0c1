package service

import (
	"context"
	"time"
)

// Dataset event actions published after admin mutations.
const (
	DatasetActionAdd    = "add_wisata"
	DatasetActionUpdate = "update_wisata"
	DatasetActionDelete = "delete_wisata"
	DatasetActionUpload = "upload_file"
)

// DatasetEvent signals the offline analytics pipeline that the source data
// changed and aggregates should be recomputed.
type DatasetEvent struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	NamaWisata string    `json:"nama_wisata,omitempty"`
	Rows       int       `json:"rows,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes dataset-updated events. Implementations may back
// onto Google Pub/Sub in production or a local HTTP endpoint in development.
type EventPublisher interface {
	PublishDatasetEvent(ctx context.Context, event *DatasetEvent) error
	Close() error
}
