package service

import (
	"context"

	"agadev/internal/domain/entity"
)

// EventPublisher defines the interface for publishing content events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a publish/unpublish/delete event
	PublishContentEvent(ctx context.Context, event *entity.ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
