package entity

import "time"

// ContentEventType names what happened to a content record.
type ContentEventType string

const (
	ContentEventPublished   ContentEventType = "published"
	ContentEventUnpublished ContentEventType = "unpublished"
	ContentEventDeleted     ContentEventType = "deleted"
)

// ContentEvent is emitted after publish state changes and deletions.
type ContentEvent struct {
	RequestID string           `json:"request_id,omitempty"`
	Type      ContentEventType `json:"type"`
	Kind      ContentKind      `json:"kind"`
	ID        int64            `json:"id"`
	Slug      string           `json:"slug"`
	Published bool             `json:"published"`
	At        time.Time        `json:"at"`
}
