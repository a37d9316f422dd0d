package entity

import "time"

// News is a bilingual article. Public reads only ever see published rows.
type News struct {
	ID            int64
	TitleFR       string
	TitleEN       string
	ContentFR     string
	ContentEN     string
	ExcerptFR     string
	ExcerptEN     string
	Slug          string
	CoverImageURL string
	Published     bool
	PublishedAt   *time.Time // Set when published, cleared when unpublished.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SetPublished flips the publish flag and keeps PublishedAt consistent with it.
func (n *News) SetPublished(published bool, now time.Time) {
	n.Published = published
	n.PublishedAt = publishTimestamp(published, n.PublishedAt, now)
}

func publishTimestamp(published bool, current *time.Time, now time.Time) *time.Time {
	if !published {
		return nil
	}
	if current != nil {
		return current
	}

	return &now
}
