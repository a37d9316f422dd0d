package entity

import "time"

// ProjectStatus is the delivery state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPlanned   ProjectStatus = "planned"
)

// IsValid checks if the status is one of the known values.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusPlanned:
		return true
	default:
		return false
	}
}

// Project is a bilingual project page.
type Project struct {
	ID                  int64
	TitleFR             string
	TitleEN             string
	DescriptionFR       string
	DescriptionEN       string
	ContentFR           string
	ContentEN           string
	Slug                string
	CoverImageURL       string
	PresentationFileURL string
	Status              ProjectStatus
	StartDate           *time.Time
	EndDate             *time.Time
	Budget              *float64
	Location            string
	Partners            string
	Published           bool
	PublishedAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SetPublished flips the publish flag and keeps PublishedAt consistent with it.
func (p *Project) SetPublished(published bool, now time.Time) {
	p.Published = published
	p.PublishedAt = publishTimestamp(published, p.PublishedAt, now)
}
