package model

import "time"

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement"`
	TitleFR             string     `gorm:"column:title_fr;type:varchar(255);not null"`
	TitleEN             string     `gorm:"column:title_en;type:varchar(255)"`
	DescriptionFR       string     `gorm:"column:description_fr;type:text;not null"`
	DescriptionEN       string     `gorm:"column:description_en;type:text"`
	ContentFR           string     `gorm:"column:content_fr;type:text;not null"`
	ContentEN           string     `gorm:"column:content_en;type:text"`
	Slug                string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	CoverImageURL       string     `gorm:"column:cover_image_url;type:text"`
	PresentationFileURL string     `gorm:"column:presentation_file_url;type:text"`
	Status              string     `gorm:"type:varchar(20);not null;index"`
	StartDate           *time.Time `gorm:"column:start_date"`
	EndDate             *time.Time `gorm:"column:end_date"`
	Budget              *float64   `gorm:"type:numeric(15,2)"`
	Location            string     `gorm:"type:varchar(255)"`
	Partners            string     `gorm:"type:text"`
	Published           bool       `gorm:"not null;index"`
	PublishDate         *time.Time `gorm:"column:publish_date"`
	CreatedAt           time.Time  `gorm:"index"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
