package model

import "time"

// NewsModel mirrors the 'news' table.
type NewsModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	TitleFR       string     `gorm:"column:title_fr;type:varchar(255);not null"`
	TitleEN       string     `gorm:"column:title_en;type:varchar(255)"`
	ContentFR     string     `gorm:"column:content_fr;type:text;not null"`
	ContentEN     string     `gorm:"column:content_en;type:text"`
	ExcerptFR     string     `gorm:"column:excerpt_fr;type:text"`
	ExcerptEN     string     `gorm:"column:excerpt_en;type:text"`
	Slug          string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	CoverImageURL string     `gorm:"column:cover_image_url;type:text"`
	Published     bool       `gorm:"not null;index"`
	PublishDate   *time.Time `gorm:"column:publish_date"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsModel) TableName() string {
	return "news"
}
