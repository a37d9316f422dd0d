package handler

import (
	"time"

	"agadev/internal/domain/entity"

	"github.com/google/uuid"
)

// userView never carries the password hash.
type userView struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	Role      entity.Role `json:"role"`
	Active    bool        `json:"active"`
	LastLogin *time.Time  `json:"last_login,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

func newUserView(u *entity.AdminUser) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		Active:    u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func newUserViews(users []*entity.AdminUser) []userView {
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

// newsView is the bilingual record used by the admin area.
type newsView struct {
	ID            int64      `json:"id"`
	TitleFR       string     `json:"title_fr"`
	TitleEN       string     `json:"title_en"`
	ContentFR     string     `json:"content_fr"`
	ContentEN     string     `json:"content_en"`
	ExcerptFR     string     `json:"excerpt_fr"`
	ExcerptEN     string     `json:"excerpt_en"`
	Slug          string     `json:"slug"`
	CoverImageURL string     `json:"cover_image_url"`
	Published     bool       `json:"published"`
	PublishDate   *time.Time `json:"publish_date"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func newNewsView(n *entity.News) newsView {
	return newsView{
		ID:            n.ID,
		TitleFR:       n.TitleFR,
		TitleEN:       n.TitleEN,
		ContentFR:     n.ContentFR,
		ContentEN:     n.ContentEN,
		ExcerptFR:     n.ExcerptFR,
		ExcerptEN:     n.ExcerptEN,
		Slug:          n.Slug,
		CoverImageURL: n.CoverImageURL,
		Published:     n.Published,
		PublishDate:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func newNewsViews(items []*entity.News) []newsView {
	views := make([]newsView, 0, len(items))
	for _, n := range items {
		views = append(views, newNewsView(n))
	}

	return views
}

// publicNewsView carries a single language.
type publicNewsView struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	Slug          string     `json:"slug"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishDate   *time.Time `json:"publish_date"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newPublicNewsView(n *entity.News, lang entity.Lang) publicNewsView {
	return publicNewsView{
		ID:            n.ID,
		Title:         lang.Pick(n.TitleFR, n.TitleEN),
		Excerpt:       lang.Pick(n.ExcerptFR, n.ExcerptEN),
		Content:       lang.Pick(n.ContentFR, n.ContentEN),
		Slug:          n.Slug,
		CoverImageURL: n.CoverImageURL,
		PublishDate:   n.PublishedAt,
		CreatedAt:     n.CreatedAt,
	}
}

func newPublicNewsViews(items []*entity.News, lang entity.Lang) []publicNewsView {
	views := make([]publicNewsView, 0, len(items))
	for _, n := range items {
		views = append(views, newPublicNewsView(n, lang))
	}

	return views
}

type projectView struct {
	ID                  int64                `json:"id"`
	TitleFR             string               `json:"title_fr"`
	TitleEN             string               `json:"title_en"`
	DescriptionFR       string               `json:"description_fr"`
	DescriptionEN       string               `json:"description_en"`
	ContentFR           string               `json:"content_fr"`
	ContentEN           string               `json:"content_en"`
	Slug                string               `json:"slug"`
	CoverImageURL       string               `json:"cover_image_url"`
	PresentationFileURL string               `json:"presentation_file_url"`
	Status              entity.ProjectStatus `json:"status"`
	StartDate           *string              `json:"start_date"`
	EndDate             *string              `json:"end_date"`
	Budget              *float64             `json:"budget"`
	Location            string               `json:"location"`
	Partners            string               `json:"partners"`
	Published           bool                 `json:"published"`
	PublishDate         *time.Time           `json:"publish_date"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func newProjectView(p *entity.Project) projectView {
	return projectView{
		ID:                  p.ID,
		TitleFR:             p.TitleFR,
		TitleEN:             p.TitleEN,
		DescriptionFR:       p.DescriptionFR,
		DescriptionEN:       p.DescriptionEN,
		ContentFR:           p.ContentFR,
		ContentEN:           p.ContentEN,
		Slug:                p.Slug,
		CoverImageURL:       p.CoverImageURL,
		PresentationFileURL: p.PresentationFileURL,
		Status:              p.Status,
		StartDate:           formatDate(p.StartDate),
		EndDate:             formatDate(p.EndDate),
		Budget:              p.Budget,
		Location:            p.Location,
		Partners:            p.Partners,
		Published:           p.Published,
		PublishDate:         p.PublishedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func newProjectViews(items []*entity.Project) []projectView {
	views := make([]projectView, 0, len(items))
	for _, p := range items {
		views = append(views, newProjectView(p))
	}

	return views
}

type publicProjectView struct {
	ID                  int64                `json:"id"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	Content             string               `json:"content"`
	Slug                string               `json:"slug"`
	CoverImageURL       string               `json:"cover_image_url"`
	PresentationFileURL string               `json:"presentation_file_url"`
	Status              entity.ProjectStatus `json:"status"`
	StartDate           *string              `json:"start_date"`
	EndDate             *string              `json:"end_date"`
	Location            string               `json:"location"`
	Partners            string               `json:"partners"`
	CreatedAt           time.Time            `json:"created_at"`
}

func newPublicProjectView(p *entity.Project, lang entity.Lang) publicProjectView {
	return publicProjectView{
		ID:                  p.ID,
		Title:               lang.Pick(p.TitleFR, p.TitleEN),
		Description:         lang.Pick(p.DescriptionFR, p.DescriptionEN),
		Content:             lang.Pick(p.ContentFR, p.ContentEN),
		Slug:                p.Slug,
		CoverImageURL:       p.CoverImageURL,
		PresentationFileURL: p.PresentationFileURL,
		Status:              p.Status,
		StartDate:           formatDate(p.StartDate),
		EndDate:             formatDate(p.EndDate),
		Location:            p.Location,
		Partners:            p.Partners,
		CreatedAt:           p.CreatedAt,
	}
}

func newPublicProjectViews(items []*entity.Project, lang entity.Lang) []publicProjectView {
	views := make([]publicProjectView, 0, len(items))
	for _, p := range items {
		views = append(views, newPublicProjectView(p, lang))
	}

	return views
}

type mediaView struct {
	ID               uuid.UUID `json:"id"`
	Filename         string    `json:"filename"`
	OriginalFilename string    `json:"original_filename"`
	URL              string    `json:"url"`
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	UploadedBy       uuid.UUID `json:"uploaded_by"`
	UploaderUsername string    `json:"uploader_username,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func newMediaView(m *entity.Media) mediaView {
	return mediaView{
		ID:               m.ID,
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		URL:              m.URL,
		MimeType:         m.MimeType,
		Size:             m.Size,
		UploadedBy:       m.UploadedBy,
		UploaderUsername: m.UploaderUsername,
		CreatedAt:        m.CreatedAt,
	}
}

func newMediaViews(items []*entity.Media) []mediaView {
	views := make([]mediaView, 0, len(items))
	for _, m := range items {
		views = append(views, newMediaView(m))
	}

	return views
}
