package impl

import (
	"context"
	"log/slog"
	"time"

	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/repository"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	"agadev/internal/usecase"
)

// newsService implements the NewsUsecase interface.
type newsService struct {
	contentTools

	repo repository.NewsRepository
}

// NewNewsService is the constructor for newsService.
func NewNewsService(
	repo repository.NewsRepository,
	translator service.Translator,
	sanitizer service.HTMLSanitizer,
	publisher service.EventPublisher,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.NewsUsecase {
	return &newsService{
		contentTools: contentTools{
			translator: translator,
			sanitizer:  sanitizer,
			publisher:  publisher,
			qr:         qr,
			logger:     logger,
			now:        time.Now,
		},
		repo: repo,
	}
}

func (srv *newsService) ListPublished(ctx context.Context, page repository.Page) ([]*entity.News, usecase.Pagination, error) {
	return srv.list(ctx, repository.NewsFilter{Page: page, PublishedOnly: true})
}

func (srv *newsService) ListAll(ctx context.Context, page repository.Page) ([]*entity.News, usecase.Pagination, error) {
	return srv.list(ctx, repository.NewsFilter{Page: page})
}

func (srv *newsService) list(ctx context.Context, filter repository.NewsFilter) ([]*entity.News, usecase.Pagination, error) {
	items, total, err := srv.repo.List(ctx, filter)
	if err != nil {
		return nil, usecase.Pagination{}, errors.Wrap(err, "failed to list news")
	}

	return items, usecase.NewPagination(filter.Page, total), nil
}

func (srv *newsService) GetPublished(ctx context.Context, slug string) (*entity.News, error) {
	news, err := srv.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, mapNewsError(err)
	}

	return news, nil
}

func (srv *newsService) Get(ctx context.Context, id int64) (*entity.News, error) {
	news, err := srv.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNewsError(err)
	}

	return news, nil
}

func (srv *newsService) Create(ctx context.Context, input usecase.NewsInput) (*entity.News, error) {
	news := &entity.News{}
	applyNewsInput(news, input)

	if err := srv.prepare(ctx, news, input, true); err != nil {
		return nil, err
	}
	if deref(input.Published) {
		news.SetPublished(true, srv.now())
	}

	if err := srv.repo.Create(ctx, news); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("News created", slog.Int64("id", news.ID), slog.String("slug", news.Slug))

	return news, nil
}

// Update merges the supplied fields into the stored article.
func (srv *newsService) Update(ctx context.Context, id int64, input usecase.NewsInput) (*entity.News, error) {
	news, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyNewsInput(news, input)
	regenerateSlug := input.Slug != nil || input.TitleFR != nil
	if err := srv.prepare(ctx, news, input, regenerateSlug); err != nil {
		return nil, err
	}
	if input.Published != nil {
		news.SetPublished(*input.Published, srv.now())
	}

	if err := srv.repo.Update(ctx, news); err != nil {
		return nil, mapNewsError(err)
	}

	srv.log(ctx).Info("News updated", slog.Int64("id", news.ID))

	return news, nil
}

// prepare validates, translates, sanitises and slugs the article before it is written.
func (srv *newsService) prepare(ctx context.Context, news *entity.News, input usecase.NewsInput, resolve bool) error {
	if err := collectFieldErrors(
		requireText("title_fr", news.TitleFR, "French title is required"),
		requireText("content_fr", news.ContentFR, "French content is required"),
	); err != nil {
		return err
	}

	if resolve {
		slug, err := resolveSlug(input.Slug, news.TitleFR)
		if err != nil {
			return err
		}
		news.Slug = slug
	}

	if input.AutoTranslate {
		srv.autoTranslate(ctx,
			translationPair{field: "title_en", fr: news.TitleFR, en: &news.TitleEN},
			translationPair{field: "content_en", fr: news.ContentFR, en: &news.ContentEN},
			translationPair{field: "excerpt_en", fr: news.ExcerptFR, en: &news.ExcerptEN},
		)
	}

	news.ContentFR = srv.sanitizer.Sanitize(news.ContentFR)
	news.ContentEN = srv.sanitizer.Sanitize(news.ContentEN)

	return nil
}

// SetPublished keeps the first publish date when an article is re-published.
func (srv *newsService) SetPublished(ctx context.Context, id int64, published bool) (*entity.News, error) {
	news, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	news.SetPublished(published, srv.now())
	updated, err := srv.repo.SetPublished(ctx, id, published, news.PublishedAt)
	if err != nil {
		return nil, mapNewsError(err)
	}

	srv.emit(ctx, publishEventType(published), entity.ContentKindNews, updated.ID, updated.Slug, updated.Published)

	return updated, nil
}

func (srv *newsService) Delete(ctx context.Context, id int64) error {
	news, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.repo.Delete(ctx, id); err != nil {
		return mapNewsError(err)
	}

	srv.log(ctx).Info("News deleted", slog.Int64("id", id), slog.String("slug", news.Slug))
	srv.emit(ctx, entity.ContentEventDeleted, entity.ContentKindNews, id, news.Slug, false)

	return nil
}

func (srv *newsService) QRCode(ctx context.Context, slug string) ([]byte, error) {
	news, err := srv.GetPublished(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qr.GenerateContentQR(entity.ContentKindNews, news.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate news QR code")
	}

	return png, nil
}

func (srv *newsService) log(ctx context.Context) *slog.Logger {
	return scopedLogger(ctx, srv.logger)
}

func applyNewsInput(news *entity.News, input usecase.NewsInput) {
	setIfPresent(&news.TitleFR, input.TitleFR)
	setIfPresent(&news.TitleEN, input.TitleEN)
	setIfPresent(&news.ContentFR, input.ContentFR)
	setIfPresent(&news.ContentEN, input.ContentEN)
	setIfPresent(&news.ExcerptFR, input.ExcerptFR)
	setIfPresent(&news.ExcerptEN, input.ExcerptEN)
	setIfPresent(&news.CoverImageURL, input.CoverImageURL)
}

func mapNewsError(err error) error {
	if errors.Is(err, repository.ErrNewsNotFound) {
		return domainerrors.ErrNewsNotFound
	}

	return errors.WithStack(err)
}

func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
