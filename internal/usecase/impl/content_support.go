package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "agadev/internal/delivery/context"
	"agadev/internal/domain/entity"
	domainerrors "agadev/internal/domain/errors"
	"agadev/internal/domain/service"
	"agadev/internal/errors"
	"agadev/internal/util"
)

// contentTools holds the collaborators shared by the news and project services.
type contentTools struct {
	translator service.Translator
	sanitizer  service.HTMLSanitizer
	publisher  service.EventPublisher
	qr         service.QRCodeService
	logger     *slog.Logger
	now        func() time.Time
}

// translationPair is one French field and the English field it may fill.
type translationPair struct {
	field string
	fr    string
	en    *string
}

// autoTranslate fills every empty English field whose French counterpart is set.
// Failures leave the English field as supplied.
func (t *contentTools) autoTranslate(ctx context.Context, pairs ...translationPair) {
	for _, p := range pairs {
		if strings.TrimSpace(*p.en) != "" || strings.TrimSpace(p.fr) == "" {
			continue
		}

		translated, err := t.translator.Translate(ctx, p.fr, entity.LangFR, entity.LangEN)
		if err != nil {
			if errors.Is(err, service.ErrTranslatorDisabled) {
				scopedLogger(ctx, t.logger).Debug("Auto-translate skipped: no provider", slog.String("field", p.field))

				return
			}
			scopedLogger(ctx, t.logger).Warn("Auto-translate failed, keeping field empty",
				slog.String("field", p.field),
				slog.Any("error", err),
			)

			continue
		}

		*p.en = translated
	}
}

// resolveSlug slugifies the explicit slug, or the French title when none is given.
func resolveSlug(explicit *string, titleFR string) (string, error) {
	source := titleFR
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		source = *explicit
	}

	slug := util.Slugify(source)
	if slug == "" {
		return "", domainerrors.NewValidationError(domainerrors.FieldError{
			Field:   "slug",
			Message: "a slug could not be derived from the French title",
		})
	}

	return slug, nil
}

func requireText(field, value, message string) *domainerrors.FieldError {
	if strings.TrimSpace(value) == "" {
		return &domainerrors.FieldError{Field: field, Message: message}
	}

	return nil
}

func collectFieldErrors(checks ...*domainerrors.FieldError) error {
	var fields []domainerrors.FieldError
	for _, c := range checks {
		if c != nil {
			fields = append(fields, *c)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(fields...)
}

// emit publishes a content event. Publishing never fails the request.
func (t *contentTools) emit(ctx context.Context, eventType entity.ContentEventType, kind entity.ContentKind, id int64, slug string, published bool) {
	event := &entity.ContentEvent{
		RequestID: deliverycontext.RequestIDFromContext(ctx),
		Type:      eventType,
		Kind:      kind,
		ID:        id,
		Slug:      slug,
		Published: published,
		At:        t.now().UTC(),
	}

	if err := t.publisher.PublishContentEvent(ctx, event); err != nil {
		scopedLogger(ctx, t.logger).Warn("Failed to publish content event",
			slog.String("type", string(eventType)),
			slog.String("kind", string(kind)),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
	}
}

func publishEventType(published bool) entity.ContentEventType {
	if published {
		return entity.ContentEventPublished
	}

	return entity.ContentEventUnpublished
}
