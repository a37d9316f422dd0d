// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "agadev/internal/delivery/context"
)

// scopedLogger returns the request-scoped logger if available, otherwise the fallback.
func scopedLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.LoggerFromContext(ctx, fallback)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
