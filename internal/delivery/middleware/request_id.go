package middleware

import (
	"log/slog"

	deliverycontext "agadev/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request a correlation id and a logger bound to it.
// The id is returned in X-Request-Id and travels with content events published by the request.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process reuses a well-formed inbound X-Request-Id (set by the front proxy or the admin SPA)
// and mints a new one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		inbound := c.Request().Header.Get(echo.HeaderXRequestID)
		requestID := inbound
		if !deliverycontext.AcceptRequestID(inbound) {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(echo.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))
		if inbound != "" && inbound != requestID {
			reqLogger.Debug("Replaced malformed inbound request id", slog.Int("inbound_length", len(inbound)))
		}

		req := c.Request()
		c.SetRequest(req.WithContext(deliverycontext.WithLogger(req.Context(), reqLogger)))

		return next(c)
	}
}
