package handler

import (
	"time"

	"agadev/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness without touching any store.
func HealthCheck(c echo.Context) error {
	return response.OK(c, response.Body{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
