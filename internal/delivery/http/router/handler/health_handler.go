package handler

import (
	"net/http"

	"mercado/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck provides a simple health check endpoint.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
