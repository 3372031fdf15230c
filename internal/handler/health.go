package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers GET / with a plain text liveness string so load balancers
// and uptime monitors can verify the service without touching the database.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "Spacer booking API is running")
}
