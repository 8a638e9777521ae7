package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// ---- helpers ----

const dateLayout = "2006-01-02"

// storeError keeps store-layer failures out of response bodies: the detail
// goes to the server log, the client sees a generic 500, or 503 when the
// request deadline ran out.
func storeError(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	if errors.Is(err, context.DeadlineExceeded) {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Message: "Service unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}

func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
