package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var deadline time.Time
	var ok bool
	h := RequestTimeout(5 * time.Second)(func(c echo.Context) error {
		deadline, ok = c.Request().Context().Deadline()
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !ok {
		t.Fatal("request context has no deadline")
	}
	if until := time.Until(deadline); until <= 0 || until > 5*time.Second {
		t.Fatalf("deadline %v out of range", until)
	}
}

func TestRequestTimeout_ExpiresContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got error
	h := RequestTimeout(time.Millisecond)(func(c echo.Context) error {
		<-c.Request().Context().Done()
		got = c.Request().Context().Err()
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got != context.DeadlineExceeded {
		t.Fatalf("ctx err = %v, want DeadlineExceeded", got)
	}
}
