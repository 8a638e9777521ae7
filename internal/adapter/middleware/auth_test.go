package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func doAuth(t *testing.T, tm *token.Manager, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/complaints", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Authenticate(tm)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tm := token.NewManager("mw-secret", time.Hour)
	rec := doAuth(t, tm, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("code = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tm := token.NewManager("mw-secret", time.Hour)
	for _, h := range []string{"Bearer", "Token abc", "Bearer "} {
		if rec := doAuth(t, tm, h); rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: code = %d, want 401", h, rec.Code)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tm := token.NewManager("mw-secret", time.Hour)
	if rec := doAuth(t, tm, "Bearer not.a.jwt"); rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rec.Code)
	}

	expired := token.NewManager("mw-secret", -time.Minute)
	raw, err := expired.Issue(1, string(user.RoleAdmin), "Root")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if rec := doAuth(t, tm, "Bearer "+raw); rec.Code != http.StatusBadRequest {
		t.Fatalf("expired token: code = %d, want 400", rec.Code)
	}
}

func TestAuthenticate_SetsActor(t *testing.T) {
	tm := token.NewManager("mw-secret", time.Hour)
	raw, err := tm.Issue(12, string(user.RoleQCLab), "Lina")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got struct {
		ok bool
		id uint64
	}
	h := Authenticate(tm)(func(c echo.Context) error {
		actor, ok := ActorFromContext(c)
		got.ok = ok
		got.id = actor.ID
		if actor.Role != user.RoleQCLab || actor.Name != "Lina" {
			t.Errorf("actor mismatch: %+v", actor)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !got.ok || got.id != 12 {
		t.Fatalf("actor not on context: %+v", got)
	}
}

func TestRequireRole(t *testing.T) {
	tm := token.NewManager("mw-secret", time.Hour)
	raw, err := tm.Issue(3, string(user.RoleFGSWarehouse), "Gudang")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	run := func(roles ...user.Role) int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		h := Authenticate(tm)(RequireRole(roles...)(okHandler))
		if err := h(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec.Code
	}

	if code := run(user.RoleFGSWarehouse, user.RoleAdmin); code != http.StatusOK {
		t.Errorf("allowed role: code = %d, want 200", code)
	}
	if code := run(user.RoleAdmin); code != http.StatusForbidden {
		t.Errorf("disallowed role: code = %d, want 403", code)
	}
}
