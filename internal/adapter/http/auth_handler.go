package http

import (
	"errors"
	"net/http"

	"complaintflow-backend/internal/domain/user"
	"complaintflow-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges email+password for a signed session token. Unknown users
// and wrong passwords stay distinguishable (404 vs 401), matching the
// behavior clients already depend on.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Email and password are required"})
	}

	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, user.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Invalid credentials"})
	case err != nil:
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   out.Token,
		"user":    out.User,
	})
}
