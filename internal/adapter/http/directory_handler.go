package http

import (
	"net/http"

	"complaintflow-backend/internal/usecase/directory"

	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct{ uc *directory.Usecase }

func NewDirectoryHandler(uc *directory.Usecase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

func (h *DirectoryHandler) Users(c echo.Context) error {
	users, err := h.uc.Users(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *DirectoryHandler) IssueTypes(c echo.Context) error {
	types, err := h.uc.IssueTypes(c.Request().Context())
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, types)
}
