package http

import (
	"errors"
	"net/http"

	"complaintflow-backend/internal/adapter/middleware"
	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/issuetype"
	"complaintflow-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type ComplaintHandler struct{ uc *workflow.Usecase }

func NewComplaintHandler(uc *workflow.Usecase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

type createComplaintReq struct {
	OutletName     string   `json:"outlet_name" validate:"required"`
	OutletPhone    string   `json:"outlet_phone"`
	OutletEmail    string   `json:"outlet_email" validate:"omitempty,email"`
	SKU            string   `json:"sku" validate:"required"`
	BatchNumber    string   `json:"batch_number"`
	Quantity       int      `json:"quantity" validate:"required,gt=0"`
	ProductionDate string   `json:"production_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate     string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	IssueTypeID    uint64   `json:"issue_type_id" validate:"required"`
	Description    string   `json:"description"`
	Photos         []string `json:"photos"`
}

type updateStatusReq struct {
	Status           string `json:"status" validate:"required,status"`
	Remarks          string `json:"remarks"`
	QCReportURL      string `json:"qc_report_url"`
	ReplacementNotes string `json:"replacement_notes"`
	ERPReference     string `json:"erp_reference"`
}

func (h *ComplaintHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Access Denied: No token provided"})
	}

	var req createComplaintReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	in := workflow.CreateInput{
		OutletName:  req.OutletName,
		OutletPhone: req.OutletPhone,
		OutletEmail: req.OutletEmail,
		SKU:         req.SKU,
		BatchNumber: req.BatchNumber,
		Quantity:    req.Quantity,
		IssueTypeID: req.IssueTypeID,
		Description: req.Description,
		Photos:      req.Photos,
	}
	if req.ProductionDate != "" {
		t, err := parseDate(req.ProductionDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "production_date must be YYYY-MM-DD"})
		}
		in.ProductionDate = t
	}
	if req.ExpiryDate != "" {
		t, err := parseDate(req.ExpiryDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "expiry_date must be YYYY-MM-DD"})
		}
		in.ExpiryDate = t
	}

	created, err := h.uc.Create(c.Request().Context(), actor, in)
	switch {
	case errors.Is(err, workflow.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, issuetype.ErrNotFound):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Issue type not found"})
	case err != nil:
		return storeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message":   "Complaint created successfully",
		"complaint": created,
	})
}

func (h *ComplaintHandler) List(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Access Denied: No token provided"})
	}

	views, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return storeError(c, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *ComplaintHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid complaint id"})
	}

	view, entries, err := h.uc.Get(c.Request().Context(), id)
	switch {
	case errors.Is(err, complaint.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Complaint not found"})
	case err != nil:
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"complaint": view,
		"history":   entries,
	})
}

// UpdateStatus is the single mutation endpoint of the workflow: every stage
// advance goes through it, and the usecase decides whether the actor's role
// and the current lifecycle edge allow the move.
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Access Denied: No token provided"})
	}

	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid complaint id"})
	}

	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	updated, err := h.uc.Transition(c.Request().Context(), actor, id, workflow.TransitionInput{
		Status:           complaint.Status(req.Status),
		Remarks:          req.Remarks,
		QCReportURL:      req.QCReportURL,
		ReplacementNotes: req.ReplacementNotes,
		ERPReference:     req.ERPReference,
	})
	switch {
	case errors.Is(err, complaint.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Message: "You are not allowed to set this status"})
	case errors.Is(err, complaint.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: "Complaint not found"})
	case errors.Is(err, complaint.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case err != nil:
		return storeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Status updated successfully",
		"complaint": updated,
	})
}
