package workflow

import (
	"time"

	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/user"
)

// Actor is the authenticated identity acting on a complaint, as decoded from
// the session credential by the access-control middleware.
type Actor struct {
	ID   uint64
	Role user.Role
	Name string
}

type CreateInput struct {
	OutletName     string
	OutletPhone    string
	OutletEmail    string
	SKU            string
	BatchNumber    string
	Quantity       int
	ProductionDate time.Time
	ExpiryDate     time.Time
	IssueTypeID    uint64
	Description    string
	Photos         []string
}

// TransitionInput carries the target status plus the per-stage attachment
// fields. Only the field matching the target status is ever written; the
// rest are ignored (explicit allow-list, no arbitrary field spread).
type TransitionInput struct {
	Status  complaint.Status
	Remarks string

	QCReportURL      string // only with StatusQCReportUploaded
	ReplacementNotes string // only with StatusReplacementApproved
	ERPReference     string // only with StatusERPUpdated
}
