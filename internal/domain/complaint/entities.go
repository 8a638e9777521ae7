package complaint

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("complaint not found")
	ErrForbidden         = errors.New("role cannot set this status")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
)

// Status is the closed set of lifecycle stages a complaint moves through.
type Status string

const (
	StatusPendingValidation   Status = "Pending Validation"
	StatusValidated           Status = "Validated"
	StatusForwardedToFGS      Status = "Forwarded to FGS"
	StatusForwardedToQC       Status = "Forwarded to QC"
	StatusReplacementApproved Status = "Replacement Approved"
	StatusQCReportUploaded    Status = "QC Report Uploaded"
	StatusERPUpdated          Status = "ERP Updated"
	StatusClosed              Status = "Closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPendingValidation, StatusValidated, StatusForwardedToFGS,
		StatusForwardedToQC, StatusReplacementApproved, StatusQCReportUploaded,
		StatusERPUpdated, StatusClosed:
		return true
	}
	return false
}

// Complaint is created once by a filer and then only its status (plus the
// per-stage attachment fields) changes, always through the workflow usecase.
type Complaint struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"id"`
	ComplaintCode  string    `gorm:"size:16;not null;uniqueIndex:ux_complaints_code" json:"complaint_code"`
	OutletName     string    `gorm:"size:255;not null" json:"outlet_name"`
	OutletPhone    string    `gorm:"size:32" json:"outlet_phone"`
	OutletEmail    string    `gorm:"size:255" json:"outlet_email"`
	SalesRepID     uint64    `gorm:"not null;index:idx_complaints_sales_rep" json:"sales_rep_id"`
	SKU            string    `gorm:"size:64;column:sku;not null" json:"sku"`
	BatchNumber    string    `gorm:"size:64" json:"batch_number"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	ProductionDate time.Time `gorm:"type:date" json:"production_date"`
	ExpiryDate     time.Time `gorm:"type:date" json:"expiry_date"`
	IssueTypeID    uint64    `gorm:"not null;index" json:"issue_type_id"`
	Description    string    `gorm:"type:text" json:"description"`
	Photos         []string  `gorm:"serializer:json;type:text" json:"photos"`

	// Stage attachments, each writable only by its own transition.
	QCReportURL      string `gorm:"type:text;column:qc_report_url" json:"qc_report_url,omitempty"`
	ReplacementNotes string `gorm:"type:text" json:"replacement_notes,omitempty"`
	ERPReference     string `gorm:"size:64;column:erp_reference" json:"erp_reference,omitempty"`

	Status    Status    `gorm:"size:32;not null;default:'Pending Validation'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Complaint) TableName() string { return "complaints" }

// View is the read model used by list/detail endpoints: a complaint row plus
// the joined display names the clients render.
type View struct {
	Complaint     `gorm:"embedded"`
	SalesRepName  string `json:"sales_rep_name"`
	IssueTypeName string `json:"issue_type_name"`
}
