package history

import (
	"time"

	"complaintflow-backend/internal/domain/complaint"
)

// Entry is one row of a complaint's append-only audit trail. StatusFrom is
// nil only for the genesis entry written together with the complaint itself.
// Rows are never updated or deleted.
type Entry struct {
	ID          uint64            `gorm:"primaryKey;column:id" json:"id"`
	ComplaintID uint64            `gorm:"not null;index:idx_history_complaint" json:"complaint_id"`
	ChangedByID uint64            `gorm:"not null" json:"changed_by_id"`
	StatusFrom  *complaint.Status `gorm:"size:32" json:"status_from"`
	StatusTo    complaint.Status  `gorm:"size:32;not null" json:"status_to"`
	Remarks     string            `gorm:"type:text" json:"remarks"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "complaint_history" }
