package mysql

import (
	"context"

	historyDomain "complaintflow-backend/internal/domain/history"

	"gorm.io/gorm"
)

// HistoryRepository only ever inserts and reads; the audit trail has no
// update or delete path anywhere in the codebase.
type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Append(ctx context.Context, e *historyDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByComplaintID(ctx context.Context, complaintID uint64) ([]historyDomain.Entry, error) {
	var out []historyDomain.Entry
	res := r.db.WithContext(ctx).
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
