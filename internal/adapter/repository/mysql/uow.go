package mysql

import (
	"context"

	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Complaints: &ComplaintRepository{db: tx},
		History:    &HistoryRepository{db: tx},
		Users:      &UserRepository{db: tx},
		IssueTypes: &IssueTypeRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinComplaintTx(ctx context.Context, complaintID uint64, fn func(r uow.Repos, c *complaint.Complaint) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the complaint row up-front to prevent races
		c, err := r.Complaints.GetByIDForUpdate(ctx, complaintID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
