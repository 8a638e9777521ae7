package mysql

import (
	"context"

	issuetypeDomain "complaintflow-backend/internal/domain/issuetype"

	"gorm.io/gorm"
)

type IssueTypeRepository struct{ db *gorm.DB }

func NewIssueTypeRepository(db *gorm.DB) *IssueTypeRepository {
	return &IssueTypeRepository{db: db}
}

func (r *IssueTypeRepository) GetByID(ctx context.Context, id uint64) (*issuetypeDomain.IssueType, error) {
	var out issuetypeDomain.IssueType
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *IssueTypeRepository) List(ctx context.Context) ([]issuetypeDomain.IssueType, error) {
	var out []issuetypeDomain.IssueType
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
