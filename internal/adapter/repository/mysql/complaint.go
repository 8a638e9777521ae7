package mysql

import (
	"context"

	complaintDomain "complaintflow-backend/internal/domain/complaint"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComplaintRepository struct{ db *gorm.DB }

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository { return &ComplaintRepository{db: db} }

const viewSelect = "complaints.*, users.name AS sales_rep_name, issue_types.name AS issue_type_name"

func (r *ComplaintRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("complaints").
		Select(viewSelect).
		Joins("JOIN users ON complaints.sales_rep_id = users.id").
		Joins("JOIN issue_types ON complaints.issue_type_id = issue_types.id")
}

func (r *ComplaintRepository) Create(ctx context.Context, c *complaintDomain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaintDomain.Complaint) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// locked adds SELECT ... FOR UPDATE where the dialect supports it. SQLite
// (used by the repository tests) rejects the clause and serializes writers
// on its own, so it is skipped there.
func locked(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// GetByIDForUpdate takes a row lock so concurrent transitions on the same
// complaint serialize for the duration of the surrounding transaction.
func (r *ComplaintRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*complaintDomain.Complaint, error) {
	var out complaintDomain.Complaint
	res := locked(r.db.WithContext(ctx)).First(&out, id)
	return &out, res.Error
}

// CountForUpdate reads the complaint count under a locking read. Inside a
// transaction this serializes the read-increment-insert sequence that the
// sequential code allocator depends on.
func (r *ComplaintRepository) CountForUpdate(ctx context.Context) (int64, error) {
	var n int64
	res := locked(r.db.WithContext(ctx)).
		Model(&complaintDomain.Complaint{}).
		Count(&n)
	return n, res.Error
}

func (r *ComplaintRepository) GetViewByID(ctx context.Context, id uint64) (*complaintDomain.View, error) {
	var out complaintDomain.View
	res := r.viewQuery(ctx).Where("complaints.id = ?", id).Take(&out)
	return &out, res.Error
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]complaintDomain.View, error) {
	var out []complaintDomain.View
	res := r.viewQuery(ctx).Order("complaints.created_at DESC, complaints.id DESC").Find(&out)
	return out, res.Error
}

func (r *ComplaintRepository) ListBySalesRepID(ctx context.Context, salesRepID uint64) ([]complaintDomain.View, error) {
	var out []complaintDomain.View
	res := r.viewQuery(ctx).
		Where("complaints.sales_rep_id = ?", salesRepID).
		Order("complaints.created_at DESC, complaints.id DESC").
		Find(&out)
	return out, res.Error
}
