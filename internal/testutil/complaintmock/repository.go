package complaintmock

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/complaint"
)

var _ complaint.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("complaintmock: method not implemented")

// Repo is a function-backed mock satisfying complaint.Repository. Fill in the
// function fields a test needs; unfilled ones return errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, c *complaint.Complaint) error
	SaveFn             func(ctx context.Context, c *complaint.Complaint) error
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*complaint.Complaint, error)
	CountForUpdateFn   func(ctx context.Context) (int64, error)
	GetViewByIDFn      func(ctx context.Context, id uint64) (*complaint.View, error)
	ListAllFn          func(ctx context.Context) ([]complaint.View, error)
	ListBySalesRepIDFn func(ctx context.Context, salesRepID uint64) ([]complaint.View, error)
}

func (m *Repo) Create(ctx context.Context, c *complaint.Complaint) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*complaint.Complaint, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountForUpdate(ctx context.Context) (int64, error) {
	if m.CountForUpdateFn != nil {
		return m.CountForUpdateFn(ctx)
	}
	return 0, errUnimplemented
}

func (m *Repo) GetViewByID(ctx context.Context, id uint64) (*complaint.View, error) {
	if m.GetViewByIDFn != nil {
		return m.GetViewByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListAll(ctx context.Context) ([]complaint.View, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListBySalesRepID(ctx context.Context, salesRepID uint64) ([]complaint.View, error) {
	if m.ListBySalesRepIDFn != nil {
		return m.ListBySalesRepIDFn(ctx, salesRepID)
	}
	return nil, errUnimplemented
}
