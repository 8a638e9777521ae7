package uowmock

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn          func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinComplaintTxFn func(ctx context.Context, complaintID uint64, fn func(r uow.Repos, c *complaint.Complaint) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough returns a UoW that simply invokes the callback with the given
// repos, without any transaction semantics. Covers most usecase tests.
func Passthrough(r uow.Repos, load func(id uint64) (*complaint.Complaint, error)) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinComplaintTxFn: func(ctx context.Context, id uint64, fn func(uow.Repos, *complaint.Complaint) error) error {
			c, err := load(id)
			if err != nil {
				return err
			}
			return fn(r, c)
		},
	}
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinComplaintTx(ctx context.Context, complaintID uint64, fn func(r uow.Repos, c *complaint.Complaint) error) error {
	if m.WithinComplaintTxFn != nil {
		return m.WithinComplaintTxFn(ctx, complaintID, fn)
	}
	return errUnimplemented
}
