package historymock

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/history"
)

var _ history.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("historymock: method not implemented")

type Repo struct {
	AppendFn            func(ctx context.Context, e *history.Entry) error
	ListByComplaintIDFn func(ctx context.Context, complaintID uint64) ([]history.Entry, error)
}

func (m *Repo) Append(ctx context.Context, e *history.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return errUnimplemented
}

func (m *Repo) ListByComplaintID(ctx context.Context, complaintID uint64) ([]history.Entry, error) {
	if m.ListByComplaintIDFn != nil {
		return m.ListByComplaintIDFn(ctx, complaintID)
	}
	return nil, errUnimplemented
}
