package issuetypemock

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/issuetype"
)

var _ issuetype.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("issuetypemock: method not implemented")

type Repo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*issuetype.IssueType, error)
	ListFn    func(ctx context.Context) ([]issuetype.IssueType, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*issuetype.IssueType, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]issuetype.IssueType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
