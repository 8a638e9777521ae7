package usermock

import (
	"context"
	"errors"

	"complaintflow-backend/internal/domain/user"
)

var _ user.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

type Repo struct {
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	ListFn       func(ctx context.Context) ([]user.User, error)
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
