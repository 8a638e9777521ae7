// Package directory serves the reference-data reads: the user roster for
// admins and the issue-type catalogue for filers.
package directory

import (
	"context"

	"complaintflow-backend/internal/domain/issuetype"
	"complaintflow-backend/internal/domain/user"
)

type Usecase struct {
	users  user.Repository
	issues issuetype.Repository
}

func NewUsecase(users user.Repository, issues issuetype.Repository) *Usecase {
	return &Usecase{users: users, issues: issues}
}

// Users returns all accounts, newest first. Password hashes never serialize
// (json:"-" on the entity).
func (u *Usecase) Users(ctx context.Context) ([]user.User, error) {
	return u.users.List(ctx)
}

func (u *Usecase) IssueTypes(ctx context.Context) ([]issuetype.IssueType, error) {
	return u.issues.List(ctx)
}
