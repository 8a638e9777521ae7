package uow

import (
	"context"

	"complaintflow-backend/internal/domain/complaint"
	"complaintflow-backend/internal/domain/history"
	"complaintflow-backend/internal/domain/issuetype"
	"complaintflow-backend/internal/domain/user"
)

type Repos struct {
	Complaints complaint.Repository
	History    history.Repository
	Users      user.Repository
	IssueTypes issuetype.Repository
}

// UnitOfWork runs a set of repository calls inside one store transaction.
// The workflow usecase depends on this to keep a status write and its history
// append atomic: both land or neither does.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the complaint row first, then pass it in
	WithinComplaintTx(ctx context.Context, complaintID uint64, fn func(r Repos, c *complaint.Complaint) error) error
}
