package issuetype

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*IssueType, error)
	// List returns all issue types ordered by name.
	List(ctx context.Context) ([]IssueType, error)
}
