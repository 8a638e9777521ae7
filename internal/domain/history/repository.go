package history

import "context"

// Repository deliberately exposes no update or delete: the ledger is
// append-only and its ascending order is the authoritative audit trail.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByComplaintID(ctx context.Context, complaintID uint64) ([]Entry, error)
}
