package complaint

import "context"

type Repository interface {
	Create(ctx context.Context, c *Complaint) error
	Save(ctx context.Context, c *Complaint) error
	// GetByIDForUpdate locks the row for the duration of the surrounding
	// transaction so concurrent transitions on the same complaint serialize.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Complaint, error)
	// CountForUpdate returns the current number of complaints under a locking
	// read; the code allocator relies on this to stay collision-free across
	// concurrent creates.
	CountForUpdate(ctx context.Context) (int64, error)

	GetViewByID(ctx context.Context, id uint64) (*View, error)
	ListAll(ctx context.Context) ([]View, error)
	ListBySalesRepID(ctx context.Context, salesRepID uint64) ([]View, error)
}
