package course

import "context"

// Repository persists courses. Create reports ErrDuplicateCode when the
// unique index on code rejects the row; lookups report ErrNotFound.
type Repository interface {
	Create(ctx context.Context, c *Course) error
	List(ctx context.Context) ([]*Course, error)
	GetByCode(ctx context.Context, code string) (*Course, error)
	GetByID(ctx context.Context, id uint) (*Course, error)
}
