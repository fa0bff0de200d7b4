package deal

import "context"

type Repository interface {
	// List returns every deal in insertion order.
	List(ctx context.Context) ([]*Deal, error)
	Create(ctx context.Context, d *Deal) error
}
