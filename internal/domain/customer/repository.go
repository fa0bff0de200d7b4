package customer

import "context"

type Repository interface {
	// List returns every customer in insertion order.
	List(ctx context.Context) ([]*Customer, error)
	Create(ctx context.Context, c *Customer) error
}
