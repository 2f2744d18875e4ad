package compliance

import "context"

type Repository interface {
	// Create exists only for seeding at session start.
	Create(ctx context.Context, c *Check) error
	List(ctx context.Context) ([]Check, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Check, error)
}
