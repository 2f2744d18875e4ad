package trade

import "context"

// Repository has no update or delete methods: trades are immutable once
// created.
type Repository interface {
	Create(ctx context.Context, t *Trade) error
	GetByTradeID(ctx context.Context, tradeID string) (*Trade, error)
	// List returns trades newest-first.
	List(ctx context.Context) ([]Trade, error)
	Count(ctx context.Context) (int64, error)
}
