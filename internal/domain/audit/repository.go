package audit

import "context"

// Repository is append-only: entries are never updated or deleted.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	// List returns entries newest-first.
	List(ctx context.Context) ([]Entry, error)
	Count(ctx context.Context) (int64, error)
}
