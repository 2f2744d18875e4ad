package trademock

import (
	"context"

	domain "github.com/iamaanahmad/LoanLedger/internal/domain/trade"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, t *domain.Trade) error
	GetByTradeIDFn func(ctx context.Context, tradeID string) (*domain.Trade, error)
	ListFn         func(ctx context.Context) ([]domain.Trade, error)
	CountFn        func(ctx context.Context) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, t *domain.Trade) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTradeID(ctx context.Context, tradeID string) (*domain.Trade, error) {
	if m.GetByTradeIDFn != nil {
		return m.GetByTradeIDFn(ctx, tradeID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Trade, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
