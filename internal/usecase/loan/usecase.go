package loan

import (
	"context"
	"errors"

	domain "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"

	"gorm.io/gorm"
)

type Usecase struct {
	repo   domain.Repository
	trades domainTrade.Repository
}

func NewUsecase(r domain.Repository, t domainTrade.Repository) *Usecase {
	return &Usecase{repo: r, trades: t}
}

// List returns a read-only snapshot of the catalogue, optionally filtered.
func (u *Usecase) List(ctx context.Context, f domain.Filter) ([]domain.Loan, error) {
	return u.repo.List(ctx, f)
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	l, err := u.repo.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

type MarketStats struct {
	TotalVolume       float64 `json:"total_volume"`
	TradesCount       int64   `json:"trades_count"`
	AvgYield          float64 `json:"avg_yield"`
	GreenLoansPercent float64 `json:"green_loans_percent"`
}

// Stats derives the dashboard figures from the current ledger snapshot.
func (u *Usecase) Stats(ctx context.Context) (*MarketStats, error) {
	loans, err := u.repo.List(ctx, domain.Filter{})
	if err != nil {
		return nil, err
	}
	trades, err := u.trades.List(ctx)
	if err != nil {
		return nil, err
	}

	s := &MarketStats{TradesCount: int64(len(trades))}
	for _, t := range trades {
		s.TotalVolume += t.Amount
	}
	if len(loans) > 0 {
		var rateSum float64
		var green int
		for _, l := range loans {
			rateSum += l.InterestRate
			if l.IsGreen {
				green++
			}
		}
		s.AvgYield = rateSum / float64(len(loans))
		s.GreenLoansPercent = float64(green) / float64(len(loans)) * 100
	}
	return s, nil
}
