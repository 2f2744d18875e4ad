package uow

import (
	"context"

	"github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	"github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	"github.com/iamaanahmad/LoanLedger/internal/domain/trade"
)

type Repos struct {
	Loans  loan.Repository
	Trades trade.Repository
	Audit  audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
