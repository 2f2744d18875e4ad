package trading

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domainAudit "github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	domainLoan "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"
	"github.com/iamaanahmad/LoanLedger/internal/domain/uow"
	"github.com/iamaanahmad/LoanLedger/pkg/id"

	"gorm.io/gorm"
)

// CompleteListener receives every successfully committed trade together with
// its audit entry. Listeners run on the workflow goroutine, after the commit.
type CompleteListener func(t *domainTrade.Trade, e *domainAudit.Entry)

type Usecase struct {
	loanRepo    domainLoan.Repository
	uow         uow.UnitOfWork
	settleDelay time.Duration

	mu        sync.Mutex
	workflows map[string]*Workflow
	listeners []CompleteListener
}

// NewUsecase: settleDelay is the simulated settlement latency between the
// confirming and terminal states; zero means commit immediately.
func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork, settleDelay time.Duration) *Usecase {
	return &Usecase{
		loanRepo:    loans,
		uow:         tx,
		settleDelay: settleDelay,
		workflows:   make(map[string]*Workflow),
	}
}

// OnTradeComplete registers a completion listener.
func (u *Usecase) OnTradeComplete(fn CompleteListener) {
	u.mu.Lock()
	u.listeners = append(u.listeners, fn)
	u.mu.Unlock()
}

// GetWorkflow returns a previously started workflow by id.
func (u *Usecase) GetWorkflow(workflowID string) (*Workflow, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	w, ok := u.workflows[workflowID]
	return w, ok
}

// Execute validates the attempt and, if it passes, starts the settlement
// pipeline. A *ValidationError or domainLoan.ErrNotFound means no workflow
// was started and the ledger is untouched. Cancelling ctx while the
// workflow is confirming abandons it before the commit fires.
func (u *Usecase) Execute(ctx context.Context, in ExecuteInput) (*Workflow, error) {
	l, err := u.loanRepo.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}

	if verr := validate(in, l); verr != nil {
		return nil, verr
	}

	w := newWorkflow(id.NewID32(), l.LoanID)
	u.mu.Lock()
	u.workflows[w.ID] = w
	u.mu.Unlock()

	w.setConfirming()
	go u.settle(ctx, w, l, in)
	return w, nil
}

func validate(in ExecuteInput, l *domainLoan.Loan) *ValidationError {
	var fields []FieldError
	if !validBuyer(in.Buyer) {
		fields = append(fields, FieldError{Field: "buyer", Message: "must be one of the approved institutions"})
	}
	if in.Amount <= 0 {
		fields = append(fields, FieldError{Field: "amount", Message: "must be greater than 0"})
	} else if in.Amount > l.Amount {
		fields = append(fields, FieldError{Field: "amount", Message: fmt.Sprintf("must not exceed the loan principal of %.0f", l.Amount)})
	}
	if in.Price < MinPrice || in.Price > MaxPrice {
		fields = append(fields, FieldError{Field: "price", Message: fmt.Sprintf("must be between %.0f and %.0f percent of par", MinPrice, MaxPrice)})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (u *Usecase) settle(ctx context.Context, w *Workflow, l *domainLoan.Loan, in ExecuteInput) {
	if u.settleDelay > 0 {
		timer := time.NewTimer(u.settleDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			w.finish(StateCancelled, nil, nil, ctx.Err())
			return
		case <-timer.C:
		}
	}

	now := time.Now().UTC()
	t := &domainTrade.Trade{
		TradeID:      id.NewTimeID("TR"),
		LoanID:       l.LoanID,
		LoanBorrower: l.Borrower,
		Seller:       l.OriginatingBank,
		Buyer:        in.Buyer,
		Amount:       in.Amount,
		Price:        in.Price,
		Timestamp:    now,
		Status:       domainTrade.StatusCompleted,
	}
	e := &domainAudit.Entry{
		EntryID:   id.NewTimeID("AUD"),
		Timestamp: now,
		Action:    domainAudit.ActionTradeExecuted,
		Actor:     in.Buyer,
		Details: fmt.Sprintf("Purchased %s of %s loan from %s at %.2f",
			formatAmount(in.Amount, l.Currency), l.Borrower, l.OriginatingBank, in.Price),
		LoanID:  l.LoanID,
		TradeID: t.TradeID,
	}

	// The delay has elapsed; from here the commit must not be torn by the
	// caller going away.
	err := u.commit(context.WithoutCancel(ctx), t, e)
	if err != nil {
		w.finish(StateFailed, nil, nil, err)
		return
	}
	w.finish(StateComplete, t, e, nil)

	u.mu.Lock()
	listeners := make([]CompleteListener, len(u.listeners))
	copy(listeners, u.listeners)
	u.mu.Unlock()
	for _, fn := range listeners {
		fn(t, e)
	}
}

// commit applies the three ledger mutations as one transaction: loan status,
// trade history, audit trail. A loan that is no longer Available fails the
// whole unit with ErrStateConflict.
func (u *Usecase) commit(ctx context.Context, t *domainTrade.Trade, e *domainAudit.Entry) error {
	return u.uow.WithinLoanTx(ctx, t.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusAvailable {
			return domainLoan.ErrStateConflict
		}
		l.Status = domainLoan.StatusTraded
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Trades.Create(ctx, t); err != nil {
			return err
		}
		return r.Audit.Create(ctx, e)
	})
}
