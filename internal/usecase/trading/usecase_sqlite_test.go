package trading

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/iamaanahmad/LoanLedger/internal/adapter/repository/sqlite"
	domainAudit "github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	domainLoan "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"
	"github.com/iamaanahmad/LoanLedger/internal/seed"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openSeededDB builds a full seeded session ledger on in-memory sqlite.
func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&domainLoan.Loan{}, &domainTrade.Trade{}, &domainAudit.Entry{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	ctx := context.Background()
	repo := sqlite.NewLoanRepository(db)
	for _, l := range seed.Loans() {
		l := l
		if err := repo.Create(ctx, &l); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func TestScenario_HappyPath_LN001(t *testing.T) {
	db := openSeededDB(t)
	loanRepo := sqlite.NewLoanRepository(db)
	tradeRepo := sqlite.NewTradeRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)
	uc := NewUsecase(loanRepo, sqlite.NewGormUoW(db), 0)

	ctx := context.Background()
	w, err := uc.Execute(ctx, ExecuteInput{
		LoanID: "LN-001", Buyer: "BlackRock", Amount: 50_000_000, Price: 99.75,
	})
	if err != nil {
		t.Fatalf("Execute err: %v", err)
	}
	if err := w.Wait(ctx); err != nil {
		t.Fatalf("Wait err: %v", err)
	}

	l, err := loanRepo.GetByLoanID(ctx, "LN-001")
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if l.Status != domainLoan.StatusTraded {
		t.Fatalf("status=%s, want Traded", l.Status)
	}

	trades, err := tradeRepo.List(ctx)
	if err != nil {
		t.Fatalf("trades: %v", err)
	}
	if len(trades) == 0 || trades[0].Buyer != "BlackRock" {
		t.Fatalf("trades[0]=%+v, want BlackRock first", trades)
	}

	entries, err := auditRepo.List(ctx)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if len(entries) == 0 || entries[0].Action != domainAudit.ActionTradeExecuted {
		t.Fatalf("entries[0]=%+v, want TRADE_EXECUTED first", entries)
	}
}

func TestScenario_ConcurrentAttempts_ExactlyOneWins(t *testing.T) {
	db := openSeededDB(t)
	loanRepo := sqlite.NewLoanRepository(db)
	uc := NewUsecase(loanRepo, sqlite.NewGormUoW(db), 0)

	ctx := context.Background()
	buyers := []string{"BlackRock", "Vanguard"}
	errs := make([]error, len(buyers))

	var wg sync.WaitGroup
	for i, b := range buyers {
		wg.Add(1)
		go func(i int, buyer string) {
			defer wg.Done()
			w, err := uc.Execute(ctx, ExecuteInput{
				LoanID: "LN-002", Buyer: buyer, Amount: 10_000_000, Price: 100.25,
			})
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = w.Wait(ctx)
		}(i, b)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domainLoan.ErrStateConflict):
			conflicts++
		default:
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("wins=%d conflicts=%d, want 1/1", wins, conflicts)
	}

	n, err := sqlite.NewTradeRepository(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Fatalf("trades=%d, want exactly 1", n)
	}
}
