package seed

import (
	"testing"

	"github.com/iamaanahmad/LoanLedger/internal/domain/loan"
)

func TestSeedCounts(t *testing.T) {
	if n := len(Loans()); n != 8 {
		t.Fatalf("loans = %d, want 8", n)
	}
	if n := len(Trades()); n != 3 {
		t.Fatalf("trades = %d, want 3", n)
	}
	if n := len(AuditEntries()); n != 6 {
		t.Fatalf("audit entries = %d, want 6", n)
	}
	if n := len(ComplianceChecks()); n != 5 {
		t.Fatalf("compliance checks = %d, want 5", n)
	}
	if n := len(Watchlist()); n != 2 {
		t.Fatalf("watchlist = %d, want 2", n)
	}
}

func TestSeedReferentialIntegrity(t *testing.T) {
	loans := make(map[string]loan.Loan)
	for _, l := range Loans() {
		if _, dup := loans[l.LoanID]; dup {
			t.Fatalf("duplicate loan id %s", l.LoanID)
		}
		loans[l.LoanID] = l
	}

	for _, tr := range Trades() {
		l, ok := loans[tr.LoanID]
		if !ok {
			t.Fatalf("trade %s references unknown loan %s", tr.TradeID, tr.LoanID)
		}
		if tr.LoanBorrower != l.Borrower {
			t.Fatalf("trade %s borrower %q != loan borrower %q", tr.TradeID, tr.LoanBorrower, l.Borrower)
		}
		if tr.Seller != l.OriginatingBank {
			t.Fatalf("trade %s seller %q != originating bank %q", tr.TradeID, tr.Seller, l.OriginatingBank)
		}
		if tr.Amount > l.Amount {
			t.Fatalf("trade %s amount exceeds loan principal", tr.TradeID)
		}
	}

	for _, e := range AuditEntries() {
		if _, ok := loans[e.LoanID]; !ok {
			t.Fatalf("audit %s references unknown loan %s", e.EntryID, e.LoanID)
		}
	}
	for _, c := range ComplianceChecks() {
		if _, ok := loans[c.LoanID]; !ok {
			t.Fatalf("check %s references unknown loan %s", c.CheckID, c.LoanID)
		}
	}
	for _, id := range Watchlist() {
		if _, ok := loans[id]; !ok {
			t.Fatalf("watchlist references unknown loan %s", id)
		}
	}
}

func TestSeedLoanStatuses(t *testing.T) {
	// Every seeded loan starts tradeable except the one pending settlement.
	for _, l := range Loans() {
		want := loan.StatusAvailable
		if l.LoanID == "LN-005" {
			want = loan.StatusPending
		}
		if l.Status != want {
			t.Fatalf("%s status = %s, want %s", l.LoanID, l.Status, want)
		}
	}
}
