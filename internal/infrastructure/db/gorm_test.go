package db

import (
	"testing"

	"github.com/iamaanahmad/LoanLedger/internal/domain/loan"
)

func TestOpenGorm_InMemory(t *testing.T) {
	gdb, err := OpenGorm(":memory:")
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// All four ledger tables should exist after migration.
	for _, table := range []string{"loans", "trades", "audit_entries", "compliance_checks"} {
		if !gdb.Migrator().HasTable(table) {
			t.Fatalf("missing table %q", table)
		}
	}
}

func TestOpenGorm_WriteReadRoundTrip(t *testing.T) {
	gdb, err := OpenGorm(":memory:")
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	l := loan.Loan{LoanID: "LN-T1", Borrower: "Test Borrower", Amount: 100, Currency: "USD", Status: loan.StatusAvailable}
	if err := gdb.Create(&l).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	var got loan.Loan
	if err := gdb.Where("loan_id = ?", "LN-T1").First(&got).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got.Borrower != "Test Borrower" {
		t.Fatalf("borrower = %q", got.Borrower)
	}
}

func TestOpenGorm_BadDSN(t *testing.T) {
	if _, err := OpenGorm("/no/such/dir/loanledger.db"); err == nil {
		t.Fatal("expected error, got nil")
	}
}
