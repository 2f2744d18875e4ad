// Package seed holds the static sample data a session starts from.
package seed

import (
	"context"
	"time"

	"github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	"github.com/iamaanahmad/LoanLedger/internal/domain/compliance"
	"github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	"github.com/iamaanahmad/LoanLedger/internal/domain/trade"
	"github.com/iamaanahmad/LoanLedger/internal/domain/uow"
)

func ts(s string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", s)
	return t.UTC()
}

func Loans() []loan.Loan {
	return []loan.Loan{
		{LoanID: "LN-001", Borrower: "Meridian Energy Corp", BorrowerType: loan.BorrowerCorporate, Amount: 150_000_000, Currency: "USD", InterestRate: 5.25, MaturityDate: "2028-06-15", RiskRating: loan.RatingAA, LoanType: loan.TypeTerm, IsGreen: true, GreenCategory: "Renewable Energy", Status: loan.StatusAvailable, Sector: "Energy", OriginatingBank: "Deutsche Bank", DefaultProbability: 0.8},
		{LoanID: "LN-002", Borrower: "Nordic Infrastructure AS", BorrowerType: loan.BorrowerInfrastructure, Amount: 280_000_000, Currency: "EUR", InterestRate: 4.75, MaturityDate: "2030-03-20", RiskRating: loan.RatingAAA, LoanType: loan.TypeSyndicated, IsGreen: true, GreenCategory: "Sustainable Transport", Status: loan.StatusAvailable, Sector: "Infrastructure", OriginatingBank: "BNP Paribas", DefaultProbability: 0.3},
		{LoanID: "LN-003", Borrower: "Atlas Manufacturing Ltd", BorrowerType: loan.BorrowerCorporate, Amount: 75_000_000, Currency: "GBP", InterestRate: 6.10, MaturityDate: "2026-09-30", RiskRating: loan.RatingBBB, LoanType: loan.TypeRevolving, Status: loan.StatusAvailable, Sector: "Manufacturing", OriginatingBank: "Barclays", DefaultProbability: 3.2},
		{LoanID: "LN-004", Borrower: "SunTech Solar Holdings", BorrowerType: loan.BorrowerCorporate, Amount: 200_000_000, Currency: "USD", InterestRate: 4.90, MaturityDate: "2029-12-01", RiskRating: loan.RatingA, LoanType: loan.TypeTerm, IsGreen: true, GreenCategory: "Solar Energy", Status: loan.StatusAvailable, Sector: "Energy", OriginatingBank: "HSBC", DefaultProbability: 1.5},
		{LoanID: "LN-005", Borrower: "Metro Real Estate REIT", BorrowerType: loan.BorrowerRealEstate, Amount: 120_000_000, Currency: "EUR", InterestRate: 5.50, MaturityDate: "2027-04-15", RiskRating: loan.RatingA, LoanType: loan.TypeBridge, Status: loan.StatusPending, Sector: "Real Estate", OriginatingBank: "Société Générale", DefaultProbability: 2.1},
		{LoanID: "LN-006", Borrower: "GreenBuild Construction", BorrowerType: loan.BorrowerSME, Amount: 25_000_000, Currency: "GBP", InterestRate: 7.25, MaturityDate: "2026-01-10", RiskRating: loan.RatingBB, LoanType: loan.TypeTerm, IsGreen: true, GreenCategory: "Green Buildings", Status: loan.StatusAvailable, Sector: "Construction", OriginatingBank: "Lloyds", DefaultProbability: 5.8},
		{LoanID: "LN-007", Borrower: "Oceanic Shipping PLC", BorrowerType: loan.BorrowerCorporate, Amount: 180_000_000, Currency: "USD", InterestRate: 5.80, MaturityDate: "2028-08-22", RiskRating: loan.RatingBBB, LoanType: loan.TypeSyndicated, Status: loan.StatusAvailable, Sector: "Transportation", OriginatingBank: "Citi", DefaultProbability: 2.9},
		{LoanID: "LN-008", Borrower: "WindPower Europe GmbH", BorrowerType: loan.BorrowerInfrastructure, Amount: 350_000_000, Currency: "EUR", InterestRate: 4.50, MaturityDate: "2031-05-30", RiskRating: loan.RatingAA, LoanType: loan.TypeTerm, IsGreen: true, GreenCategory: "Wind Energy", Status: loan.StatusAvailable, Sector: "Energy", OriginatingBank: "Commerzbank", DefaultProbability: 0.6},
	}
}

func Trades() []trade.Trade {
	return []trade.Trade{
		{TradeID: "TR-001", LoanID: "LN-001", LoanBorrower: "Meridian Energy Corp", Seller: "Deutsche Bank", Buyer: "BlackRock", Amount: 50_000_000, Price: 99.75, Timestamp: ts("2024-12-20T14:30:00"), Status: trade.StatusCompleted},
		{TradeID: "TR-002", LoanID: "LN-002", LoanBorrower: "Nordic Infrastructure AS", Seller: "BNP Paribas", Buyer: "Allianz", Amount: 100_000_000, Price: 100.25, Timestamp: ts("2024-12-19T10:15:00"), Status: trade.StatusCompleted},
		{TradeID: "TR-003", LoanID: "LN-004", LoanBorrower: "SunTech Solar Holdings", Seller: "HSBC", Buyer: "Fidelity", Amount: 75_000_000, Price: 99.50, Timestamp: ts("2024-12-18T16:45:00"), Status: trade.StatusCompleted},
	}
}

func AuditEntries() []audit.Entry {
	return []audit.Entry{
		{EntryID: "AUD-001", Timestamp: ts("2024-12-20T14:30:00"), Action: audit.ActionTradeExecuted, Actor: "BlackRock", Details: "Purchased $50M of Meridian Energy Corp loan from Deutsche Bank at 99.75", LoanID: "LN-001", TradeID: "TR-001"},
		{EntryID: "AUD-002", Timestamp: ts("2024-12-20T14:29:00"), Action: audit.ActionComplianceCheck, Actor: "System", Details: "KYC and AML checks passed for BlackRock trade", LoanID: "LN-001"},
		{EntryID: "AUD-003", Timestamp: ts("2024-12-19T10:15:00"), Action: audit.ActionTradeExecuted, Actor: "Allianz", Details: "Purchased €100M of Nordic Infrastructure AS loan from BNP Paribas at 100.25", LoanID: "LN-002", TradeID: "TR-002"},
		{EntryID: "AUD-004", Timestamp: ts("2024-12-19T09:00:00"), Action: audit.ActionLoanListed, Actor: "BNP Paribas", Details: "Listed Nordic Infrastructure AS syndicated loan for trading", LoanID: "LN-002"},
		{EntryID: "AUD-005", Timestamp: ts("2024-12-18T16:45:00"), Action: audit.ActionTradeExecuted, Actor: "Fidelity", Details: "Purchased $75M of SunTech Solar Holdings loan from HSBC at 99.50", LoanID: "LN-004", TradeID: "TR-003"},
		{EntryID: "AUD-006", Timestamp: ts("2024-12-18T11:30:00"), Action: audit.ActionPriceUpdated, Actor: "Market Maker", Details: "Price updated for Atlas Manufacturing Ltd loan: 98.25 → 98.50", LoanID: "LN-003"},
	}
}

func ComplianceChecks() []compliance.Check {
	return []compliance.Check{
		{CheckID: "CC-001", LoanID: "LN-001", CheckType: "KYC Verification", Status: compliance.StatusPassed, Details: "All counterparty identities verified", Timestamp: ts("2024-12-20T14:28:00")},
		{CheckID: "CC-002", LoanID: "LN-001", CheckType: "AML Screening", Status: compliance.StatusPassed, Details: "No sanctions or PEP matches found", Timestamp: ts("2024-12-20T14:28:30")},
		{CheckID: "CC-003", LoanID: "LN-001", CheckType: "Credit Limit Check", Status: compliance.StatusPassed, Details: "Within approved credit limits", Timestamp: ts("2024-12-20T14:29:00")},
		{CheckID: "CC-004", LoanID: "LN-006", CheckType: "Risk Assessment", Status: compliance.StatusFailed, Details: "Default probability exceeds threshold (5.8% > 5%)", Timestamp: ts("2024-12-19T08:00:00")},
		{CheckID: "CC-005", LoanID: "LN-003", CheckType: "Documentation Review", Status: compliance.StatusPending, Details: "Awaiting updated financial statements", Timestamp: ts("2024-12-18T15:00:00")},
	}
}

// Watchlist is the loan set flagged at session start.
func Watchlist() []string { return []string{"LN-001", "LN-004"} }

// Ledger populates an empty session database with the seed catalogue.
func Ledger(ctx context.Context, tx uow.UnitOfWork, checks compliance.Repository) error {
	if err := tx.WithinTx(ctx, func(r uow.Repos) error {
		for _, l := range Loans() {
			l := l
			if err := r.Loans.Create(ctx, &l); err != nil {
				return err
			}
		}
		for _, t := range Trades() {
			t := t
			if err := r.Trades.Create(ctx, &t); err != nil {
				return err
			}
		}
		for _, e := range AuditEntries() {
			e := e
			if err := r.Audit.Create(ctx, &e); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	for _, c := range ComplianceChecks() {
		c := c
		if err := checks.Create(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}
