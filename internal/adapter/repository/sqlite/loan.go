package sqlite

import (
	"context"
	"strings"

	loanDomain "github.com/iamaanahmad/LoanLedger/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate must run on a *gorm.DB bound to an open transaction.
// SQLite has no row-level FOR UPDATE; the write transaction itself is the
// lock, so this is a plain read under that transaction.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.Filter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(borrower) LIKE ? OR LOWER(sector) LIKE ?", like, like)
	}
	if f.Rating != "" {
		q = q.Where("risk_rating = ?", f.Rating)
	}
	if f.LoanType != "" {
		q = q.Where("loan_type = ?", f.LoanType)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.GreenOnly {
		q = q.Where("is_green = ?", true)
	}
	var out []loanDomain.Loan
	res := q.Order("loan_id ASC").Find(&out)
	return out, res.Error
}
