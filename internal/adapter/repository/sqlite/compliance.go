package sqlite

import (
	"context"

	complianceDomain "github.com/iamaanahmad/LoanLedger/internal/domain/compliance"

	"gorm.io/gorm"
)

type ComplianceRepository struct{ db *gorm.DB }

func NewComplianceRepository(db *gorm.DB) *ComplianceRepository {
	return &ComplianceRepository{db: db}
}

func (r *ComplianceRepository) Create(ctx context.Context, c *complianceDomain.Check) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplianceRepository) List(ctx context.Context) ([]complianceDomain.Check, error) {
	var out []complianceDomain.Check
	res := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ComplianceRepository) ListByLoanID(ctx context.Context, loanID string) ([]complianceDomain.Check, error) {
	var out []complianceDomain.Check
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("timestamp DESC, id DESC").
		Find(&out)
	return out, res.Error
}
