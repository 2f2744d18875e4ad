package sqlite

import (
	"context"

	auditDomain "github.com/iamaanahmad/LoanLedger/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditRepository intentionally exposes no update or delete: the trail is
// append-only.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Create(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) List(ctx context.Context) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).Order("timestamp DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *AuditRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&auditDomain.Entry{}).Count(&n)
	return n, res.Error
}
