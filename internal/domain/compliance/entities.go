package compliance

import (
	"time"
)

type Status string

const (
	StatusPassed  Status = "Passed"
	StatusFailed  Status = "Failed"
	StatusPending Status = "Pending"
)

// Check is a simulated compliance assessment of a loan. Checks are seeded
// reference data and never mutated.
type Check struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	CheckID   string    `gorm:"size:32;uniqueIndex:ux_checks_check_id" json:"check_id"`
	LoanID    string    `gorm:"size:32;index:idx_checks_loan_id" json:"loan_id"`
	CheckType string    `gorm:"size:64" json:"check_type"`
	Status    Status    `gorm:"size:16" json:"status"`
	Details   string    `gorm:"type:text" json:"details"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Check) TableName() string { return "compliance_checks" }
