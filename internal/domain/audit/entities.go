package audit

import (
	"time"
)

type Action string

const (
	ActionTradeExecuted   Action = "TRADE_EXECUTED"
	ActionLoanListed      Action = "LOAN_LISTED"
	ActionPriceUpdated    Action = "PRICE_UPDATED"
	ActionComplianceCheck Action = "COMPLIANCE_CHECK"
)

// Entry is one immutable line of the audit trail. Insertion order is the
// source of truth; listings present newest first.
type Entry struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	EntryID   string    `gorm:"size:32;uniqueIndex:ux_audit_entry_id" json:"entry_id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `gorm:"size:32" json:"action"`
	Actor     string    `gorm:"size:64" json:"actor"`
	Details   string    `gorm:"type:text" json:"details"`
	LoanID    string    `gorm:"size:32;index:idx_audit_loan_id" json:"loan_id,omitempty"`
	TradeID   string    `gorm:"size:32" json:"trade_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Entry) TableName() string { return "audit_entries" }
