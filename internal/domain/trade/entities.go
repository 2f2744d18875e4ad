package trade

import (
	"time"
)

type Status string

const (
	StatusCompleted Status = "Completed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// Trade is an immutable record of one executed transaction. LoanBorrower is
// denormalized at creation time for display and is never re-synced.
type Trade struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	TradeID      string    `gorm:"size:32;uniqueIndex:ux_trades_trade_id" json:"trade_id"`
	LoanID       string    `gorm:"size:32;index:idx_trades_loan_id" json:"loan_id"`
	LoanBorrower string    `gorm:"size:128" json:"loan_borrower"`
	Seller       string    `gorm:"size:64" json:"seller"`
	Buyer        string    `gorm:"size:64" json:"buyer"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Price        float64   `gorm:"type:decimal(8,4)" json:"price"`
	Timestamp    time.Time `json:"timestamp"`
	Status       Status    `gorm:"size:16" json:"status"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Trade) TableName() string { return "trades" }
