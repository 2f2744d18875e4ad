package loan

import (
	"time"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusPending   Status = "Pending"
	StatusTraded    Status = "Traded"
)

type BorrowerType string

const (
	BorrowerCorporate      BorrowerType = "Corporate"
	BorrowerSME            BorrowerType = "SME"
	BorrowerInfrastructure BorrowerType = "Infrastructure"
	BorrowerRealEstate     BorrowerType = "Real Estate"
)

type Rating string

const (
	RatingAAA Rating = "AAA"
	RatingAA  Rating = "AA"
	RatingA   Rating = "A"
	RatingBBB Rating = "BBB"
	RatingBB  Rating = "BB"
	RatingB   Rating = "B"
)

type Type string

const (
	TypeTerm       Type = "Term Loan"
	TypeRevolving  Type = "Revolving Credit"
	TypeBridge     Type = "Bridge Loan"
	TypeSyndicated Type = "Syndicated"
)

type Loan struct {
	ID                 uint64       `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string       `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	Borrower           string       `gorm:"size:128" json:"borrower"`
	BorrowerType       BorrowerType `gorm:"size:32" json:"borrower_type"`
	Amount             float64      `gorm:"type:decimal(18,2)" json:"amount"`
	Currency           string       `gorm:"size:3" json:"currency"`
	InterestRate       float64      `gorm:"type:decimal(6,4)" json:"interest_rate"`
	MaturityDate       string       `gorm:"size:10" json:"maturity_date"`
	RiskRating         Rating       `gorm:"size:4" json:"risk_rating"`
	LoanType           Type         `gorm:"size:32" json:"loan_type"`
	IsGreen            bool         `json:"is_green"`
	GreenCategory      string       `gorm:"size:64" json:"green_category,omitempty"`
	Status             Status       `gorm:"size:16;default:'Available'" json:"status"`
	Sector             string       `gorm:"size:64" json:"sector"`
	OriginatingBank    string       `gorm:"size:64" json:"originating_bank"`
	DefaultProbability float64      `gorm:"type:decimal(6,2)" json:"default_probability"`
	StatusUpdatedAt    time.Time    `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// Filter narrows catalogue listings; zero values mean no constraint.
type Filter struct {
	Search    string
	Rating    Rating
	LoanType  Type
	Status    Status
	GreenOnly bool
}
