package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"time"

	domainAudit "github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	domainLoan "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"
)

type Type string

const (
	TypePortfolio  Type = "portfolio"
	TypeAudit      Type = "audit"
	TypeCompliance Type = "compliance"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

var (
	ErrUnknownType   = errors.New("unknown report type")
	ErrUnknownFormat = errors.New("unknown report format")
)

// A loan is flagged for review above this default probability, percent.
const reviewThreshold = 5.0

type Report struct {
	ContentType string
	Filename    string
	Body        []byte
}

type Usecase struct {
	loans  domainLoan.Repository
	trades domainTrade.Repository
	audit  domainAudit.Repository
}

func NewUsecase(l domainLoan.Repository, t domainTrade.Repository, a domainAudit.Repository) *Usecase {
	return &Usecase{loans: l, trades: t, audit: a}
}

// Generate renders the requested report from a read-only ledger snapshot.
func (u *Usecase) Generate(ctx context.Context, typ Type, format Format) (*Report, error) {
	switch typ {
	case TypePortfolio, TypeAudit, TypeCompliance:
	default:
		return nil, ErrUnknownType
	}

	loans, err := u.loans.List(ctx, domainLoan.Filter{})
	if err != nil {
		return nil, err
	}
	trades, err := u.trades.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := u.audit.List(ctx)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return u.renderCSV(typ, loans, entries)
	case FormatJSON:
		return u.renderJSON(typ, loans, trades, entries)
	case FormatHTML:
		return u.renderHTML(typ, loans, entries)
	default:
		return nil, ErrUnknownFormat
	}
}

func complianceStatus(l domainLoan.Loan) string {
	if l.DefaultProbability > reviewThreshold {
		return "Review Required"
	}
	return "Cleared"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (u *Usecase) renderCSV(typ Type, loans []domainLoan.Loan, entries []domainAudit.Entry) (*Report, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	switch typ {
	case TypePortfolio:
		_ = w.Write([]string{"ID", "Borrower", "Amount", "Currency", "Interest Rate", "Rating", "Maturity", "Sector", "Green", "Status"})
		for _, l := range loans {
			_ = w.Write([]string{
				l.LoanID, l.Borrower,
				strconv.FormatFloat(l.Amount, 'f', -1, 64), l.Currency,
				strconv.FormatFloat(l.InterestRate, 'f', -1, 64),
				string(l.RiskRating), l.MaturityDate, l.Sector,
				yesNo(l.IsGreen), string(l.Status),
			})
		}
	case TypeAudit:
		_ = w.Write([]string{"ID", "Timestamp", "Action", "Actor", "Details", "Loan ID", "Trade ID"})
		for _, e := range entries {
			_ = w.Write([]string{
				e.EntryID, e.Timestamp.Format(time.RFC3339), string(e.Action),
				e.Actor, e.Details, e.LoanID, e.TradeID,
			})
		}
	case TypeCompliance:
		_ = w.Write([]string{"Loan ID", "Borrower", "Risk Rating", "Default Probability", "Status"})
		for _, l := range loans {
			_ = w.Write([]string{
				l.LoanID, l.Borrower, string(l.RiskRating),
				fmt.Sprintf("%g%%", l.DefaultProbability), complianceStatus(l),
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return &Report{
		ContentType: "text/csv",
		Filename:    fmt.Sprintf("loanledger-%s.csv", typ),
		Body:        buf.Bytes(),
	}, nil
}

type jsonSummary struct {
	TotalLoans      int     `json:"total_loans"`
	TotalValue      float64 `json:"total_value"`
	GreenLoans      int     `json:"green_loans"`
	AvgInterestRate string  `json:"avg_interest_rate"`
	RecentTrades    int     `json:"recent_trades"`
	AuditEntries    int     `json:"audit_entries"`
}

type jsonReport struct {
	ReportType  Type        `json:"report_type"`
	GeneratedAt string      `json:"generated_at"`
	GeneratedBy string      `json:"generated_by"`
	Summary     jsonSummary `json:"summary"`
	Data        any         `json:"data"`
}

func (u *Usecase) renderJSON(typ Type, loans []domainLoan.Loan, trades []domainTrade.Trade, entries []domainAudit.Entry) (*Report, error) {
	sum := jsonSummary{
		TotalLoans:   len(loans),
		GreenLoans:   0,
		RecentTrades: len(trades),
		AuditEntries: len(entries),
	}
	var rateSum float64
	for _, l := range loans {
		sum.TotalValue += l.Amount
		rateSum += l.InterestRate
		if l.IsGreen {
			sum.GreenLoans++
		}
	}
	if len(loans) > 0 {
		sum.AvgInterestRate = fmt.Sprintf("%.2f", rateSum/float64(len(loans)))
	}

	var data any
	switch typ {
	case TypePortfolio:
		data = loans
	case TypeAudit:
		data = entries
	case TypeCompliance:
		type row struct {
			LoanID             string  `json:"loan_id"`
			Borrower           string  `json:"borrower"`
			RiskRating         string  `json:"risk_rating"`
			DefaultProbability float64 `json:"default_probability"`
			Status             string  `json:"status"`
			ComplianceStatus   string  `json:"compliance_status"`
		}
		rows := make([]row, 0, len(loans))
		for _, l := range loans {
			rows = append(rows, row{
				LoanID: l.LoanID, Borrower: l.Borrower,
				RiskRating:         string(l.RiskRating),
				DefaultProbability: l.DefaultProbability,
				Status:             string(l.Status),
				ComplianceStatus:   complianceStatus(l),
			})
		}
		data = rows
	}

	body, err := json.MarshalIndent(jsonReport{
		ReportType:  typ,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		GeneratedBy: "LoanLedger Platform",
		Summary:     sum,
		Data:        data,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return &Report{
		ContentType: "application/json",
		Filename:    fmt.Sprintf("loanledger-%s.json", typ),
		Body:        body,
	}, nil
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - LoanLedger</title>
<style>
body { font-family: Arial, sans-serif; padding: 40px; color: #333; }
h1 { color: #1e40af; border-bottom: 2px solid #1e40af; padding-bottom: 10px; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; }
th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #e2e8f0; }
th { background: #f1f5f9; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>Generated {{.GeneratedAt}} by LoanLedger Platform</p>
<table>
<tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}</table>
</body>
</html>
`))

func (u *Usecase) renderHTML(typ Type, loans []domainLoan.Loan, entries []domainAudit.Entry) (*Report, error) {
	var title string
	var headers []string
	var rows [][]string

	switch typ {
	case TypePortfolio:
		title = "Portfolio Summary Report"
		headers = []string{"ID", "Borrower", "Amount", "Rate", "Rating", "Green"}
		for _, l := range loans {
			green := "-"
			if l.IsGreen {
				green = "✓ Green"
			}
			rows = append(rows, []string{
				l.LoanID, l.Borrower,
				fmt.Sprintf("%s %.0f", l.Currency, l.Amount),
				fmt.Sprintf("%g%%", l.InterestRate),
				string(l.RiskRating), green,
			})
		}
	case TypeAudit:
		title = "Audit Trail Report"
		headers = []string{"Timestamp", "Action", "Actor", "Details"}
		for _, e := range entries {
			rows = append(rows, []string{
				e.Timestamp.Format("2006-01-02 15:04:05"), string(e.Action), e.Actor, e.Details,
			})
		}
	case TypeCompliance:
		title = "Compliance Report"
		headers = []string{"Borrower", "Risk Rating", "Default Probability", "Status"}
		for _, l := range loans {
			rows = append(rows, []string{
				l.Borrower, string(l.RiskRating),
				fmt.Sprintf("%g%%", l.DefaultProbability), complianceStatus(l),
			})
		}
	}

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, map[string]any{
		"Title":       title,
		"GeneratedAt": time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		"Headers":     headers,
		"Rows":        rows,
	})
	if err != nil {
		return nil, err
	}
	return &Report{
		ContentType: "text/html",
		Filename:    fmt.Sprintf("loanledger-%s.html", typ),
		Body:        buf.Bytes(),
	}, nil
}
