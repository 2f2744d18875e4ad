package trading

import (
	"fmt"
	"strings"
)

// Institutions is the fixed buyer allow-list.
var Institutions = []string{
	"BlackRock", "Vanguard", "Fidelity", "State Street", "Allianz",
	"AXA Investment", "PIMCO", "Wellington", "T. Rowe Price", "Invesco",
}

// Price bounds, percent of par.
const (
	MinPrice = 80.0
	MaxPrice = 120.0
)

type ExecuteInput struct {
	LoanID string  `json:"loan_id"`
	Buyer  string  `json:"buyer"`
	Amount float64 `json:"amount"`
	Price  float64 `json:"price"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError keeps a rejected attempt in StateDetails; it never reaches
// the ledger.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func validBuyer(buyer string) bool {
	for _, inst := range Institutions {
		if inst == buyer {
			return true
		}
	}
	return false
}

var currencySymbols = map[string]string{"USD": "$", "EUR": "€", "GBP": "£"}

// formatAmount renders "$50,000,000" / "€100,000,000"; unknown currencies
// fall back to the ISO code prefix.
func formatAmount(amount float64, currency string) string {
	sym, ok := currencySymbols[currency]
	if !ok {
		sym = currency + " "
	}
	n := int64(amount)
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if n < 0 {
		out = "-" + out
	}
	return sym + out
}
