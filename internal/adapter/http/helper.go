package http

import (
	"github.com/iamaanahmad/LoanLedger/internal/usecase/trading"
)

func toHTTPFieldErrors(fields []trading.FieldError) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for _, f := range fields {
		out = append(out, FieldError{Field: f.Field, Message: f.Message})
	}
	return out
}
