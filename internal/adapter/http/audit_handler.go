package http

import (
	"net/http"

	domainAudit "github.com/iamaanahmad/LoanLedger/internal/domain/audit"
	domainCompliance "github.com/iamaanahmad/LoanLedger/internal/domain/compliance"

	"github.com/labstack/echo/v4"
)

type AuditHandler struct {
	audit  domainAudit.Repository
	checks domainCompliance.Repository
}

func NewAuditHandler(a domainAudit.Repository, c domainCompliance.Repository) *AuditHandler {
	return &AuditHandler{audit: a, checks: c}
}

func (h *AuditHandler) ListAuditTrail(c echo.Context) error {
	entries, err := h.audit.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list audit trail"})
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *AuditHandler) ListComplianceChecks(c echo.Context) error {
	ctx := c.Request().Context()
	if loanID := c.QueryParam("loan_id"); loanID != "" {
		checks, err := h.checks.ListByLoanID(ctx, loanID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list compliance checks"})
		}
		return c.JSON(http.StatusOK, checks)
	}
	checks, err := h.checks.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list compliance checks"})
	}
	return c.JSON(http.StatusOK, checks)
}
