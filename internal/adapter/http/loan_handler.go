package http

import (
	"errors"
	"net/http"

	domain "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	"github.com/iamaanahmad/LoanLedger/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

func (h *LoanHandler) ListLoans(c echo.Context) error {
	f := domain.Filter{
		Search:    c.QueryParam("search"),
		Rating:    domain.Rating(c.QueryParam("rating")),
		LoanType:  domain.Type(c.QueryParam("loan_type")),
		Status:    domain.Status(c.QueryParam("status")),
		GreenOnly: c.QueryParam("green") == "true",
	}
	loans, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list loans"})
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	l, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not get loan"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) MarketStats(c echo.Context) error {
	s, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not compute stats"})
	}
	return c.JSON(http.StatusOK, s)
}
