package http

import (
	"errors"
	"net/http"

	domainLoan "github.com/iamaanahmad/LoanLedger/internal/domain/loan"
	domainTrade "github.com/iamaanahmad/LoanLedger/internal/domain/trade"
	"github.com/iamaanahmad/LoanLedger/internal/usecase/trading"

	"github.com/labstack/echo/v4"
)

type TradeHandler struct {
	uc     *trading.Usecase
	trades domainTrade.Repository
}

func NewTradeHandler(uc *trading.Usecase, trades domainTrade.Repository) *TradeHandler {
	return &TradeHandler{uc: uc, trades: trades}
}

type executeTradeReq struct {
	Buyer  string  `json:"buyer"   validate:"required,institution"`
	Amount float64 `json:"amount"  validate:"required,gt=0"`
	Price  float64 `json:"price"   validate:"required,gte=80,lte=120"`
}

type executeTradeResp struct {
	WorkflowID string             `json:"workflow_id"`
	State      trading.State      `json:"state"`
	Trade      *domainTrade.Trade `json:"trade,omitempty"`
}

// ExecuteTrade runs the full settlement pipeline and answers once the
// workflow reaches a terminal state, mirroring the confirming spinner the
// user watches. Closing the connection mid-confirmation cancels the
// workflow before it commits.
func (h *TradeHandler) ExecuteTrade(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req executeTradeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	ctx := c.Request().Context()
	w, err := h.uc.Execute(ctx, trading.ExecuteInput{
		LoanID: loanID,
		Buyer:  req.Buyer,
		Amount: req.Amount,
		Price:  req.Price,
	})
	if err != nil {
		var verr *trading.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "validation failed",
				Details: toHTTPFieldErrors(verr.Fields),
			})
		case errors.Is(err, domainLoan.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not start trade"})
		}
	}

	if err := w.Wait(ctx); err != nil {
		if errors.Is(err, domainLoan.ErrStateConflict) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "loan is no longer available; refresh and retry"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "trade did not complete"})
	}

	t, _ := w.Result()
	return c.JSON(http.StatusOK, executeTradeResp{WorkflowID: w.ID, State: w.State(), Trade: t})
}

func (h *TradeHandler) GetWorkflow(c echo.Context) error {
	w, ok := h.uc.GetWorkflow(c.Param("workflow_id"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "workflow not found"})
	}
	t, _ := w.Result()
	return c.JSON(http.StatusOK, executeTradeResp{WorkflowID: w.ID, State: w.State(), Trade: t})
}

func (h *TradeHandler) ListTrades(c echo.Context) error {
	trades, err := h.trades.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list trades"})
	}
	return c.JSON(http.StatusOK, trades)
}
