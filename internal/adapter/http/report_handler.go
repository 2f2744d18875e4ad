package http

import (
	"errors"
	"net/http"

	"github.com/iamaanahmad/LoanLedger/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Export(c echo.Context) error {
	typ := report.Type(c.QueryParam("type"))
	format := report.Format(c.QueryParam("format"))
	if typ == "" {
		typ = report.TypePortfolio
	}
	if format == "" {
		format = report.FormatCSV
	}

	r, err := h.uc.Generate(c.Request().Context(), typ, format)
	if err != nil {
		if errors.Is(err, report.ErrUnknownType) || errors.Is(err, report.ErrUnknownFormat) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not generate report"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+r.Filename+`"`)
	return c.Blob(http.StatusOK, r.ContentType, r.Body)
}
