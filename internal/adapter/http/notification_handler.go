package http

import (
	"net/http"

	"github.com/iamaanahmad/LoanLedger/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *notification.Usecase }

func NewNotificationHandler(uc *notification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

type notificationsResp struct {
	Notifications []notification.Notification `json:"notifications"`
	UnreadCount   int                         `json:"unread_count"`
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, notificationsResp{
		Notifications: h.uc.List(),
		UnreadCount:   h.uc.UnreadCount(),
	})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	h.uc.MarkRead(c.Param("notification_id"))
	return c.JSON(http.StatusOK, map[string]int{"unread_count": h.uc.UnreadCount()})
}

func (h *NotificationHandler) ClearAll(c echo.Context) error {
	h.uc.ClearAll()
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) ListWatchlist(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{"watchlist": h.uc.ListWatchlist()})
}

func (h *NotificationHandler) ToggleWatch(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	watched := h.uc.ToggleWatch(loanID)
	return c.JSON(http.StatusOK, map[string]any{"loan_id": loanID, "watched": watched})
}
